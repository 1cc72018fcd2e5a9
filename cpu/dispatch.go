package cpu

import (
	"github.com/inkwell-systems/luinux/lerr"
	"github.com/inkwell-systems/luinux/opcode"
)

// handlerFunc is the shared signature every instruction semantic
// implements: mutate processor state from the already-decoded operand
// registers and pending literal, or fail.
type handlerFunc func(p *Processor) error

var handlers = make(map[opcode.ID]handlerFunc)

// registerHandler binds one opcode id to its handler. Called from each
// family's init(), never at runtime.
func registerHandler(id opcode.ID, fn handlerFunc) {
	if _, exists := handlers[id]; exists {
		panic("cpu: duplicate handler registration for " + id.String())
	}
	handlers[id] = fn
}

// Step runs one full fetch-decode-execute cycle.
func (p *Processor) Step() error {
	if p.phase == PhaseHalted {
		return nil
	}
	if err := p.decode(); err != nil {
		return err
	}
	return p.execute()
}

func (p *Processor) execute() error {
	p.phase = PhaseExecute
	handler, ok := handlers[p.decodedID]
	if !ok {
		return lerr.New(lerr.InvalidInstruction, "no handler registered for "+p.decodedID.String())
	}
	if err := handler(p); err != nil {
		return err
	}
	p.cleanCycle()
	return nil
}

// ExecuteAll runs cycles until STOP halts the processor or TRAP sets the
// Trap flag; either way control returns to the caller without error.
// A genuine decode/execute error aborts immediately.
func (p *Processor) ExecuteAll() error {
	for !p.Halted() {
		if p.Registers.GetFlag(opcode.FlagTrap) {
			return nil
		}
		if err := p.Step(); err != nil {
			return err
		}
		if p.Registers.GetFlag(opcode.FlagTrap) {
			return nil
		}
	}
	return nil
}
