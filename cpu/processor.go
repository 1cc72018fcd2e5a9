// Package cpu implements the fetch-decode-execute interpreter: a
// variable-width opcode decoder plus dispatch to the ~70 instruction
// semantics that mutate the register file and memory.
package cpu

import (
	"github.com/inkwell-systems/luinux/memory"
	"github.com/inkwell-systems/luinux/opcode"
	"github.com/inkwell-systems/luinux/register"
)

// Phase is where the current instruction cycle stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetch
	PhaseDecode
	PhaseExecute
	PhaseHalted
)

func (ph Phase) String() string {
	switch ph {
	case PhaseIdle:
		return "Idle"
	case PhaseFetch:
		return "Fetch"
	case PhaseDecode:
		return "Decode"
	case PhaseExecute:
		return "Execute"
	case PhaseHalted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// Processor is the luinux interpreter: program memory, SRAM, an optional
// NVRAM bank, the register file, and the decode scratch for the
// in-flight instruction cycle.
type Processor struct {
	Program *memory.Memory
	SRAM    *memory.Memory
	NVRAM   *memory.NVMemory

	Registers *register.File

	phase Phase

	decodedID         opcode.ID
	operandRegs       []int
	pendingLiteral    uint16
	hasPendingLiteral bool
}

// New returns a Processor over the given program image. nvram may be nil:
// SWM then fails with NoNVRam rather than bank-switching.
func New(program *memory.Memory, nvram *memory.NVMemory) *Processor {
	p := &Processor{
		Program:   program,
		SRAM:      memory.New(),
		NVRAM:     nvram,
		Registers: register.NewFile(),
		phase:     PhaseIdle,
		decodedID: opcode.Invalid,
	}
	p.Registers.Write(opcode.RSP, opcode.StackTop)
	p.Registers.Write(opcode.RIP, 0)
	return p
}

// Phase reports the processor's current cycle phase.
func (p *Processor) Phase() Phase {
	return p.phase
}

// Halted reports whether STOP has run.
func (p *Processor) Halted() bool {
	return p.phase == PhaseHalted
}

// fetch reads the word at RIP from program memory and advances RIP by 2.
func (p *Processor) fetch() (uint16, error) {
	rip := p.Registers.Read(opcode.RIP)
	w, err := p.Program.Read16(rip)
	if err != nil {
		return 0, err
	}
	p.Registers.Write(opcode.RIP, rip+2)
	return w, nil
}

// cleanCycle clears the decode scratch, per §4.5.5: a new cycle cannot
// start until this has run.
func (p *Processor) cleanCycle() {
	p.decodedID = opcode.Invalid
	p.operandRegs = nil
	p.hasPendingLiteral = false
	if p.phase != PhaseHalted {
		p.phase = PhaseIdle
	}
}
