package cpu

import (
	"github.com/inkwell-systems/luinux/lerr"
	"github.com/inkwell-systems/luinux/opcode"
)

func execNOP(p *Processor) error {
	return nil
}

func execSTOP(p *Processor) error {
	p.phase = PhaseHalted
	return nil
}

// execTRAP sets the Trap flag; ExecuteAll sees it and returns control to
// the host without halting. The flag is left for the host to clear.
func execTRAP(p *Processor) error {
	p.Registers.SetFlag(opcode.FlagTrap, true)
	return nil
}

// execSWM toggles the Memory flag, swapping which bank dataMemory()
// resolves to. Switching into NVRAM with none configured is fatal. Per
// spec, a SWM transition writes NVRAM back to disk verbatim, same as a
// shutdown flush, so the file on disk never lags more than one
// transition behind the in-memory bank.
func execSWM(p *Processor) error {
	switchingToNVRAM := !p.Registers.GetFlag(opcode.FlagMemory)
	if switchingToNVRAM && p.NVRAM == nil {
		return lerr.New(lerr.NoNVRam, "SWM requires a configured NVRAM bank")
	}
	p.Registers.SetFlag(opcode.FlagMemory, switchingToNVRAM)
	if p.NVRAM != nil {
		if err := p.NVRAM.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	registerHandler(opcode.NOP, execNOP)
	registerHandler(opcode.STOP, execSTOP)
	registerHandler(opcode.TRAP, execTRAP)
	registerHandler(opcode.SWM, execSWM)
}
