package cpu

import (
	"github.com/inkwell-systems/luinux/memory"
	"github.com/inkwell-systems/luinux/opcode"
	"github.com/inkwell-systems/luinux/register"
)

// addressMode selects whether an instruction operand is a register's own
// value (R) or the 16-bit word stored at the address that value names (M).
type addressMode int

const (
	modeRegister addressMode = iota
	modeMemory
)

// operand binds one register ordinal to an addressing mode and the memory
// it dereferences through when mode is modeMemory. Every instruction
// handler builds operands from its decoded register list and reads/writes
// through this one mechanism regardless of addressing mode.
type operand struct {
	mode addressMode
	reg  register.Register
	mem  *memory.Memory
}

func (o operand) read() (uint16, error) {
	if o.mode == modeMemory {
		return o.mem.Read16(o.reg.Read())
	}
	return o.reg.Read(), nil
}

func (o operand) write(v uint16) error {
	if o.mode == modeMemory {
		return o.mem.Write16(o.reg.Read(), v)
	}
	o.reg.Write(v)
	return nil
}

// reg returns a handle to the register at ordinal.
func (p *Processor) reg(ordinal int) register.Register {
	return p.Registers.Register(ordinal)
}

// dataMemory is the memory M-addressing dereferences through: SRAM
// normally, NVRAM once SWM has set the Memory flag.
func (p *Processor) dataMemory() *memory.Memory {
	if p.Registers.GetFlag(opcode.FlagMemory) {
		return &p.NVRAM.Memory
	}
	return p.SRAM
}

// dataOperand builds an operand against the bank-switchable data memory.
func (p *Processor) dataOperand(mode addressMode, ordinal int) operand {
	return operand{mode: mode, reg: p.reg(ordinal), mem: p.dataMemory()}
}

// stackOperand builds an operand against SRAM specifically: the stack's
// backing store is fixed regardless of SWM, only plain data dereferences
// bank-switch.
func (p *Processor) stackOperand(mode addressMode, ordinal int) operand {
	return operand{mode: mode, reg: p.reg(ordinal), mem: p.SRAM}
}
