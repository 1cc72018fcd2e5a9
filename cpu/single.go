package cpu

import "github.com/inkwell-systems/luinux/opcode"

type unaryFn func(v uint16) uint16

// unaryVariant pairs a transform with the addressing mode its one operand
// uses: plain variants operate on the register itself, _M variants on
// the word at the address it holds.
type unaryVariant struct {
	fn   unaryFn
	mode addressMode
}

var unaryVariants = map[opcode.ID]unaryVariant{
	opcode.SETZ:   {func(uint16) uint16 { return 0 }, modeRegister},
	opcode.SETZ_M: {func(uint16) uint16 { return 0 }, modeMemory},
	opcode.SETO:   {func(uint16) uint16 { return 0xFFFF }, modeRegister},
	opcode.SETO_M: {func(uint16) uint16 { return 0xFFFF }, modeMemory},
	opcode.NOT:    {func(v uint16) uint16 { return ^v }, modeRegister},
	opcode.NOT_M:  {func(v uint16) uint16 { return ^v }, modeMemory},
	opcode.SHFR:   {func(v uint16) uint16 { return v >> 1 }, modeRegister},
	opcode.SHFR_M: {func(v uint16) uint16 { return v >> 1 }, modeMemory},
	opcode.SHFL:   {func(v uint16) uint16 { return v << 1 }, modeRegister},
	opcode.SHFL_M: {func(v uint16) uint16 { return v << 1 }, modeMemory},
	opcode.INC:    {func(v uint16) uint16 { return v + 1 }, modeRegister},
	opcode.INC_M:  {func(v uint16) uint16 { return v + 1 }, modeMemory},
	opcode.DEC:    {func(v uint16) uint16 { return v - 1 }, modeRegister},
	opcode.DEC_M:  {func(v uint16) uint16 { return v - 1 }, modeMemory},
}

func execUnary(v unaryVariant) handlerFunc {
	return func(p *Processor) error {
		o := p.dataOperand(v.mode, p.operandRegs[0])
		cur, err := o.read()
		if err != nil {
			return err
		}
		return o.write(v.fn(cur))
	}
}

// execSET stores the decoded literal — SET's transform ignores the
// operand's current value entirely, unlike the other unary ops.
func execSET(mode addressMode) handlerFunc {
	return func(p *Processor) error {
		o := p.dataOperand(mode, p.operandRegs[0])
		return o.write(p.pendingLiteral)
	}
}

// execTSTB sets RFL.Zero to bit operandRegs[0] of the (possibly
// dereferenced) second operand. The bit index itself is always a plain
// register value.
func execTSTB(mode1 addressMode) handlerFunc {
	return func(p *Processor) error {
		bitIndex := p.reg(p.operandRegs[0]).Read()
		v, err := p.dataOperand(mode1, p.operandRegs[1]).read()
		if err != nil {
			return err
		}
		bit := (v >> bitIndex) & 1
		p.Registers.SetFlag(opcode.FlagZero, bit != 0)
		return nil
	}
}

func init() {
	for id, v := range unaryVariants {
		registerHandler(id, execUnary(v))
	}
	registerHandler(opcode.SET, execSET(modeRegister))
	registerHandler(opcode.SET_M, execSET(modeMemory))
	registerHandler(opcode.TSTB, execTSTB(modeRegister))
	registerHandler(opcode.TSTB_M, execTSTB(modeMemory))
}
