package cpu

import "github.com/inkwell-systems/luinux/opcode"

type aluFn func(a, b uint16) uint16

var aluOps = map[opcode.ID]aluFn{
	opcode.ADD: func(a, b uint16) uint16 { return a + b },
	opcode.SUB: func(a, b uint16) uint16 { return a - b },
	opcode.MUL: func(a, b uint16) uint16 { return a * b },
	opcode.DIV: func(a, b uint16) uint16 { return a / b },
	opcode.AND: func(a, b uint16) uint16 { return a & b },
	opcode.OR:  func(a, b uint16) uint16 { return a | b },
	opcode.XOR: func(a, b uint16) uint16 { return a ^ b },
}

// indirectALU describes one op_RM/op_MR/op_MM variant: which base
// operation it performs and which addressing mode each operand uses.
type indirectALU struct {
	base         opcode.ID
	mode0, mode1 addressMode
}

var indirectALUTable = map[opcode.ID]indirectALU{
	opcode.ADD_RM: {opcode.ADD, modeRegister, modeMemory}, opcode.ADD_MR: {opcode.ADD, modeMemory, modeRegister}, opcode.ADD_MM: {opcode.ADD, modeMemory, modeMemory},
	opcode.SUB_RM: {opcode.SUB, modeRegister, modeMemory}, opcode.SUB_MR: {opcode.SUB, modeMemory, modeRegister}, opcode.SUB_MM: {opcode.SUB, modeMemory, modeMemory},
	opcode.MUL_RM: {opcode.MUL, modeRegister, modeMemory}, opcode.MUL_MR: {opcode.MUL, modeMemory, modeRegister}, opcode.MUL_MM: {opcode.MUL, modeMemory, modeMemory},
	opcode.DIV_RM: {opcode.DIV, modeRegister, modeMemory}, opcode.DIV_MR: {opcode.DIV, modeMemory, modeRegister}, opcode.DIV_MM: {opcode.DIV, modeMemory, modeMemory},
	opcode.AND_RM: {opcode.AND, modeRegister, modeMemory}, opcode.AND_MR: {opcode.AND, modeMemory, modeRegister}, opcode.AND_MM: {opcode.AND, modeMemory, modeMemory},
	opcode.OR_RM: {opcode.OR, modeRegister, modeMemory}, opcode.OR_MR: {opcode.OR, modeMemory, modeRegister}, opcode.OR_MM: {opcode.OR, modeMemory, modeMemory},
	opcode.XOR_RM: {opcode.XOR, modeRegister, modeMemory}, opcode.XOR_MR: {opcode.XOR, modeMemory, modeRegister}, opcode.XOR_MM: {opcode.XOR, modeMemory, modeMemory},
}

func execALU3(op aluFn) handlerFunc {
	return func(p *Processor) error {
		a := p.reg(p.operandRegs[0]).Read()
		b := p.reg(p.operandRegs[1]).Read()
		p.reg(p.operandRegs[2]).Write(op(a, b))
		return nil
	}
}

// execALUIndirect dereferences each operand per its addressing mode and
// writes the result to RAC, the implicit accumulator for every 2-arg ALU
// variant.
func execALUIndirect(cfg indirectALU) handlerFunc {
	op := aluOps[cfg.base]
	return func(p *Processor) error {
		a, err := p.dataOperand(cfg.mode0, p.operandRegs[0]).read()
		if err != nil {
			return err
		}
		b, err := p.dataOperand(cfg.mode1, p.operandRegs[1]).read()
		if err != nil {
			return err
		}
		p.Registers.Write(opcode.RAC, op(a, b))
		return nil
	}
}

func init() {
	for id, op := range aluOps {
		registerHandler(id, execALU3(op))
	}
	for id, cfg := range indirectALUTable {
		registerHandler(id, execALUIndirect(cfg))
	}
}
