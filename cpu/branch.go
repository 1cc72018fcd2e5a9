package cpu

import (
	"github.com/inkwell-systems/luinux/lerr"
	"github.com/inkwell-systems/luinux/opcode"
)

// branchTest describes one JZ/JNZ family member: which addressing mode
// each operand uses, and whether the branch fires on a zero or nonzero
// test value.
type branchTest struct {
	wantZero     bool
	mode0, mode1 addressMode
}

var branchTable = map[opcode.ID]branchTest{
	opcode.JZ: {true, modeRegister, modeRegister}, opcode.JZ_RM: {true, modeRegister, modeMemory},
	opcode.JZ_MR: {true, modeMemory, modeRegister}, opcode.JZ_MM: {true, modeMemory, modeMemory},
	opcode.JNZ: {false, modeRegister, modeRegister}, opcode.JNZ_RM: {false, modeRegister, modeMemory},
	opcode.JNZ_MR: {false, modeMemory, modeRegister}, opcode.JNZ_MM: {false, modeMemory, modeMemory},
}

func execBranch(cfg branchTest) handlerFunc {
	return func(p *Processor) error {
		v, err := p.dataOperand(cfg.mode0, p.operandRegs[0]).read()
		if err != nil {
			return err
		}
		if (v == 0) != cfg.wantZero {
			return nil
		}
		target, err := p.dataOperand(cfg.mode1, p.operandRegs[1]).read()
		if err != nil {
			return err
		}
		p.Registers.Write(opcode.RIP, target)
		return nil
	}
}

// execJCompare implements JE/JNE: R0 is compared against RAC (not
// against R1), and the jump target R1 is always a plain register value —
// neither opcode has an indirect-addressing family.
func execJCompare(wantEqual bool) handlerFunc {
	return func(p *Processor) error {
		r0 := p.reg(p.operandRegs[0]).Read()
		rac := p.Registers.Read(opcode.RAC)
		if (r0 == rac) != wantEqual {
			return nil
		}
		target := p.reg(p.operandRegs[1]).Read()
		p.Registers.Write(opcode.RIP, target)
		return nil
	}
}

func execJMP(p *Processor) error {
	if !p.hasPendingLiteral {
		return lerr.New(lerr.InvalidInstruction, "JMP decoded without a pending literal")
	}
	p.Registers.Write(opcode.RIP, p.pendingLiteral)
	return nil
}

func init() {
	for id, cfg := range branchTable {
		registerHandler(id, execBranch(cfg))
	}
	registerHandler(opcode.JE, execJCompare(true))
	registerHandler(opcode.JNE, execJCompare(false))
	registerHandler(opcode.JMP, execJMP)
}
