package cpu

import "github.com/inkwell-systems/luinux/opcode"

// movVariant pairs each MOV family member with the addressing mode of its
// source (operand 0) and destination (operand 1) — destination is always
// the second operand.
var movVariants = map[opcode.ID][2]addressMode{
	opcode.MOV:    {modeRegister, modeRegister},
	opcode.MOV_RM: {modeRegister, modeMemory},
	opcode.MOV_MR: {modeMemory, modeRegister},
	opcode.MOV_MM: {modeMemory, modeMemory},
}

func execMOV(modes [2]addressMode) handlerFunc {
	return func(p *Processor) error {
		v, err := p.dataOperand(modes[0], p.operandRegs[0]).read()
		if err != nil {
			return err
		}
		return p.dataOperand(modes[1], p.operandRegs[1]).write(v)
	}
}

// execLOAD: R1 <- dataMemory[R0].
func execLOAD(p *Processor) error {
	addr := p.reg(p.operandRegs[0]).Read()
	v, err := p.dataMemory().Read16(addr)
	if err != nil {
		return err
	}
	p.reg(p.operandRegs[1]).Write(v)
	return nil
}

// execSTOR: dataMemory[R1] <- R0. STOR's contract is left unstated in the
// reference source; this follows the suggested reading (store opA at the
// address held by opB), matching LOAD's operand order reversed.
func execSTOR(p *Processor) error {
	addr := p.reg(p.operandRegs[1]).Read()
	v := p.reg(p.operandRegs[0]).Read()
	return p.dataMemory().Write16(addr, v)
}

func init() {
	for id, modes := range movVariants {
		registerHandler(id, execMOV(modes))
	}
	registerHandler(opcode.LOAD, execLOAD)
	registerHandler(opcode.STOR, execSTOR)
}
