package cpu

import "github.com/inkwell-systems/luinux/opcode"

// The stack always lives in SRAM: RSP addresses it directly regardless
// of SWM's data-memory bank switch. Only the pushed/popped value's own
// addressing mode (plain vs _M) is affected by it — and per the
// reference wording, that dereference is SRAM too, so the whole family
// bypasses dataMemory entirely.

func execPUSH(mode addressMode) handlerFunc {
	return func(p *Processor) error {
		v, err := p.stackOperand(mode, p.operandRegs[0]).read()
		if err != nil {
			return err
		}
		rsp := p.Registers.Read(opcode.RSP)
		if err := p.SRAM.Write16(rsp, v); err != nil {
			return err
		}
		p.Registers.Write(opcode.RSP, rsp+2)
		return nil
	}
}

func execPOP(mode addressMode) handlerFunc {
	return func(p *Processor) error {
		rsp := p.Registers.Read(opcode.RSP) - 2
		p.Registers.Write(opcode.RSP, rsp)
		v, err := p.SRAM.Read16(rsp)
		if err != nil {
			return err
		}
		return p.stackOperand(mode, p.operandRegs[0]).write(v)
	}
}

func init() {
	registerHandler(opcode.PUSH, execPUSH(modeRegister))
	registerHandler(opcode.PUSH_M, execPUSH(modeMemory))
	registerHandler(opcode.POP, execPOP(modeRegister))
	registerHandler(opcode.POP_M, execPOP(modeMemory))
}
