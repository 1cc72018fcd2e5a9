package debugger

import (
	"fmt"

	"github.com/inkwell-systems/luinux/opcode"
)

func (d *Debugger) cmdStep(args []string) error {
	if err := d.CPU.Step(); err != nil {
		return err
	}
	d.Println("stepped")
	return nil
}

// cmdContinue steps one instruction at a time rather than delegating to
// ExecuteAll, so a breakpoint mid-run actually stops the debugger instead
// of only TRAP or STOP doing so.
func (d *Debugger) cmdContinue(args []string) error {
	if d.CPU.Halted() {
		return fmt.Errorf("processor is halted")
	}
	for {
		if err := d.CPU.Step(); err != nil {
			return err
		}
		if hit, msg := d.ShouldBreak(); hit {
			d.Println(msg)
			return nil
		}
		if d.CPU.Registers.GetFlag(opcode.FlagTrap) {
			d.Println("stopped at TRAP")
			return nil
		}
		if d.CPU.Halted() {
			d.Println("halted")
			return nil
		}
	}
}

func (d *Debugger) cmdRegisters(args []string) error {
	for i := 0; i < opcode.RegisterCount; i++ {
		d.Printf("%-4s 0x%04X", opcode.RegisterNames[i], d.CPU.Registers.Read(i))
		if i%4 == 3 {
			d.Println()
		} else {
			d.Printf("  ")
		}
	}
	d.Println()
	return nil
}

func (d *Debugger) cmdFlags(args []string) error {
	rfl := d.CPU.Registers.Read(opcode.RFL)
	d.Printf("RFL: 0x%04X  Zero=%t Trap=%t Memory=%t\n", rfl,
		d.CPU.Registers.GetFlag(opcode.FlagZero),
		d.CPU.Registers.GetFlag(opcode.FlagTrap),
		d.CPU.Registers.GetFlag(opcode.FlagMemory))
	return nil
}

// cmdMem dumps a 16-byte-per-row hex view: "mem sram h'100" or
// "mem nvram 0" (bank defaults to sram).
func (d *Debugger) cmdMem(args []string) error {
	bank := "sram"
	addrArg := 0
	if len(args) == 2 {
		bank = args[0]
		addrArg = 1
	} else if len(args) != 1 {
		return fmt.Errorf("usage: mem [sram|nvram] <address>")
	}

	start, err := d.ResolveAddress(args[addrArg])
	if err != nil {
		return err
	}

	var read func(addr uint16) (byte, error)
	switch bank {
	case "sram":
		read = d.CPU.SRAM.Read8
	case "nvram":
		if d.CPU.NVRAM == nil {
			return fmt.Errorf("no NVRAM configured")
		}
		read = d.CPU.NVRAM.Read8
	default:
		return fmt.Errorf("unknown bank %q, want sram or nvram", bank)
	}

	for row := 0; row < 8; row++ {
		rowAddr := start + uint16(row*16)
		d.Printf("0x%04X: ", rowAddr)
		for col := 0; col < 16; col++ {
			b, err := read(rowAddr + uint16(col))
			if err != nil {
				d.Printf("?? ")
				continue
			}
			d.Printf("%02X ", b)
		}
		d.Println()
	}
	return nil
}

func (d *Debugger) cmdBreak(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: break <address|label>")
	}
	addr, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}
	bp := d.Breakpoints.Add(addr)
	d.Printf("breakpoint %d at 0x%04X\n", bp.ID, addr)
	return nil
}

func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		d.Breakpoints.Clear()
		d.Println("all breakpoints deleted")
		return nil
	}
	addr, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}
	if err := d.Breakpoints.DeleteAt(addr); err != nil {
		return err
	}
	d.Printf("deleted breakpoint at 0x%04X\n", addr)
	return nil
}

// cmdClearTrap clears RFL.Trap so a subsequent continue/step resumes past
// a TRAP pause.
func (d *Debugger) cmdClearTrap(args []string) error {
	d.CPU.Registers.SetFlag(opcode.FlagTrap, false)
	d.Println("Trap flag cleared")
	return nil
}

func (d *Debugger) cmdReset(args []string) error {
	d.CPU.Registers.Reset()
	d.CPU.Registers.Write(opcode.RSP, opcode.StackTop)
	d.Println("registers reset")
	return nil
}

func (d *Debugger) cmdHelp(args []string) error {
	d.Println("commands: step(s) continue(c) registers(r) flags(f) mem(x) break(b) delete(d) cleartrap reset help")
	return nil
}
