// Package debugger implements an interactive terminal inspector over a
// running cpu.Processor: register/flag/memory panels plus a command line
// for stepping across TRAP pauses and clearing the Trap flag.
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkwell-systems/luinux/cpu"
	"github.com/inkwell-systems/luinux/opcode"
)

// Debugger wraps a Processor with breakpoint tracking, a label table for
// address resolution, and a text output buffer commands write to.
type Debugger struct {
	CPU         *cpu.Processor
	Breakpoints *BreakpointManager
	Labels      map[string]uint16

	LastCommand string
	Output      strings.Builder
}

func NewDebugger(p *cpu.Processor) *Debugger {
	return &Debugger{
		CPU:         p,
		Breakpoints: NewBreakpointManager(),
		Labels:      make(map[string]uint16),
	}
}

func (d *Debugger) LoadLabels(labels map[string]uint16) {
	d.Labels = labels
}

// ResolveAddress accepts a label name, a h'-prefixed hex literal, or a
// bare decimal string.
func (d *Debugger) ResolveAddress(tok string) (uint16, error) {
	if addr, ok := d.Labels[tok]; ok {
		return addr, nil
	}
	if strings.HasPrefix(tok, "h'") {
		n, err := strconv.ParseUint(tok[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid address %q: %w", tok, err)
		}
		return uint16(n), nil
	}
	n, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", tok, err)
	}
	return uint16(n), nil
}

// ExecuteCommand parses and runs one command line.
func (d *Debugger) ExecuteCommand(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		line = d.LastCommand
	}
	if line != "" {
		d.LastCommand = line
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "step", "s":
		return d.cmdStep(args)
	case "continue", "c":
		return d.cmdContinue(args)
	case "registers", "regs", "r":
		return d.cmdRegisters(args)
	case "flags", "f":
		return d.cmdFlags(args)
	case "mem", "x":
		return d.cmdMem(args)
	case "break", "b":
		return d.cmdBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "cleartrap":
		return d.cmdClearTrap(args)
	case "reset":
		return d.cmdReset(args)
	case "help", "h", "?":
		return d.cmdHelp(args)
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

func (d *Debugger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&d.Output, format, args...)
}

func (d *Debugger) Println(args ...interface{}) {
	fmt.Fprintln(&d.Output, args...)
}

func (d *Debugger) GetOutput() string {
	out := d.Output.String()
	d.Output.Reset()
	return out
}

// ShouldBreak reports whether RIP currently sits on an enabled
// breakpoint, recording the hit.
func (d *Debugger) ShouldBreak() (bool, string) {
	rip := d.CPU.Registers.Read(opcode.RIP)
	if bp, hit := d.Breakpoints.Hit(rip); hit {
		return true, fmt.Sprintf("breakpoint %d at 0x%04X", bp.ID, bp.Address)
	}
	return false, ""
}
