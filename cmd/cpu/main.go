// Command cpu loads a program image and an NVRAM file and executes it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-systems/luinux/config"
	"github.com/inkwell-systems/luinux/cpu"
	"github.com/inkwell-systems/luinux/debugger"
	"github.com/inkwell-systems/luinux/memory"
	"github.com/inkwell-systems/luinux/opcode"
)

var (
	useDebugger bool
	configPath  string
)

func main() {
	root := &cobra.Command{
		Use:   "cpu <program_binary_file> <nvram_file>",
		Short: "Execute a luinux program image",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}
	root.Flags().BoolVarP(&useDebugger, "debugger", "d", false, "launch the interactive terminal debugger")
	root.Flags().StringVar(&configPath, "config", "", "path to config.toml (defaults to the platform config path)")
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	programPath, nvramPath := args[0], args[1]

	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	programBytes, err := os.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", programPath, err)
	}
	program := memory.New()
	if err := program.WritePayload(0, programBytes); err != nil {
		return err
	}

	nvram, err := memory.NewNVMemory(nvramPath)
	if err != nil {
		return err
	}

	p := cpu.New(program, nvram)

	if useDebugger {
		d := debugger.NewDebugger(p)
		tui := debugger.NewTUI(d)
		if err := tui.Run(); err != nil {
			return err
		}
	} else if err := runHeadless(p, cfg); err != nil {
		return err
	}

	if err := nvram.Flush(); err != nil {
		return err
	}

	if cfg.Display.DumpRegistersOnHalt {
		dumpRegisters(p, cfg)
	}

	return nil
}

// runHeadless steps the processor one cycle at a time rather than calling
// ExecuteAll, so max_cycles bounds actual instruction cycles rather than
// TRAP-to-TRAP resume counts.
func runHeadless(p *cpu.Processor, cfg *config.Config) error {
	var cycles uint64
	for !p.Halted() {
		if cfg.Execution.MaxCycles > 0 && cycles >= cfg.Execution.MaxCycles {
			return fmt.Errorf("exceeded max_cycles (%d)", cfg.Execution.MaxCycles)
		}
		if err := p.Step(); err != nil {
			return err
		}
		cycles++
		if p.Registers.GetFlag(opcode.FlagTrap) {
			if cfg.Execution.TrapIsFatal {
				return fmt.Errorf("TRAP hit with trap_is_fatal enabled")
			}
			log.Printf("TRAP at RIP=0x%04X, resuming", p.Registers.Read(opcode.RIP))
			p.Registers.SetFlag(opcode.FlagTrap, false)
		}
	}
	return nil
}

func dumpRegisters(p *cpu.Processor, cfg *config.Config) {
	format := "0x%04X"
	if cfg.Display.NumberFormat == "dec" {
		format = "%d"
	}
	for i := 0; i < opcode.RegisterCount; i++ {
		fmt.Printf("%-4s "+format+"\n", opcode.RegisterNames[i], p.Registers.Read(i))
	}
}
