package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/inkwell-systems/luinux/opcode"
)

// TUI is the terminal inspector: register/flag/memory panels plus a
// command line, wired over a Debugger.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application

	MainLayout   *tview.Flex
	RegisterView *tview.TextView
	FlagsView    *tview.TextView
	MemoryView   *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField
}

func NewTUI(d *Debugger) *TUI {
	t := &TUI{
		Debugger: d,
		App:      tview.NewApplication(),
	}
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	return t
}

func (t *TUI) initializeViews() {
	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.FlagsView = tview.NewTextView().SetDynamicColors(true)
	t.FlagsView.SetBorder(true).SetTitle(" Flags ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.MemoryView.SetBorder(true).SetTitle(" Memory (SRAM 0x0000) ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 6, 0, false).
		AddItem(t.FlagsView, 3, 0, false).
		AddItem(t.MemoryView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 3, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			t.executeCommand("continue")
			return nil
		case tcell.KeyF11:
			t.executeCommand("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandInput.GetText()
	if cmd != "" {
		t.executeCommand(cmd)
		t.CommandInput.SetText("")
	}
}

func (t *TUI) executeCommand(cmd string) {
	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()
	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}
	t.RefreshAll()
}

func (t *TUI) WriteOutput(text string) {
	fmt.Fprint(t.OutputView, text)
	t.OutputView.ScrollToEnd()
}

func (t *TUI) RefreshAll() {
	t.updateRegisters()
	t.updateFlags()
	t.updateMemory()
	t.App.Draw()
}

func (t *TUI) updateRegisters() {
	regs := t.Debugger.CPU.Registers
	var lines []string
	for row := 0; row < opcode.RegisterCount; row += 4 {
		var cols []string
		for col := row; col < row+4 && col < opcode.RegisterCount; col++ {
			cols = append(cols, fmt.Sprintf("%-4s 0x%04X", opcode.RegisterNames[col], regs.Read(col)))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}
	t.RegisterView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateFlags() {
	regs := t.Debugger.CPU.Registers
	zero, trap, mem := "z", "t", "m"
	if regs.GetFlag(opcode.FlagZero) {
		zero = "[green]Z[white]"
	}
	if regs.GetFlag(opcode.FlagTrap) {
		trap = "[yellow]T[white]"
	}
	if regs.GetFlag(opcode.FlagMemory) {
		mem = "[blue]M[white]"
	}
	t.FlagsView.SetText(fmt.Sprintf("%s %s %s  (RFL 0x%04X)", zero, trap, mem, regs.Read(opcode.RFL)))
}

func (t *TUI) updateMemory() {
	var b strings.Builder
	for row := 0; row < 8; row++ {
		addr := uint16(row * 16)
		fmt.Fprintf(&b, "0x%04X: ", addr)
		for col := 0; col < 16; col++ {
			v, _ := t.Debugger.CPU.SRAM.Read8(addr + uint16(col))
			fmt.Fprintf(&b, "%02X ", v)
		}
		b.WriteByte('\n')
	}
	t.MemoryView.SetText(b.String())
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	t.RefreshAll()
	t.WriteOutput("[green]luinux debugger[white]\n")
	t.WriteOutput("F5 continue, F11 step, Ctrl-C quit. Type 'help' for commands.\n\n")
	return t.App.SetRoot(t.MainLayout, true).SetFocus(t.CommandInput).Run()
}

func (t *TUI) Stop() {
	t.App.Stop()
}
