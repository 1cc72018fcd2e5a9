// Package config loads the optional TOML configuration file the cpu CLI
// reads at startup (the assembler CLI does not read one). A missing file
// just means DefaultConfig's values apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the TOML-configurable settings. The cpu CLI reads
// max_cycles, trap_is_fatal, dump_registers_on_halt and number_format;
// stack_reserve, nvram_path, zero_fill and warn_unused_labels are parsed
// and defaulted but not read by either CLI.
type Config struct {
	Execution struct {
		MaxCycles    uint64 `toml:"max_cycles"`
		StackReserve uint   `toml:"stack_reserve"`
		TrapIsFatal  bool   `toml:"trap_is_fatal"`
	} `toml:"execution"`

	Memory struct {
		NVRAMPath string `toml:"nvram_path"`
		ZeroFill  bool   `toml:"zero_fill"`
	} `toml:"memory"`

	Display struct {
		DumpRegistersOnHalt bool   `toml:"dump_registers_on_halt"`
		NumberFormat        string `toml:"number_format"` // hex, dec
	} `toml:"display"`

	Assembler struct {
		WarnUnusedLabels bool `toml:"warn_unused_labels"`
	} `toml:"assembler"`
}

// DefaultConfig returns the configuration the cpu CLI runs with absent a
// config file.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.MaxCycles = 1_000_000
	cfg.Execution.StackReserve = 512
	cfg.Execution.TrapIsFatal = false

	cfg.Memory.NVRAMPath = ""
	cfg.Memory.ZeroFill = true

	cfg.Display.DumpRegistersOnHalt = true
	cfg.Display.NumberFormat = "hex"

	cfg.Assembler.WarnUnusedLabels = true

	return cfg
}

// ConfigPath returns the platform-specific search path for the config
// file: $HOME/.config/luinux-emulator on Linux and macOS,
// %APPDATA%\luinux-emulator on Windows. XDG_CONFIG_HOME is not consulted.
// It falls back to a bare "config.toml" in the current directory if the
// home directory can't be resolved or the OS is none of these.
func ConfigPath() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "luinux-emulator")

	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config", "luinux-emulator")

	default:
		return "config.toml"
	}

	return filepath.Join(dir, "config.toml")
}

// Load reads and merges path over DefaultConfig's values. A missing file
// is not an error: Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
