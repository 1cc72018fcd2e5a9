package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Execution.MaxCycles != 1_000_000 {
		t.Errorf("Expected MaxCycles=1000000, got %d", cfg.Execution.MaxCycles)
	}
	if cfg.Execution.StackReserve != 512 {
		t.Errorf("Expected StackReserve=512, got %d", cfg.Execution.StackReserve)
	}
	if cfg.Execution.TrapIsFatal {
		t.Error("Expected TrapIsFatal=false")
	}
	if cfg.Memory.NVRAMPath != "" {
		t.Errorf("Expected empty NVRAMPath, got %s", cfg.Memory.NVRAMPath)
	}
	if !cfg.Memory.ZeroFill {
		t.Error("Expected ZeroFill=true")
	}
	if !cfg.Display.DumpRegistersOnHalt {
		t.Error("Expected DumpRegistersOnHalt=true")
	}
	if cfg.Display.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Display.NumberFormat)
	}
	if !cfg.Assembler.WarnUnusedLabels {
		t.Error("Expected WarnUnusedLabels=true")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Error("ConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	contents := `
[execution]
max_cycles = 5000000
trap_is_fatal = true

[memory]
nvram_path = "program.nvram"

[display]
number_format = "dec"
`
	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Execution.MaxCycles != 5000000 {
		t.Errorf("Expected MaxCycles=5000000, got %d", cfg.Execution.MaxCycles)
	}
	if !cfg.Execution.TrapIsFatal {
		t.Error("Expected TrapIsFatal=true")
	}
	if cfg.Memory.NVRAMPath != "program.nvram" {
		t.Errorf("Expected NVRAMPath=program.nvram, got %s", cfg.Memory.NVRAMPath)
	}
	if cfg.Display.NumberFormat != "dec" {
		t.Errorf("Expected NumberFormat=dec, got %s", cfg.Display.NumberFormat)
	}
	// Fields the file didn't override keep their defaults.
	if cfg.Execution.StackReserve != 512 {
		t.Errorf("Expected unoverridden StackReserve=512, got %d", cfg.Execution.StackReserve)
	}
	if !cfg.Assembler.WarnUnusedLabels {
		t.Error("Expected unoverridden WarnUnusedLabels=true")
	}
}

func TestLoad_NonExistentFileReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load should not error on non-existent file: %v", err)
	}
	if cfg.Execution.MaxCycles != 1_000_000 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[execution]
max_cycles = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}
