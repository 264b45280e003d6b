package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Assembler.DefaultOrg != "0x0000" {
		t.Errorf("Expected DefaultOrg=0x0000, got %s", cfg.Assembler.DefaultOrg)
	}
	if cfg.Assembler.MaxInt8Digits != 3 {
		t.Errorf("Expected MaxInt8Digits=3, got %d", cfg.Assembler.MaxInt8Digits)
	}

	if cfg.Listing.BytesPerLine != 4 {
		t.Errorf("Expected BytesPerLine=4, got %d", cfg.Listing.BytesPerLine)
	}
	if cfg.Listing.ReplaceNames {
		t.Error("Expected ReplaceNames=false")
	}

	if cfg.Emulator.MaxInstructions != 1000000 {
		t.Errorf("Expected MaxInstructions=1000000, got %d", cfg.Emulator.MaxInstructions)
	}
	if cfg.Emulator.EntryPoint != "0x0000" {
		t.Errorf("Expected EntryPoint=0x0000, got %s", cfg.Emulator.EntryPoint)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "z80asm" && path != "config.toml" {
			t.Errorf("Expected path in z80asm directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Assembler.DefaultOrg = "0x8000"
	cfg.Listing.ColorOutput = true
	cfg.Listing.ReplaceNames = true
	cfg.Emulator.MaxInstructions = 5000000

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Assembler.DefaultOrg != "0x8000" {
		t.Errorf("Expected DefaultOrg=0x8000, got %s", loaded.Assembler.DefaultOrg)
	}
	if !loaded.Listing.ColorOutput {
		t.Error("Expected ColorOutput=true")
	}
	if !loaded.Listing.ReplaceNames {
		t.Error("Expected ReplaceNames=true")
	}
	if loaded.Emulator.MaxInstructions != 5000000 {
		t.Errorf("Expected MaxInstructions=5000000, got %d", loaded.Emulator.MaxInstructions)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Emulator.MaxInstructions != 1000000 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[emulator]
max_instructions = "not a number"  # Invalid: should be uint64
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
