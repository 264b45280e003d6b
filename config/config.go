package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents z80asm's assembler, listing, and emulator settings.
type Config struct {
	// Assembler settings
	Assembler struct {
		DefaultOrg    string `toml:"default_org"`
		MaxInt8Digits int    `toml:"max_int8_digits"`
		WarnOrgGaps   bool   `toml:"warn_org_gaps"`
	} `toml:"assembler"`

	// Listing output settings
	Listing struct {
		ColorOutput      bool `toml:"color_output"`
		BytesPerLine     int  `toml:"bytes_per_line"`
		ReplaceNames     bool `toml:"replace_names"`
		InterpretLiteral bool `toml:"interpret_literals"`
	} `toml:"listing"`

	// Emulator settings (the §6 adjunct collaborator)
	Emulator struct {
		MaxInstructions uint64 `toml:"max_instructions"`
		EntryPoint      string `toml:"entry_point"`
	} `toml:"emulator"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Assembler.DefaultOrg = "0x0000"
	cfg.Assembler.MaxInt8Digits = 3
	cfg.Assembler.WarnOrgGaps = true

	cfg.Listing.ColorOutput = false
	cfg.Listing.BytesPerLine = 4
	cfg.Listing.ReplaceNames = false
	cfg.Listing.InterpretLiteral = false

	cfg.Emulator.MaxInstructions = 1000000
	cfg.Emulator.EntryPoint = "0x0000"

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "z80asm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "z80asm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
