// Package machinecfg reads and writes machine settings files. The YAML
// shape mirrors an operator key sheet; decoding maps onto
// machine.Config and leaves all semantic validation to machine.New.
package machinecfg

import (
	"fmt"
	"os"
	"strings"

	"enigma-core/machine"
	"gopkg.in/yaml.v3"
)

// File is the on-disk settings schema. Omitted fields fall back to the
// stock Wehrmacht defaults so a minimal file stays minimal.
type File struct {
	Reflector        string   `yaml:"reflector,omitempty"`
	Rotors           []string `yaml:"rotors,omitempty"` // left to right
	Rings            []int    `yaml:"rings,omitempty"`
	Position         string   `yaml:"position,omitempty"`
	Plugboard        string   `yaml:"plugboard,omitempty"` // "AB CD EF"
	PreserveNonAlpha *bool    `yaml:"preserve_non_alpha,omitempty"`
}

// Decode parses settings YAML into a machine config.
func Decode(data []byte) (machine.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return machine.Config{}, fmt.Errorf("parse settings: %w", err)
	}
	cfg := machine.Default()
	if f.Reflector != "" {
		cfg.Reflector = f.Reflector
	}
	if f.Rotors != nil {
		if len(f.Rotors) != 3 {
			return machine.Config{}, fmt.Errorf("settings: want exactly 3 rotors, got %d", len(f.Rotors))
		}
		copy(cfg.Rotors[:], f.Rotors)
	}
	if f.Rings != nil {
		if len(f.Rings) != 3 {
			return machine.Config{}, fmt.Errorf("settings: want exactly 3 ring settings, got %d", len(f.Rings))
		}
		copy(cfg.Rings[:], f.Rings)
	}
	if f.Position != "" {
		cfg.Position = f.Position
	}
	cfg.Plugboard = strings.Fields(f.Plugboard)
	if f.PreserveNonAlpha != nil {
		cfg.PreserveNonAlpha = *f.PreserveNonAlpha
	}
	return cfg, nil
}

// Encode renders a config as settings YAML.
func Encode(cfg machine.Config) ([]byte, error) {
	preserve := cfg.PreserveNonAlpha
	f := File{
		Reflector:        cfg.Reflector,
		Rotors:           cfg.Rotors[:],
		Rings:            cfg.Rings[:],
		Position:         cfg.Position,
		Plugboard:        strings.Join(cfg.Plugboard, " "),
		PreserveNonAlpha: &preserve,
	}
	return yaml.Marshal(f)
}

// Load reads a settings file.
func Load(path string) (machine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return machine.Config{}, fmt.Errorf("read settings: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return machine.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a settings file.
func Save(path string, cfg machine.Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
