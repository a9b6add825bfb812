package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// runConfig is the TOML-file shape accepted by --config, mirroring the
// flag set below so a run can be fully specified either way. Grounded on
// the rest of the example pack's go.mod manifests that pull in
// BurntSushi/toml for exactly this kind of file-based run configuration.
type runConfig struct {
	Topology           string  `toml:"topology"`
	Size               int     `toml:"size"`
	ConnectProb        float64 `toml:"connect_probability"`
	InhibitoryFraction float64 `toml:"inhibitory_fraction"`
	DurationMS         float64 `toml:"duration_ms"`
	InputPattern       string  `toml:"input_pattern"`
	InputStrength      float64 `toml:"input_strength"`
	NoiseLevel         float64 `toml:"noise_level"`
	GlobalPlasticity   bool    `toml:"global_plasticity"`
	Homeostasis        bool    `toml:"homeostasis"`
	TargetFiringRate   float64 `toml:"target_firing_rate_hz"`
	Seed               int64   `toml:"seed"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Topology:           "random",
		Size:               20,
		ConnectProb:        0.3,
		InhibitoryFraction: 0,
		DurationMS:         1000,
		InputPattern:       "Random",
		InputStrength:      1.0,
		NoiseLevel:         0,
		GlobalPlasticity:   true,
		Homeostasis:        false,
		TargetFiringRate:   10,
		Seed:               1,
	}
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return runConfig{}, fmt.Errorf("sandboxctl: reading config %q: %w", path, err)
	}
	return cfg, nil
}

// demoRunConfig is the config reset-demo writes out: a cortical column
// with a modest inhibitory fraction, plasticity and homeostasis both on,
// driven by rhythmic input -- a self-contained starting point for anyone
// who wants to see the engine do something interesting without first
// hand-assembling flags.
func demoRunConfig() runConfig {
	cfg := defaultRunConfig()
	cfg.Topology = "cortical-column"
	cfg.Size = 16
	cfg.InhibitoryFraction = 0.2
	cfg.DurationMS = 2000
	cfg.InputPattern = "Rhythmic"
	cfg.Homeostasis = true
	return cfg
}

func writeRunConfig(path string, cfg runConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sandboxctl: creating %q: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("sandboxctl: writing %q: %w", path, err)
	}
	return nil
}
