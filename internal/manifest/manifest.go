// Package manifest loads an optional dieter.yaml describing a multi-file
// project: which source files belong to one checking unit, and in what
// order they should be handed to the loader (§4.3 treats declaration
// order across a whole program as significant for dispatch-chain ties).
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of dieter.yaml.
type Config struct {
	// Files lists source paths relative to the manifest, in load order.
	// A project directory with no manifest instead loads every
	// recognized source file it contains, in lexical order.
	Files []string `yaml:"files"`
}

// Load reads and parses path into a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
