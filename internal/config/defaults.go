// Package config provides centralized configuration defaults for idnakit.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile represents the structure of config.toml
type ConfigFile struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults holds all default values
type Defaults struct {
	ToUnicode       bool `toml:"to_unicode"`
	STD3            bool `toml:"std3"`
	BiDi            bool `toml:"bidi"`
	ContextJ        bool `toml:"contextj"`
	Nontransitional bool `toml:"nontransitional"`
	Label           bool `toml:"label"`
	Quiet           bool `toml:"quiet"`
	Verbose         bool `toml:"verbose"`
}

// Hardcoded fallback defaults (used if config.toml not found)
var fallbackDefaults = Defaults{
	ToUnicode:       false,
	STD3:            true,
	BiDi:            true,
	ContextJ:        true,
	Nontransitional: false,
	Label:           false,
	Quiet:           false,
	Verbose:         false,
}

// loaded holds the parsed config (nil if not loaded yet)
var loaded *ConfigFile

// Load reads config.toml from the project root
func Load() *ConfigFile {
	if loaded != nil {
		return loaded
	}

	// Try to find config.toml by walking up from executable or cwd
	paths := []string{
		"config.toml",
		"../config.toml",
		"../../config.toml",
	}

	// Also try from executable location
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "..", "config.toml"),
			filepath.Join(dir, "..", "..", "config.toml"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			var cfg ConfigFile
			if _, err := toml.DecodeFile(path, &cfg); err == nil {
				loaded = &cfg
				return loaded
			}
		}
	}

	// Return fallback if config.toml not found
	loaded = &ConfigFile{Defaults: fallbackDefaults}
	return loaded
}

// Convenience accessors that load config on first access
var (
	DefaultToUnicode       = func() bool { return Load().Defaults.ToUnicode }
	DefaultSTD3            = func() bool { return Load().Defaults.STD3 }
	DefaultBiDi            = func() bool { return Load().Defaults.BiDi }
	DefaultContextJ        = func() bool { return Load().Defaults.ContextJ }
	DefaultNontransitional = func() bool { return Load().Defaults.Nontransitional }
	DefaultLabel           = func() bool { return Load().Defaults.Label }
	DefaultQuiet           = func() bool { return Load().Defaults.Quiet }
	DefaultVerbose         = func() bool { return Load().Defaults.Verbose }
)
