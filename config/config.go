// Package config loads cosmetic settings for the REPL and CLI driver
// from a YAML file, grounded on go-mix's Repl{Banner, Version, Author,
// Line, License, Prompt} fields (go-mix/repl/repl.go) but sourced from
// disk instead of hard-coded constructor arguments, the way
// config-file-backed tools elsewhere in the pack load `gopkg.in/
// yaml.v3` documents into a plain struct.
//
// None of this is part of gorb's language core (spec.md §1 scopes the
// CLI driver out as an external collaborator); it exists purely to
// dress up the host binary built on top of that core.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the driver's cosmetic and debug-dump settings.
type Config struct {
	Prompt     string `yaml:"prompt"`
	Banner     string `yaml:"banner"`
	Colors     bool   `yaml:"colors"`
	DumpTokens bool   `yaml:"dumpTokens"`
	DumpAST    bool   `yaml:"dumpAST"`
}

// Default returns the configuration used when no file is present or
// the file fails to parse.
func Default() Config {
	return Config{
		Prompt: "gorb> ",
		Banner: "gorb - a small expression-oriented scripting language",
		Colors: true,
	}
}

// Load reads path as YAML and overlays it on Default. A missing file
// is not an error — the driver simply runs with defaults. A malformed
// file's parse error is returned so the caller can report it, but the
// returned Config is still usable (defaults).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
