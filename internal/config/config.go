// File: config.go
// Title: Toolkit Configuration
// Description: Implements the explicit, validated configuration structure
//              for the language pack tools, replacing edit-the-constants
//              configuration. Files are loaded from TOML or YAML with the
//              format auto-detected from the extension.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-21 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/janAlonola/globasa-minecraft/internal/apperr"
	"github.com/janAlonola/globasa-minecraft/internal/merge"
	"github.com/janAlonola/globasa-minecraft/internal/overlap"
	"github.com/janAlonola/globasa-minecraft/internal/utils/stringx"
)

// DefaultPath is the config file looked up when --config is not given
const DefaultPath = "langpack.toml"

// Config holds the complete toolkit configuration
type Config struct {
	Paths    PathsConfig    `toml:"paths" yaml:"paths"`
	Merge    MergeConfig    `toml:"merge" yaml:"merge"`
	Progress ProgressConfig `toml:"progress" yaml:"progress"`
}

// PathsConfig holds the locale file locations
type PathsConfig struct {
	// Reference is the authoritative key set (required)
	Reference string `toml:"reference" yaml:"reference"`

	// Candidate is the localized file being merged or assessed (required)
	Candidate string `toml:"candidate" yaml:"candidate"`

	// Output is the merge destination; empty means in-place over Candidate
	Output string `toml:"output" yaml:"output"`

	// Base is the source-language file for the overlap heuristic; empty
	// disables base-language comparison
	Base string `toml:"base" yaml:"base"`
}

// MergeConfig holds merger settings
type MergeConfig struct {
	// Fallback selects the fill value for missing translations:
	// "reference" or "empty"
	Fallback string `toml:"fallback" yaml:"fallback"`
}

// ProgressConfig holds analyzer settings
type ProgressConfig struct {
	MissingCap  int `toml:"missing_cap" yaml:"missing_cap"`
	ExampleCap  int `toml:"example_cap" yaml:"example_cap"`
	ObsoleteCap int `toml:"obsolete_cap" yaml:"obsolete_cap"`

	// AllowWords are case-insensitive words acceptable even if left
	// untranslated (color names, proper nouns)
	AllowWords []string `toml:"allow_words" yaml:"allow_words"`

	MostlyThreshold float64 `toml:"mostly_threshold" yaml:"mostly_threshold"`
	FullyThreshold  float64 `toml:"fully_threshold" yaml:"fully_threshold"`
}

// Default returns the configuration defaults. File loading overlays the
// file content on top of these, so omitted fields keep their default.
func Default() Config {
	return Config{
		Paths: PathsConfig{
			Reference: "reference/en_nz.json",
			Candidate: "globasamc/assets/minecraft/lang/glb_glb.json",
			Base:      "reference/en_nz.json",
		},
		Merge: MergeConfig{
			Fallback: "reference",
		},
		Progress: ProgressConfig{
			MissingCap:      200,
			ExampleCap:      40,
			ObsoleteCap:     30,
			MostlyThreshold: 0.85,
			FullyThreshold:  0.05,
		},
	}
}

// Load reads, parses, and validates a configuration file. The format is
// detected from the extension: .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Newf(apperr.CodeNotFound, "config file not found: %s", path)
		}
		return nil, apperr.Wrapf(err, apperr.CodeIO, "read %s", path)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, apperr.Wrapf(err, apperr.CodeInvalidConfig, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, apperr.Wrapf(err, apperr.CodeInvalidConfig, "parse %s", path)
		}
	default:
		return nil, apperr.Newf(apperr.CodeInvalidConfig,
			"unsupported config format %q (want .toml, .yaml, or .yml)", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate applies all configuration rules. Contradictory combinations are
// rejected here rather than silently misbehaving later.
func (c *Config) Validate() error {
	if stringx.IsBlank(c.Paths.Reference) {
		return apperr.New(apperr.CodeInvalidConfig, "paths.reference is required")
	}
	if stringx.IsBlank(c.Paths.Candidate) {
		return apperr.New(apperr.CodeInvalidConfig, "paths.candidate is required")
	}

	if _, err := merge.ParseMode(c.Merge.Fallback); err != nil {
		return apperr.Wrap(err, apperr.CodeInvalidConfig, "merge.fallback")
	}

	if c.Progress.MissingCap < 0 {
		return apperr.Newf(apperr.CodeInvalidConfig, "progress.missing_cap must not be negative (got %d)", c.Progress.MissingCap)
	}
	if c.Progress.ExampleCap < 0 {
		return apperr.Newf(apperr.CodeInvalidConfig, "progress.example_cap must not be negative (got %d)", c.Progress.ExampleCap)
	}
	if c.Progress.ObsoleteCap < 0 {
		return apperr.Newf(apperr.CodeInvalidConfig, "progress.obsolete_cap must not be negative (got %d)", c.Progress.ObsoleteCap)
	}

	if err := c.Thresholds().Validate(); err != nil {
		return apperr.Wrap(err, apperr.CodeInvalidConfig, "progress thresholds")
	}

	return nil
}

// FallbackMode returns the validated merge fallback mode
func (c *Config) FallbackMode() merge.Mode {
	mode, err := merge.ParseMode(c.Merge.Fallback)
	if err != nil {
		return merge.FallbackReference
	}
	return mode
}

// OutputPath returns the merge destination, defaulting to in-place
func (c *Config) OutputPath() string {
	if stringx.IsBlank(c.Paths.Output) {
		return c.Paths.Candidate
	}
	return c.Paths.Output
}

// Thresholds returns the heuristic cut-offs
func (c *Config) Thresholds() overlap.Thresholds {
	return overlap.Thresholds{
		MostlyBase:      c.Progress.MostlyThreshold,
		FullyTranslated: c.Progress.FullyThreshold,
	}
}

// Allowlist builds the allow-list from the configured words
func (c *Config) Allowlist() overlap.Allowlist {
	return overlap.NewAllowlist(c.Progress.AllowWords)
}
