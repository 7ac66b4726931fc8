// Package config loads labdoc configuration via Viper.
//
// Configuration comes from a labdoc.toml found by walking up from the
// working directory, overridden by LABDOC_* environment variables. All
// values have defaults, so the tool runs with no config file at all.
package config

import (
	"github.com/meridianbio/labdoc/errors"
)

// Config is the root labdoc configuration.
type Config struct {
	Docs     DocsConfig     `mapstructure:"docs"`
	Manifest ManifestConfig `mapstructure:"manifest"`
	Log      LogConfig      `mapstructure:"log"`
}

// DocsConfig configures documentation generation.
type DocsConfig struct {
	TemplateDir string `mapstructure:"template_dir"` // directory holding api_reference.md.tmpl
	OutputDir   string `mapstructure:"output_dir"`   // directory the reference is written into
}

// ManifestConfig configures the optional external resource manifest.
type ManifestConfig struct {
	Path string `mapstructure:"path"` // empty = no manifest
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}

// Validate checks the configuration for values no run can work with.
func (c *Config) Validate() error {
	if c.Docs.TemplateDir == "" {
		return errors.New("docs.template_dir must not be empty")
	}
	if c.Docs.OutputDir == "" {
		return errors.New("docs.output_dir must not be empty")
	}
	return nil
}
