package config

import (
	"github.com/spf13/viper"
)

// Default file and directory names.
const (
	// ConfigFileName is the project config file discovered by walking up
	// the directory tree.
	ConfigFileName = "labdoc.toml"

	// DefaultTemplateDir is where templates are looked up when unconfigured.
	DefaultTemplateDir = "./templates"

	// DefaultOutputDir is where the reference is written when unconfigured.
	DefaultOutputDir = "./docs/labdoc"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("docs.template_dir", DefaultTemplateDir)
	v.SetDefault("docs.output_dir", DefaultOutputDir)

	v.SetDefault("manifest.path", "") // no manifest unless configured

	v.SetDefault("log.json", false)
}
