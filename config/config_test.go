package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultTemplateDir, cfg.Docs.TemplateDir)
	assert.Equal(t, DefaultOutputDir, cfg.Docs.OutputDir)
	assert.Empty(t, cfg.Manifest.Path, "no manifest by default")
	assert.False(t, cfg.Log.JSON, "console logging by default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			config: Config{Docs: DocsConfig{TemplateDir: DefaultTemplateDir, OutputDir: DefaultOutputDir}},
		},
		{
			name:    "empty template dir is invalid",
			config:  Config{Docs: DocsConfig{OutputDir: DefaultOutputDir}},
			wantErr: true,
		},
		{
			name:    "empty output dir is invalid",
			config:  Config{Docs: DocsConfig{TemplateDir: DefaultTemplateDir}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `
[docs]
template_dir = "./tpl"
output_dir = "./out"

[manifest]
path = "./resources.yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "./tpl", cfg.Docs.TemplateDir)
	assert.Equal(t, "./out", cfg.Docs.OutputDir)
	assert.Equal(t, "./resources.yaml", cfg.Manifest.Path)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
