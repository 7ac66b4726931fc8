package commands

import (
	"github.com/meridianbio/labdoc/config"
	"github.com/meridianbio/labdoc/docgen"
	"github.com/meridianbio/labdoc/errors"
	"github.com/meridianbio/labdoc/resource"
)

// generationSetup is the resolved configuration for generation runs.
// Flags win over config file values.
type generationSetup struct {
	templateDir  string
	outputDir    string
	manifestPath string
}

// newGenerationSetup resolves config and flag overrides.
func newGenerationSetup(templatesFlag, outputFlag, manifestFlag string) (*generationSetup, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	setup := &generationSetup{
		templateDir:  cfg.Docs.TemplateDir,
		outputDir:    cfg.Docs.OutputDir,
		manifestPath: cfg.Manifest.Path,
	}
	if templatesFlag != "" {
		setup.templateDir = templatesFlag
	}
	if outputFlag != "" {
		setup.outputDir = outputFlag
	}
	if manifestFlag != "" {
		setup.manifestPath = manifestFlag
	}
	return setup, nil
}

// registry layers the manifest (when configured) over a clone of the
// built-in catalog. Cloning keeps the shared registry pristine and lets
// watch mode re-read the manifest from scratch on every change.
func (s *generationSetup) registry() (*resource.Registry, error) {
	registry := resource.Default().Clone()
	if s.manifestPath != "" {
		if err := resource.ApplyManifest(registry, s.manifestPath); err != nil {
			return nil, errors.Wrap(err, "failed to apply resource manifest")
		}
	}
	return registry, nil
}

// newGenerator builds a generator over a freshly assembled registry.
func (s *generationSetup) newGenerator() (*docgen.Generator, error) {
	registry, err := s.registry()
	if err != nil {
		return nil, err
	}
	return docgen.New(registry, s.templateDir, s.outputDir), nil
}

// regenerate rebuilds the registry and renders once; watch mode's
// regeneration callback.
func (s *generationSetup) regenerate() error {
	g, err := s.newGenerator()
	if err != nil {
		return err
	}
	_, err = g.Generate()
	return err
}
