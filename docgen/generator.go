// Package docgen renders the resource API reference.
//
// It collects the two resource hierarchies from a registry, feeds them into
// a filesystem-loaded template, and writes the rendered Markdown to a fixed
// file name under the output directory. Every run fully overwrites prior
// output; with an unchanged registry and template the output is
// byte-identical across runs.
package docgen

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/meridianbio/labdoc/errors"
	"github.com/meridianbio/labdoc/logger"
	"github.com/meridianbio/labdoc/resource"
)

const (
	// OutputFileName is the fixed name of the generated reference.
	OutputFileName = "api_reference.md"

	// TemplateFileName is the template looked up in the template directory.
	TemplateFileName = "api_reference.md.tmpl"
)

// Data is the named-input set handed to the template.
type Data struct {
	// ServiceResources is the pre-order sequence of all ServiceResource types.
	ServiceResources []resource.Descriptor

	// LabwareResources is the pre-order sequence of all LabwareResource types.
	LabwareResources []resource.Descriptor
}

// Generator renders the API reference for one registry.
type Generator struct {
	registry    *resource.Registry
	templateDir string
	outputDir   string
}

// New returns a Generator reading templates from templateDir and writing
// into outputDir.
func New(registry *resource.Registry, templateDir, outputDir string) *Generator {
	return &Generator{
		registry:    registry,
		templateDir: templateDir,
		outputDir:   outputDir,
	}
}

// OutputPath returns the path the reference is written to.
func (g *Generator) OutputPath() string {
	return filepath.Join(g.outputDir, OutputFileName)
}

// CollectData walks both hierarchies and assembles the template inputs.
func (g *Generator) CollectData() (*Data, error) {
	if err := g.registry.Validate(); err != nil {
		return nil, errors.Wrap(err, "registry invalid")
	}

	services, err := g.registry.Collect(resource.RootService)
	if err != nil {
		return nil, err
	}
	labware, err := g.registry.Collect(resource.RootLabware)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Collected resource hierarchies",
		"services", len(services),
		"labware", len(labware))

	return &Data{
		ServiceResources: services,
		LabwareResources: labware,
	}, nil
}

// Render loads the template from the template directory and executes it
// with the collected data. A missing or broken template is fatal to the run
// and surfaced from the template engine.
func (g *Generator) Render() ([]byte, error) {
	data, err := g.CollectData()
	if err != nil {
		return nil, err
	}
	return g.render(data)
}

// Generate renders the reference and writes it to the output path,
// overwriting prior output. Returns the rendered data.
func (g *Generator) Generate() (*Data, error) {
	data, err := g.CollectData()
	if err != nil {
		return nil, err
	}

	out, err := g.render(data)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	outputPath := g.OutputPath()
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", outputPath)
	}

	logger.Infow("Generated API reference",
		"path", outputPath,
		"services", len(data.ServiceResources),
		"labware", len(data.LabwareResources))

	return data, nil
}

// render executes the template with already-collected data.
func (g *Generator) render(data *Data) ([]byte, error) {
	templatePath := filepath.Join(g.templateDir, TemplateFileName)
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load template %s", templatePath)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render template %s", templatePath)
	}
	return buf.Bytes(), nil
}
