package docgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbio/labdoc/resource"
)

// testRegistry builds a small two-hierarchy registry:
// ServiceResource -> A -> {B -> D, C}, LabwareResource -> Plate.
func testRegistry(t *testing.T) *resource.Registry {
	t.Helper()
	r := resource.NewRegistry()
	for _, d := range []resource.Descriptor{
		{Name: "A", Parent: resource.RootService, Kind: resource.KindService, Summary: "a"},
		{Name: "B", Parent: "A", Kind: resource.KindService, Summary: "b"},
		{Name: "C", Parent: "A", Kind: resource.KindService, Summary: "c"},
		{Name: "D", Parent: "B", Kind: resource.KindService, Summary: "d"},
		{Name: "Plate", Parent: resource.RootLabware, Kind: resource.KindLabware, Summary: "plate"},
	} {
		require.NoError(t, r.Register(d))
	}
	return r
}

// writeTemplate drops a template into a fresh template dir and returns the dir.
func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateFileName), []byte(content), 0644))
	return dir
}

func TestCollectData(t *testing.T) {
	g := New(testRegistry(t), t.TempDir(), t.TempDir())

	data, err := g.CollectData()
	require.NoError(t, err)

	require.Len(t, data.ServiceResources, 4)
	assert.Equal(t, "A", data.ServiceResources[0].Name)
	assert.Equal(t, "B", data.ServiceResources[1].Name)
	assert.Equal(t, "D", data.ServiceResources[2].Name, "pre-order: D follows B")
	assert.Equal(t, "C", data.ServiceResources[3].Name)

	require.Len(t, data.LabwareResources, 1)
	assert.Equal(t, "Plate", data.LabwareResources[0].Name)
}

func TestRenderCounts(t *testing.T) {
	// End-to-end property from the template's point of view: printed
	// counts equal the discovered counts.
	tplDir := writeTemplate(t, "services={{len .ServiceResources}} labware={{len .LabwareResources}}\n")
	g := New(testRegistry(t), tplDir, t.TempDir())

	out, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, "services=4 labware=1\n", string(out))
}

func TestGenerateWritesFile(t *testing.T) {
	tplDir := writeTemplate(t, "{{range .ServiceResources}}- {{.Name}}\n{{end}}")
	outDir := filepath.Join(t.TempDir(), "docs", "labdoc") // exercises MkdirAll
	g := New(testRegistry(t), tplDir, outDir)

	data, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, data.ServiceResources, 4)

	content, err := os.ReadFile(filepath.Join(outDir, OutputFileName))
	require.NoError(t, err)
	assert.Equal(t, "- A\n- B\n- D\n- C\n", string(content))
}

func TestGenerateIsIdempotent(t *testing.T) {
	tplDir := writeTemplate(t, "{{range .ServiceResources}}{{.Name}} {{end}}")
	outDir := t.TempDir()
	g := New(testRegistry(t), tplDir, outDir)

	_, err := g.Generate()
	require.NoError(t, err)
	first, err := os.ReadFile(g.OutputPath())
	require.NoError(t, err)

	_, err = g.Generate()
	require.NoError(t, err)
	second, err := os.ReadFile(g.OutputPath())
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-runs must produce byte-identical output")
}

func TestGenerateOverwritesPriorOutput(t *testing.T) {
	tplDir := writeTemplate(t, "fresh\n")
	outDir := t.TempDir()
	g := New(testRegistry(t), tplDir, outDir)

	require.NoError(t, os.WriteFile(g.OutputPath(), []byte("stale content that is much longer"), 0644))

	_, err := g.Generate()
	require.NoError(t, err)

	content, err := os.ReadFile(g.OutputPath())
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))
}

func TestRenderMissingTemplate(t *testing.T) {
	g := New(testRegistry(t), t.TempDir(), t.TempDir())

	_, err := g.Render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), TemplateFileName)
}

func TestRenderBrokenTemplate(t *testing.T) {
	tplDir := writeTemplate(t, "{{range .ServiceResources}} unterminated")
	g := New(testRegistry(t), tplDir, t.TempDir())

	_, err := g.Render()
	assert.Error(t, err)
}

func TestGenerateEmptyHierarchies(t *testing.T) {
	tplDir := writeTemplate(t, "services={{len .ServiceResources}} labware={{len .LabwareResources}}")
	g := New(resource.NewRegistry(), tplDir, t.TempDir())

	out, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, "services=0 labware=0", string(out))
}
