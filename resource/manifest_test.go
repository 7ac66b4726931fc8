package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbio/labdoc/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestApplyManifest(t *testing.T) {
	path := writeManifest(t, `
resources:
  - name: PlateHotel
    parent: ServiceResource
    kind: service
    summary: Passive storage tower for plates awaiting a run.
  - name: BarcodedPlate
    parent: LabwareResource
    kind: labware
    summary: Plate with a side-mounted barcode label.
`)

	r := NewRegistry()
	require.NoError(t, ApplyManifest(r, path))

	hotel, ok := r.Lookup("PlateHotel")
	require.True(t, ok)
	assert.Equal(t, KindService, hotel.Kind)
	assert.Equal(t, RootService, hotel.Parent)

	labware, err := r.Collect(RootLabware)
	require.NoError(t, err)
	require.Len(t, labware, 1)
	assert.Equal(t, "BarcodedPlate", labware[0].Name)
}

func TestApplyManifestRejectsDuplicates(t *testing.T) {
	path := writeManifest(t, `
resources:
  - name: Shaker
    parent: ServiceResource
    kind: service
`)

	r := NewRegistry()
	require.NoError(t, r.Register(Descriptor{Name: "Shaker", Parent: RootService, Kind: KindService}))

	err := ApplyManifest(r, path)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateResource(err))
}

func TestApplyManifestDanglingParent(t *testing.T) {
	path := writeManifest(t, `
resources:
  - name: Floater
    parent: NoSuchService
    kind: service
`)

	err := ApplyManifest(NewRegistry(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchService")
}

func TestApplyManifestKindMismatch(t *testing.T) {
	path := writeManifest(t, `
resources:
  - name: MisfiledPlate
    parent: ServiceResource
    kind: labware
`)

	err := ApplyManifest(NewRegistry(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MisfiledPlate")
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadManifestMalformedYAML(t *testing.T) {
	path := writeManifest(t, "resources: [unterminated")
	_, err := LoadManifest(path)
	assert.Error(t, err)
}
