package resource

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridianbio/labdoc/errors"
)

// Manifest declares resource types contributed outside the built-in catalog,
// typically by site-specific instrument integrations. Manifest types join the
// same registry and are documented alongside built-ins.
//
//	resources:
//	  - name: PlateHotel
//	    parent: TransportService
//	    kind: service
//	    summary: Passive storage tower for plates awaiting a run.
type Manifest struct {
	Resources []Descriptor `yaml:"resources"`
}

// LoadManifest reads and decodes a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest %s", path)
	}
	return &m, nil
}

// Apply registers every manifest type into r. Names that collide with
// built-ins are an error rather than an override; shadowing a built-in
// would silently change the generated reference.
func (m *Manifest) Apply(r *Registry) error {
	for _, d := range m.Resources {
		if err := r.Register(d); err != nil {
			return errors.Wrap(err, "manifest")
		}
	}
	return r.Validate()
}

// ApplyManifest loads the manifest at path and registers it into r.
func ApplyManifest(r *Registry, path string) error {
	m, err := LoadManifest(path)
	if err != nil {
		return err
	}
	return m.Apply(r)
}
