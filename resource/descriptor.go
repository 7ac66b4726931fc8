// Package resource maintains the registry of lab resource types.
//
// The framework's resource classes form two hierarchies anchored at
// ServiceResource (instrument drivers and other stateful services) and
// LabwareResource (physical consumables and carriers). Go has no runtime
// subclass enumeration, so every concrete type registers itself here at
// init time and the registry records the parent/child edges explicitly.
package resource

// Kind distinguishes the two hierarchies a type may belong to.
type Kind string

const (
	KindService Kind = "service"
	KindLabware Kind = "labware"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindService || k == KindLabware
}

// Root type names. Both are pre-registered by this package; everything else
// hangs off one of them.
const (
	RootService = "ServiceResource"
	RootLabware = "LabwareResource"
)

// Descriptor is the static metadata recorded for one resource type.
// Descriptors are immutable once registered.
type Descriptor struct {
	// Name is the type name, unique across both hierarchies.
	Name string `yaml:"name"`

	// Parent is the name of the type this one extends. Empty only for roots.
	Parent string `yaml:"parent"`

	// Kind is the hierarchy the type belongs to.
	Kind Kind `yaml:"kind"`

	// Summary is a one-line description used in the generated reference.
	Summary string `yaml:"summary"`
}
