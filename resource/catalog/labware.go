package catalog

import (
	"github.com/meridianbio/labdoc/resource"
)

func init() {
	for _, d := range labwareTypes {
		resource.MustRegister(d)
	}
}

// labwareTypes is the built-in LabwareResource hierarchy.
var labwareTypes = []resource.Descriptor{
	{
		Name:    "Plate",
		Parent:  resource.RootLabware,
		Kind:    resource.KindLabware,
		Summary: "Microplate in ANSI/SLAS footprint.",
	},
	{
		Name:    "WellPlate96",
		Parent:  "Plate",
		Kind:    resource.KindLabware,
		Summary: "96-well plate, 8x12 grid.",
	},
	{
		Name:    "WellPlate384",
		Parent:  "Plate",
		Kind:    resource.KindLabware,
		Summary: "384-well plate, 16x24 grid.",
	},
	{
		Name:    "DeepWellPlate",
		Parent:  "Plate",
		Kind:    resource.KindLabware,
		Summary: "Deep-well plate for reagent storage.",
	},
	{
		Name:    "TipRack",
		Parent:  resource.RootLabware,
		Kind:    resource.KindLabware,
		Summary: "Rack of disposable pipetting tips.",
	},
	{
		Name:    "FilterTipRack",
		Parent:  "TipRack",
		Kind:    resource.KindLabware,
		Summary: "Tip rack with aerosol filter tips.",
	},
	{
		Name:    "Reservoir",
		Parent:  resource.RootLabware,
		Kind:    resource.KindLabware,
		Summary: "Single- or multi-trough reagent reservoir.",
	},
	{
		Name:    "TubeRack",
		Parent:  resource.RootLabware,
		Kind:    resource.KindLabware,
		Summary: "Rack holding individual tubes.",
	},
	{
		Name:    "MicroTubeRack",
		Parent:  "TubeRack",
		Kind:    resource.KindLabware,
		Summary: "Rack for 1.5/2.0 mL microcentrifuge tubes.",
	},
	{
		Name:    "Lid",
		Parent:  resource.RootLabware,
		Kind:    resource.KindLabware,
		Summary: "Plate lid tracked as its own resource.",
	},
	{
		Name:    "Carrier",
		Parent:  resource.RootLabware,
		Kind:    resource.KindLabware,
		Summary: "Deck carrier providing labware positions.",
	},
	{
		Name:    "PlateCarrier",
		Parent:  "Carrier",
		Kind:    resource.KindLabware,
		Summary: "Carrier with plate-footprint positions.",
	},
	{
		Name:    "TipCarrier",
		Parent:  "Carrier",
		Kind:    resource.KindLabware,
		Summary: "Carrier with tip-rack positions.",
	},
}
