// Package catalog registers the built-in resource hierarchy.
//
// Importing this package (usually blank-imported by the CLI) populates the
// default registry with every type the framework ships. Registration order
// within each file is source order, and files initialize in lexical filename
// order, so the documented order is labware first, then services.
package catalog

import (
	"github.com/meridianbio/labdoc/resource"
)

func init() {
	for _, d := range serviceTypes {
		resource.MustRegister(d)
	}
}

// serviceTypes is the built-in ServiceResource hierarchy. The registry does
// not require parents to be declared first, but keeping the list
// topologically ordered keeps the generated reference readable.
var serviceTypes = []resource.Descriptor{
	{
		Name:    "DeviceService",
		Parent:  resource.RootService,
		Kind:    resource.KindService,
		Summary: "Base type for drivers that control a physical instrument.",
	},
	{
		Name:    "LiquidHandler",
		Parent:  "DeviceService",
		Kind:    resource.KindService,
		Summary: "Pipetting robot with one or more dispensing channels.",
	},
	{
		Name:    "MultiChannelLiquidHandler",
		Parent:  "LiquidHandler",
		Kind:    resource.KindService,
		Summary: "Liquid handler with an 8- or 96-channel head.",
	},
	{
		Name:    "Shaker",
		Parent:  "DeviceService",
		Kind:    resource.KindService,
		Summary: "Orbital shaker for plate mixing.",
	},
	{
		Name:    "HeaterShaker",
		Parent:  "Shaker",
		Kind:    resource.KindService,
		Summary: "Shaker with closed-loop temperature control.",
	},
	{
		Name:    "Thermocycler",
		Parent:  "DeviceService",
		Kind:    resource.KindService,
		Summary: "On-deck PCR block with programmable temperature profiles.",
	},
	{
		Name:    "PlateReader",
		Parent:  "DeviceService",
		Kind:    resource.KindService,
		Summary: "Optical reader for microplates.",
	},
	{
		Name:    "AbsorbanceReader",
		Parent:  "PlateReader",
		Kind:    resource.KindService,
		Summary: "Plate reader measuring optical density.",
	},
	{
		Name:    "FluorescenceReader",
		Parent:  "PlateReader",
		Kind:    resource.KindService,
		Summary: "Plate reader measuring fluorescence intensity.",
	},
	{
		Name:    "Centrifuge",
		Parent:  "DeviceService",
		Kind:    resource.KindService,
		Summary: "On-deck centrifuge with bucket position control.",
	},
	{
		Name:    "Incubator",
		Parent:  "DeviceService",
		Kind:    resource.KindService,
		Summary: "Temperature- and CO2-controlled plate storage.",
	},
	{
		Name:    "TransportService",
		Parent:  resource.RootService,
		Kind:    resource.KindService,
		Summary: "Base type for services that move labware between devices.",
	},
	{
		Name:    "RoboticArm",
		Parent:  "TransportService",
		Kind:    resource.KindService,
		Summary: "Articulated arm performing plate handoffs.",
	},
	{
		Name:    "Conveyor",
		Parent:  "TransportService",
		Kind:    resource.KindService,
		Summary: "Linear track shuttling labware between workcells.",
	},
	{
		Name:    "SchedulerService",
		Parent:  resource.RootService,
		Kind:    resource.KindService,
		Summary: "Coordinates method steps across devices and transports.",
	},
}
