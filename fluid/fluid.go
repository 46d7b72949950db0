package fluid

import "sort"

// Property presets for common working fluids at reference temperatures.
// These back the density/viscosity defaults when the caller leaves both
// unset. Values from Cengel & Cimbala property tables, SI units.

type Fluid struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"` // °C
	Density     float64 `json:"density"`     // kg/m^3
	Viscosity   float64 `json:"viscosity"`   // kg/(m·s)
}

var presets = map[string]Fluid{
	"air":       {Name: "air", Temperature: 20, Density: 1.2041, Viscosity: 1.825e-5},
	"air-0c":    {Name: "air-0c", Temperature: 0, Density: 1.2922, Viscosity: 1.729e-5},
	"water":     {Name: "water", Temperature: 20, Density: 998.21, Viscosity: 1.002e-3},
	"water-50c": {Name: "water-50c", Temperature: 50, Density: 988.1, Viscosity: 5.47e-4},
}

// Default is air at 20°C, matching the interactive prompt defaults.
func Default() Fluid {
	return presets["air"]
}

// Lookup returns the preset for name.
func Lookup(name string) (Fluid, bool) {
	f, ok := presets[name]
	return f, ok
}

// Names lists the available presets in stable order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the presets in the same order as Names.
func All() []Fluid {
	fluids := make([]Fluid, 0, len(presets))
	for _, name := range Names() {
		fluids = append(fluids, presets[name])
	}
	return fluids
}
