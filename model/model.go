package model

// Shared value and wire types. All physical quantities are SI:
// lengths in m, velocity in m/s, density in kg/m^3, viscosity in kg/(m·s).

// Conditions are the flow conditions for one estimation.
//
// Density and Viscosity may both be left zero, in which case they are
// filled in from the named fluid preset (or air at 20°C when Fluid is
// empty). Regime is "laminar", "turbulent" or "auto"; empty means auto.
type Conditions struct {
	Length     float64 `json:"length" toml:"length"`
	Velocity   float64 `json:"velocity" toml:"velocity"`
	Density    float64 `json:"density,omitempty" toml:"density,omitempty"`
	Viscosity  float64 `json:"viscosity,omitempty" toml:"viscosity,omitempty"`
	YPlus      float64 `json:"y_plus" toml:"y_plus"`
	GrowthRate float64 `json:"growth_rate" toml:"growth_rate"`

	Fluid  string `json:"fluid,omitempty" toml:"fluid,omitempty"`
	Regime string `json:"regime,omitempty" toml:"regime,omitempty"`
}

// Result is the full output of one estimation. WallDistance is the first
// prism cell height hitting the target y+. TotalThickness is the cumulative
// height actually reached by Layers cells at GrowthRate, which is >= the raw
// BoundaryLayerThickness and is the number to enter in the meshing tool.
type Result struct {
	Re     float64 `json:"re"`
	Regime string  `json:"regime"`

	Cf               float64 `json:"cf"`
	WallShearStress  float64 `json:"wall_shear_stress"`
	FrictionVelocity float64 `json:"friction_velocity"`

	WallDistance           float64 `json:"wall_distance"`
	BoundaryLayerThickness float64 `json:"boundary_layer_thickness"`
	TotalThickness         float64 `json:"total_thickness"`
	Layers                 int     `json:"layers"`
	GrowthRate             float64 `json:"growth_rate"`

	// Warning is set when Re is outside the documented validity range of
	// the correlations. The numbers are still computed.
	Warning string `json:"warning,omitempty"`
}

// Msg is the websocket message envelope exchanged with the front end.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
