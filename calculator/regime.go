package calculator

// Flat-plate flow regime. The tag is derived once per estimation and carried
// through both the skin-friction and thickness correlations, so the two can
// never be taken from different branches.

type Regime int

const (
	Laminar Regime = iota
	Turbulent
)

func (r Regime) String() string {
	if r == Laminar {
		return "laminar"
	}
	return "turbulent"
}

// ReynoldsNumber is Re = rho*U*L/mu.
func ReynoldsNumber(density, velocity, length, viscosity float64) float64 {
	return density * velocity * length / viscosity
}

// ClassifyRegime applies the flat-plate transition rule: laminar strictly
// below the transition Reynolds number, turbulent at and above it.
func ClassifyRegime(re, transitionRe float64) Regime {
	if re < transitionRe {
		return Laminar
	}
	return Turbulent
}
