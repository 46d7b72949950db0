package calculator

import "math"

// Flat-plate skin friction and the wall quantities derived from it.

// skinFriction selects the flat-plate correlation for the regime.
//   - laminar: Cf = 1.328/sqrt(Re) (Blasius)
//   - turbulent: Cf = 0.455/(log10 Re)^2.58 (Schlichting 1979)
//
// The turbulent form needs log10(Re) > 0, i.e. Re > 1. Auto-classified flow
// is always far above that, but an explicit turbulent override with a tiny
// Re would otherwise drive the correlation negative.
func skinFriction(re float64, regime Regime) (float64, error) {
	if re <= 0 {
		return 0, invalid("Re", re, "Reynolds number must be positive")
	}
	if regime == Laminar {
		return 1.328 / math.Sqrt(re), nil
	}
	if re <= 1 {
		return 0, invalid("Re", re, "turbulent correlation needs Re > 1 (log10 Re must be positive)")
	}
	return 0.455 / math.Pow(math.Log10(re), 2.58), nil
}

// wallShearStress is tau_w = Cf * 1/2 * rho * U^2.
func wallShearStress(cf, density, velocity float64) float64 {
	return cf * 0.5 * density * velocity * velocity
}

// frictionVelocity is u_tau = sqrt(tau_w/rho).
func frictionVelocity(tauW, density float64) float64 {
	return math.Sqrt(tauW / density)
}

// wallDistance inverts the y+ definition: y = y+ * mu / (rho * u_tau).
// A zero friction velocity (U = 0 or Cf = 0) has no finite wall distance.
func wallDistance(yPlus, viscosity, density, uTau float64) (float64, error) {
	if uTau == 0 {
		return 0, &DegenerateInputError{
			Quantity: "friction velocity",
			Reason:   "u_tau is zero, wall distance is unbounded",
		}
	}
	return yPlus * viscosity / (density * uTau), nil
}
