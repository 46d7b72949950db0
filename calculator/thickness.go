package calculator

import "math"

// boundaryLayerThickness evaluates the flat-plate thickness correlation for
// the same regime tag the skin friction was computed with.
//   - laminar: delta = 5.0*L/sqrt(Re) (Blasius)
//   - turbulent: delta = 0.38*L/Re^0.2 (Cengel & Cimbala)
func boundaryLayerThickness(length, re float64, regime Regime) float64 {
	if regime == Laminar {
		return 5.0 * length / math.Sqrt(re)
	}
	return 0.38 * length / math.Pow(re, 0.2)
}
