package calculator

import "math"

// Prism layer stack: layer k has height first*growth^(k-1), so n layers span
// first*(growth^n - 1)/(growth - 1).

// CumulativeThickness is the total height of n prism layers.
func CumulativeThickness(first, growth float64, n int) float64 {
	return first * (math.Pow(growth, float64(n)) - 1) / (growth - 1)
}

// PrismLayerCount returns the smallest n >= 1 whose cumulative thickness
// reaches total. The closed-form inversion
//
//	n = ceil(log(1 + total*(growth-1)/first) / log(growth))
//
// is taken as the starting point and then nudged so that minimality holds
// exactly in floating point: sum(n) >= total and sum(n-1) < total.
func PrismLayerCount(total, first, growth float64) (int, error) {
	if total <= 0 {
		return 0, invalid("total thickness", total, "must be positive")
	}
	if first <= 0 {
		return 0, invalid("first cell height", first, "must be positive")
	}
	if growth <= 1 {
		return 0, invalid("growth rate", growth, "must be greater than 1")
	}
	if growth-1 < calCfg.GrowthRateEps {
		return 0, invalid("growth rate", growth, "too close to 1, geometric series is ill-conditioned")
	}

	n := int(math.Ceil(math.Log(1+total*(growth-1)/first) / math.Log(growth)))
	if n < 1 {
		n = 1
	}
	for CumulativeThickness(first, growth, n) < total {
		n++
	}
	for n > 1 && CumulativeThickness(first, growth, n-1) >= total {
		n--
	}
	return n, nil
}
