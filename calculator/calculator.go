package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Andre-4949/y-plus-estimation/fluid"
	"github.com/Andre-4949/y-plus-estimation/model"
)

// Calculator derives the prism-layer meshing parameters for flat-plate flow:
// first-cell wall distance for a target y+, boundary-layer thickness and the
// number of geometrically growing layers spanning it. It is stateless;
// concurrent Estimate calls are safe.
type Calculator struct {
	transitionRe float64
	maxValidRe   float64
}

func NewCalculator() *Calculator {
	return &Calculator{
		transitionRe: calCfg.TransitionRe,
		maxValidRe:   calCfg.MaxValidRe,
	}
}

// Estimate runs the full pipeline for one set of conditions.
func (c *Calculator) Estimate(cond model.Conditions) (*model.Result, error) {
	cond, err := withDefaults(cond)
	if err != nil {
		return nil, err
	}
	if err := validate(cond); err != nil {
		return nil, err
	}

	re := ReynoldsNumber(cond.Density, cond.Velocity, cond.Length, cond.Viscosity)
	regime, err := resolveRegime(cond.Regime, re, c.transitionRe)
	if err != nil {
		return nil, err
	}

	cf, err := skinFriction(re, regime)
	if err != nil {
		return nil, err
	}
	tauW := wallShearStress(cf, cond.Density, cond.Velocity)
	uTau := frictionVelocity(tauW, cond.Density)
	y, err := wallDistance(cond.YPlus, cond.Viscosity, cond.Density, uTau)
	if err != nil {
		return nil, err
	}

	delta := boundaryLayerThickness(cond.Length, re, regime)
	n, err := PrismLayerCount(delta, y, cond.GrowthRate)
	if err != nil {
		return nil, err
	}

	res := &model.Result{
		Re:                     re,
		Regime:                 regime.String(),
		Cf:                     cf,
		WallShearStress:        tauW,
		FrictionVelocity:       uTau,
		WallDistance:           y,
		BoundaryLayerThickness: delta,
		TotalThickness:         CumulativeThickness(y, cond.GrowthRate, n),
		Layers:                 n,
		GrowthRate:             cond.GrowthRate,
	}
	if re >= c.maxValidRe {
		res.Warning = fmt.Sprintf(
			"Re = %.4g is outside the correlation validity range (Re < %.0e); results are unverified",
			re, c.maxValidRe)
		log.Warn(res.Warning)
	}
	return res, nil
}

// withDefaults fills density and viscosity from a fluid preset when the
// caller left both unset.
func withDefaults(cond model.Conditions) (model.Conditions, error) {
	if cond.Density != 0 || cond.Viscosity != 0 {
		return cond, nil
	}
	f := fluid.Default()
	if cond.Fluid != "" {
		var ok bool
		f, ok = fluid.Lookup(cond.Fluid)
		if !ok {
			return cond, invalid("fluid", 0, fmt.Sprintf("unknown fluid preset %q", cond.Fluid))
		}
	}
	cond.Density = f.Density
	cond.Viscosity = f.Viscosity
	return cond, nil
}

func validate(cond model.Conditions) error {
	checks := []struct {
		quantity string
		value    float64
	}{
		{"length", cond.Length},
		{"velocity", cond.Velocity},
		{"density", cond.Density},
		{"viscosity", cond.Viscosity},
		{"y+", cond.YPlus},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return invalid(c.quantity, c.value, "must be positive")
		}
	}
	if cond.GrowthRate <= 1 {
		return invalid("growth rate", cond.GrowthRate, "must be greater than 1")
	}
	return nil
}

func resolveRegime(override string, re, transitionRe float64) (Regime, error) {
	switch override {
	case "", "auto":
		return ClassifyRegime(re, transitionRe), nil
	case "laminar":
		return Laminar, nil
	case "turbulent":
		return Turbulent, nil
	}
	return Laminar, invalid("regime", 0, fmt.Sprintf("unknown regime %q, want laminar, turbulent or auto", override))
}
