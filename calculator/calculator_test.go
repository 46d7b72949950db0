package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/Andre-4949/y-plus-estimation/model"
)

func near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// Air at 20°C over a 1 m plate at 15 m/s, the reference turbulent scenario.
func TestEstimateTurbulent(t *testing.T) {
	res, err := NewCalculator().Estimate(model.Conditions{
		Length:     1,
		Velocity:   15,
		Density:    1.2041,
		Viscosity:  1.825e-5,
		YPlus:      1,
		GrowthRate: 1.2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !near(res.Re, 989671.2328767122) {
		t.Errorf("Re = %v", res.Re)
	}
	if res.Regime != "turbulent" {
		t.Errorf("regime = %s, want turbulent", res.Regime)
	}
	if !near(res.Cf, 0.004479438080914287) {
		t.Errorf("Cf = %v", res.Cf)
	}
	if !near(res.WallShearStress, 0.6067902817382504) {
		t.Errorf("tau_w = %v", res.WallShearStress)
	}
	if !near(res.FrictionVelocity, 0.7098850499220682) {
		t.Errorf("u_tau = %v", res.FrictionVelocity)
	}
	if !near(res.WallDistance, 2.135070806336065e-05) {
		t.Errorf("wall distance = %v", res.WallDistance)
	}
	if !near(res.BoundaryLayerThickness, 0.02402621766766704) {
		t.Errorf("delta = %v", res.BoundaryLayerThickness)
	}
	if res.Layers != 30 {
		t.Errorf("layers = %d, want 30", res.Layers)
	}
	if !near(res.TotalThickness, 0.02523400834516104) {
		t.Errorf("total thickness = %v", res.TotalThickness)
	}
	if res.Warning != "" {
		t.Errorf("unexpected warning: %s", res.Warning)
	}
}

// Defaults kick in when density and viscosity are both left unset.
func TestEstimateLaminarWithDefaults(t *testing.T) {
	res, err := NewCalculator().Estimate(model.Conditions{
		Length:     0.5,
		Velocity:   2,
		YPlus:      1,
		GrowthRate: 1.2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Regime != "laminar" {
		t.Fatalf("regime = %s, want laminar", res.Regime)
	}
	if !near(res.Re, 65978.08219178082) {
		t.Errorf("Re = %v", res.Re)
	}
	if !near(res.Cf, 0.005170091523201102) {
		t.Errorf("Cf = %v", res.Cf)
	}
	if !near(res.WallDistance, 0.00014905144782570616) {
		t.Errorf("wall distance = %v", res.WallDistance)
	}
	if !near(res.BoundaryLayerThickness, 0.009732853018074363) {
		t.Errorf("delta = %v", res.BoundaryLayerThickness)
	}
	if res.Layers != 15 {
		t.Errorf("layers = %d, want 15", res.Layers)
	}
	if !near(res.TotalThickness, 0.010736937122741411) {
		t.Errorf("total thickness = %v", res.TotalThickness)
	}
}

// Both halves of every result must come from the same regime branch, and the
// achieved thickness must cover the raw correlation thickness.
func TestEstimatePositivityAndCoverage(t *testing.T) {
	for _, u := range []float64{0.5, 2, 7, 15, 40, 120} {
		res, err := NewCalculator().Estimate(model.Conditions{
			Length:     1,
			Velocity:   u,
			YPlus:      1,
			GrowthRate: 1.2,
		})
		if err != nil {
			t.Fatalf("U = %v: %v", u, err)
		}
		if res.WallDistance <= 0 || res.BoundaryLayerThickness <= 0 || res.TotalThickness <= 0 {
			t.Errorf("U = %v: non-positive output %+v", u, res)
		}
		if res.Layers < 1 {
			t.Errorf("U = %v: layers = %d", u, res.Layers)
		}
		if res.TotalThickness < res.BoundaryLayerThickness {
			t.Errorf("U = %v: total %v < delta %v", u, res.TotalThickness, res.BoundaryLayerThickness)
		}
	}
}

func TestEstimateInvalidInputs(t *testing.T) {
	base := model.Conditions{Length: 1, Velocity: 15, YPlus: 1, GrowthRate: 1.2}
	cases := []struct {
		name   string
		mutate func(*model.Conditions)
	}{
		{"zero length", func(c *model.Conditions) { c.Length = 0 }},
		{"negative velocity", func(c *model.Conditions) { c.Velocity = -5 }},
		{"zero y+", func(c *model.Conditions) { c.YPlus = 0 }},
		{"unit growth rate", func(c *model.Conditions) { c.GrowthRate = 1.0 }},
		{"negative density", func(c *model.Conditions) { c.Density = -1; c.Viscosity = 1.825e-5 }},
		{"unknown fluid", func(c *model.Conditions) { c.Fluid = "mercury" }},
		{"unknown regime", func(c *model.Conditions) { c.Regime = "transitional" }},
	}
	for _, tc := range cases {
		cond := base
		tc.mutate(&cond)
		_, err := NewCalculator().Estimate(cond)
		var inv *InvalidInputError
		if !errors.As(err, &inv) {
			t.Errorf("%s: got %v, want InvalidInputError", tc.name, err)
		}
	}
}

func TestEstimateRegimeOverride(t *testing.T) {
	cond := model.Conditions{Length: 0.5, Velocity: 2, YPlus: 1, GrowthRate: 1.2, Regime: "turbulent"}
	res, err := NewCalculator().Estimate(cond)
	if err != nil {
		t.Fatal(err)
	}
	if res.Regime != "turbulent" {
		t.Fatalf("regime = %s, want turbulent override", res.Regime)
	}
	// forced turbulent branch: Cf = 0.455/(log10 Re)^2.58 at Re ≈ 65978
	want := 0.455 / math.Pow(math.Log10(res.Re), 2.58)
	if !near(res.Cf, want) {
		t.Errorf("Cf = %v, want %v", res.Cf, want)
	}
}

// Past the documented Re range the result still comes back, flagged.
func TestEstimateOutOfValidityRange(t *testing.T) {
	res, err := NewCalculator().Estimate(model.Conditions{
		Length:     1,
		Velocity:   20000,
		YPlus:      1,
		GrowthRate: 1.2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Re < 1e9 {
		t.Fatalf("Re = %v, expected out-of-range scenario", res.Re)
	}
	if res.Warning == "" {
		t.Error("expected a validity warning")
	}
	if res.WallDistance <= 0 || res.Layers < 1 {
		t.Errorf("flagged result should still be numeric: %+v", res)
	}
}

func TestWallDistanceDegenerate(t *testing.T) {
	_, err := wallDistance(1, 1.825e-5, 1.2041, 0)
	var deg *DegenerateInputError
	if !errors.As(err, &deg) {
		t.Fatalf("got %v, want DegenerateInputError", err)
	}
}

func TestSkinFrictionGuards(t *testing.T) {
	if _, err := skinFriction(0, Laminar); err == nil {
		t.Error("Re = 0 should fail")
	}
	if _, err := skinFriction(0.5, Turbulent); err == nil {
		t.Error("turbulent form with Re <= 1 should fail")
	}
	cf, err := skinFriction(0.5, Laminar)
	if err != nil || cf <= 0 {
		t.Errorf("laminar form is defined for any positive Re, got %v, %v", cf, err)
	}
}
