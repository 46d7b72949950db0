package calculator

import "testing"

func TestReynoldsNumber(t *testing.T) {
	re := ReynoldsNumber(1.2041, 15, 1, 1.825e-5)
	if !near(re, 989671.2328767122) {
		t.Errorf("Re = %v", re)
	}
}

// Re exactly at the transition threshold is turbulent: the rule is
// "laminar strictly below 5e5".
func TestClassifyRegimeTieBreak(t *testing.T) {
	if got := ClassifyRegime(5e5, 5e5); got != Turbulent {
		t.Errorf("Re = 5e5 classified %v, want turbulent", got)
	}
	if got := ClassifyRegime(5e5-1, 5e5); got != Laminar {
		t.Errorf("Re just below threshold classified %v, want laminar", got)
	}
}

// Sweeping velocity upward, the regime must flip laminar -> turbulent exactly
// once and never oscillate.
func TestRegimeMonotonicFlip(t *testing.T) {
	flips := 0
	prev := Laminar
	for u := 1.0; u <= 60; u += 0.25 {
		re := ReynoldsNumber(1.2041, u, 1, 1.825e-5)
		got := ClassifyRegime(re, 5e5)
		if got != prev {
			if prev == Turbulent {
				t.Fatalf("regime flipped back to laminar at U = %v", u)
			}
			flips++
			prev = got
		}
	}
	if flips != 1 {
		t.Errorf("regime flipped %d times, want 1", flips)
	}
}
