package fluid

import "testing"

func TestDefaultIsAir(t *testing.T) {
	f := Default()
	if f.Name != "air" || f.Density != 1.2041 || f.Viscosity != 1.825e-5 {
		t.Errorf("default = %+v, want air at 20°C", f)
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("water")
	if !ok {
		t.Fatal("water preset missing")
	}
	if f.Density != 998.21 || f.Viscosity != 1.002e-3 {
		t.Errorf("water = %+v", f)
	}
	if _, ok := Lookup("mercury"); ok {
		t.Error("unexpected preset")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Fatalf("Names and All disagree: %d vs %d", len(names), len(All()))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
