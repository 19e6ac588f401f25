package msprep

import "testing"

func TestInferChargesAllBelowPrecursor(t *testing.T) {
	cfg := &Config{StartCharge: 0}
	spec := &fakeSpectrum{
		precursorMZ: 500.0,
		peaks: []Peak{
			{MZ: 100, Intensity: 10},
			{MZ: 200, Intensity: 10},
			{MZ: 300, Intensity: 10},
		},
	}

	got := InferCharges(cfg, spec)
	if len(got) != 1 || got[0].Z != 1 {
		t.Fatalf("expected single charge-1 state, got %+v", got)
	}
}

func TestInferChargesSplitIntensity(t *testing.T) {
	cfg := &Config{StartCharge: 0}
	spec := &fakeSpectrum{
		precursorMZ: 500.0,
		peaks: []Peak{
			{MZ: 100, Intensity: 40}, // below
			{MZ: 900, Intensity: 60}, // above
		},
	}

	got := InferCharges(cfg, spec)
	if len(got) != 2 || got[0].Z != 2 || got[1].Z != 3 {
		t.Fatalf("expected charge-2 and charge-3 states, got %+v", got)
	}
}

func TestInferChargesZeroTotalIntensity(t *testing.T) {
	cfg := &Config{StartCharge: 0}
	spec := &fakeSpectrum{precursorMZ: 500.0, peaks: []Peak{{MZ: 100, Intensity: 0}}}

	got := InferCharges(cfg, spec)
	if len(got) != 1 || got[0].Z != 1 {
		t.Fatalf("expected single charge-1 state on zero total intensity, got %+v", got)
	}
}

func TestInferChargesConfiguredRange(t *testing.T) {
	cfg := &Config{StartCharge: 2, EndCharge: 4}
	spec := &fakeSpectrum{precursorMZ: 500.0}

	got := InferCharges(cfg, spec)
	if len(got) != 3 {
		t.Fatalf("expected 3 charge states, got %d", len(got))
	}
	for i, z := range []int32{2, 3, 4} {
		if got[i].Z != z {
			t.Errorf("state %d: got charge %d, want %d", i, got[i].Z, z)
		}
	}
}
