package msprep

import "testing"

func TestResolveTolerancePPMPrecursorMZIsotope1(t *testing.T) {
	cfg := &Config{
		ToleranceUnits: TolerancePPM,
		ToleranceType:  TolerancePrecursorMZ,
		InputTolerance: 20,
		IsotopeError:   IsotopeErrorNarrow,
	}

	minus, plus, err := ResolveTolerance(cfg, 1000.0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// expPepMass=1000, chargeState=2: tol = 20*1000/1e6 * 2 = 0.04, then
	// widened by the narrow isotope window (3*C13Diff*ProtonMass behind,
	// 1*C13Diff*ProtonMass ahead), per AdjustMassTol.
	const wantMinus = 996.9280328754319
	const wantPlus = 1001.0506557081893
	if diff := minus - wantMinus; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("minusTol = %v, want %v", minus, wantMinus)
	}
	if diff := plus - wantPlus; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("plusTol = %v, want %v", plus, wantPlus)
	}
}

func TestResolveToleranceInvalidIsotope(t *testing.T) {
	cfg := &Config{ToleranceUnits: ToleranceAMU, InputTolerance: 1, IsotopeError: 3}
	if _, _, err := ResolveTolerance(cfg, 1000, 2); err == nil {
		t.Fatal("expected error for invalid isotope_error")
	}
}

func TestResolveToleranceMonotonic(t *testing.T) {
	cfg := &Config{ToleranceUnits: ToleranceAMU, IsotopeError: IsotopeErrorNone}

	cfg.InputTolerance = 1
	minus1, plus1, _ := ResolveTolerance(cfg, 1000, 1)

	cfg.InputTolerance = 2
	minus2, plus2, _ := ResolveTolerance(cfg, 1000, 1)

	if !(minus2 < minus1 && plus2 > plus1) {
		t.Errorf("expected wider window for larger tolerance: got [%v,%v] then [%v,%v]", minus1, plus1, minus2, plus2)
	}
}

func TestResolveTolerancePPMScalesWithMass(t *testing.T) {
	cfg := &Config{ToleranceUnits: TolerancePPM, InputTolerance: 20, IsotopeError: IsotopeErrorNone}

	_, plusSmall, _ := ResolveTolerance(cfg, 1000, 1)
	_, plusLarge, _ := ResolveTolerance(cfg, 2000, 1)

	wantSmall := 1000.0 + 20*1000.0/1e6
	wantLarge := 2000.0 + 20*2000.0/1e6
	if diff := plusSmall - wantSmall; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("plusSmall = %v, want %v", plusSmall, wantSmall)
	}
	if diff := plusLarge - wantLarge; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("plusLarge = %v, want %v", plusLarge, wantLarge)
	}
}
