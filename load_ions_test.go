package msprep

import "testing"

func TestLoadIonsBinsPeaksBelowCutoff(t *testing.T) {
	cfg := &Config{MinIntensity: 0, RemovePrecursor: RemovePrecursorNone}
	b := newBinMapper(1.0005, 0.4)
	spec := &fakeSpectrum{peaks: []Peak{
		{MZ: 500.0, Intensity: 10.0},
		{MZ: 2000.0, Intensity: 99.0}, // >= expPepMass+50, excluded
	}}
	st := &preprocessState{}
	rawData := make([]float64, 2000)

	total := loadIons(cfg, b, spec, 1000.0, 2, rawData, st)

	if total != 109.0 {
		t.Errorf("totalIntensity = %v, want 109 (sum of all peaks regardless of filtering)", total)
	}
	bin := b.bin(500.0)
	if rawData[bin] <= 0 {
		t.Errorf("rawData[%d] = %v, want > 0 (500 m/z is within the cutoff)", bin, rawData[bin])
	}
}

func TestLoadIonsSkipsBelowMinIntensity(t *testing.T) {
	cfg := &Config{MinIntensity: 50.0, RemovePrecursor: RemovePrecursorNone}
	b := newBinMapper(1.0005, 0.4)
	spec := &fakeSpectrum{peaks: []Peak{{MZ: 500.0, Intensity: 10.0}}}
	st := &preprocessState{}
	rawData := make([]float64, 2000)

	loadIons(cfg, b, spec, 1000.0, 2, rawData, st)

	for i, v := range rawData {
		if v != 0 {
			t.Errorf("rawData[%d] = %v, want 0 (peak below MinIntensity must not bin)", i, v)
		}
	}
}

func TestAcceptPrecursorRemovalSingleChargeExcludesNearPrecursor(t *testing.T) {
	cfg := &Config{RemovePrecursor: RemovePrecursorSingleCharge, RemovePrecursorTol: 1.5}
	expPepMass := 1000.0
	chargeState := int32(2)
	precursorMZ := (expPepMass + float64(chargeState-1)*ProtonMass) / float64(chargeState)

	if acceptPrecursorRemoval(cfg, precursorMZ, expPepMass, chargeState) {
		t.Error("accept = true, want false for an m/z within tolerance of the precursor")
	}
	if !acceptPrecursorRemoval(cfg, precursorMZ+10.0, expPepMass, chargeState) {
		t.Error("accept = false, want true for an m/z well outside tolerance")
	}
}
