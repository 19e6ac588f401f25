package msprep

// InferCharges implements §4.5 ChargeInference for a spectrum that either
// lacks Z-states or whose reported Z-states should be overridden, matching
// the source's `spec.sizeZ() == 0 || bOverrideCharge` guard (callers are
// expected to use the spectrum's own Z-states otherwise).
//
// When cfg.StartCharge == 0, it applies the below-precursor intensity-
// fraction rule: a spectrum whose intensity is almost entirely below the
// precursor m/z is assumed singly charged, otherwise 2+ and 3+ are both
// produced as candidates. Otherwise it returns the configured charge range.
func InferCharges(cfg *Config, spec Spectrum) []ZState {
	precursorMZ := spec.PrecursorMZ()

	if cfg.StartCharge != 0 {
		out := make([]ZState, 0, cfg.EndCharge-cfg.StartCharge+1)
		for z := cfg.StartCharge; z <= cfg.EndCharge; z++ {
			out = append(out, zState(z, precursorMZ))
		}
		return out
	}

	var sumBelow, sumTotal float64
	for i := 0; i < spec.Len(); i++ {
		p := spec.At(i)
		sumTotal += p.Intensity
		if p.MZ < precursorMZ {
			sumBelow += p.Intensity
		}
	}

	if isEqual(sumTotal, 0.0) || (sumBelow/sumTotal) > 0.95 {
		return []ZState{zState(1, precursorMZ)}
	}
	return []ZState{zState(2, precursorMZ), zState(3, precursorMZ)}
}

// zState builds the (z, neutralMass) pair added for an inferred charge:
// m = precursorMZ*z - (z-1)*ProtonMass.
func zState(z int32, precursorMZ float64) ZState {
	return ZState{Z: z, M: precursorMZ*float64(z) - float64(z-1)*ProtonMass}
}
