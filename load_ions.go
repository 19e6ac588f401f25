package msprep

import "math"

// loadIons implements §4.2 LoadIons: it bins every admissible peak of the
// spectrum into rawData, applying the minimum-intensity filter, the
// expPepMass+50 cutoff, and the configured precursor-removal policy.
// It returns the spectrum's total (unfiltered) intensity.
func loadIons(cfg *Config, b binMapper, spec Spectrum, expPepMass float64, chargeState int32, rawData []float64, st *preprocessState) (totalIntensity float64) {
	for i := 0; i < spec.Len(); i++ {
		peak := spec.At(i)
		mz := peak.MZ
		intensity := peak.Intensity

		totalIntensity += intensity

		if intensity < cfg.MinIntensity || intensity <= 0 {
			continue
		}
		if mz >= expPepMass+50.0 {
			continue
		}

		bin := b.bin(mz)
		v := math.Sqrt(intensity)

		if bin > st.highestIon {
			st.highestIon = bin
		}

		if int(bin) >= len(rawData) || v <= rawData[bin] {
			continue
		}

		if acceptPrecursorRemoval(cfg, mz, expPepMass, chargeState) {
			rawData[bin] = v
			if rawData[bin] > st.highestIntensity {
				st.highestIntensity = rawData[bin]
			}
		}
	}
	return totalIntensity
}

// acceptPrecursorRemoval implements the §4.2 removePrecursor policy: whether
// a peak at mz should be allowed to update rawData given expPepMass/charge.
func acceptPrecursorRemoval(cfg *Config, mz, expPepMass float64, chargeState int32) bool {
	switch cfg.RemovePrecursor {
	case RemovePrecursorNone:
		return true

	case RemovePrecursorSingleCharge:
		dMZ := (expPepMass + float64(chargeState-1)*ProtonMass) / float64(chargeState)
		return math.Abs(mz-dMZ) > cfg.RemovePrecursorTol

	case RemovePrecursorAllCharges:
		for j := int32(1); j <= chargeState; j++ {
			dMZ := (expPepMass + float64(j-1)*ProtonMass) / float64(j)
			if math.Abs(mz-dMZ) < cfg.RemovePrecursorTol {
				return false
			}
		}
		return true

	default:
		return true
	}
}
