package msprep

import "gonum.org/v1/gonum/floats"

// numWindows is MakeCorrData's fixed window count (§4.2, §9 Open Question:
// the window tail beyond 10*windowSize is intentionally left untouched).
const numWindows = 10

// makeCorrData implements §4.2 MakeCorrData: it rescales rawData so its
// maximum is 100, then produces a windowed, noise-floored correlationData
// array used by the fast-xcorr boxcar pass. rawData is rescaled in place;
// correlationData must be zeroed by the caller (bins below the 0.05*max
// threshold, and the tail past the last window, stay at zero).
func makeCorrData(rawData, correlationData []float64, arraySize int, st *preprocessState) {
	scale := 1.0
	if st.highestIntensity > FloatZero {
		scale = 100.0 / st.highestIntensity
	}

	for i := 0; i < arraySize; i++ {
		rawData[i] *= scale
	}
	maxOverall := floats.Max(rawData[:arraySize])

	windowSize := int(st.highestIon/int32(numWindows)) + 1

	for w := 0; w < numWindows; w++ {
		lo := w * windowSize
		hi := lo + windowSize
		if hi > arraySize {
			hi = arraySize
		}
		if lo >= hi {
			continue
		}

		maxWindow := floats.Max(rawData[lo:hi])
		if maxWindow <= 0.0 {
			continue
		}

		windowScale := 50.0 / maxWindow
		floor := 0.05 * maxOverall

		for bin := lo; bin < hi; bin++ {
			if rawData[bin] > floor {
				correlationData[bin] = rawData[bin] * windowScale
			}
		}
	}
}
