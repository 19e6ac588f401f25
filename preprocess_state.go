package msprep

// preprocessState is the per-spectrum, per-charge scratch state threaded
// through LoadIons/MakeCorrData (§3 PreprocessState).
type preprocessState struct {
	highestIon       int32
	highestIntensity float64
}

// spIon is one (bin, intensity) candidate tracked by GetTopIons/StairStep,
// corresponding to the source's `struct msdata`.
type spIon struct {
	ion       float64
	intensity float64
}
