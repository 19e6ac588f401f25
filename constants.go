package msprep

// Numeric constants shared by the preprocessing pipeline. Names and values
// mirror the CometPreprocess.cpp constants this engine reimplements.
const (
	// ProtonMass is the mass of a proton in daltons, used to convert between
	// neutral peptide mass and charged m/z.
	ProtonMass = 1.00727646688

	// C13Diff is the mass difference between carbon-13 and carbon-12,
	// used to build isotope-error tolerance windows.
	C13Diff = 1.00335483

	// H2O and NH3 are used to locate the -17/-18 neutral-loss bins.
	H2O = 18.0105646863
	NH3 = 17.0265491015

	// FloatZero is the epsilon below which two floats are considered equal,
	// and below which an intensity is considered absent.
	FloatZero = 1e-6

	// NumSpIons is the number of top ions retained for Sp (preliminary)
	// scoring.
	NumSpIons = 200
)
