package msprep

import "math"

// BIN maps an m/z value onto an integer bin index at the configured
// resolution: floor(m*inverseBinWidth + binOffset).
func BIN(mz, inverseBinWidth, binOffset float64) int32 {
	return int32(math.Floor(mz*inverseBinWidth + binOffset))
}

// isEqual reports whether a and b are within FloatZero of each other.
func isEqual(a, b float64) bool {
	return math.Abs(a-b) < FloatZero
}

// isEqualF32 is isEqual for float32 values, used when comparing
// already-narrowed xcorr/sparse intensities.
func isEqualF32(a, b float32) bool {
	return math.Abs(float64(a-b)) < FloatZero
}

// binMapper captures the two parameters BIN needs so components don't
// have to thread inverseBinWidth/binOffset through every call site.
type binMapper struct {
	inverseBinWidth float64
	binOffset       float64
}

func newBinMapper(inverseBinWidth, binOffset float64) binMapper {
	return binMapper{inverseBinWidth: inverseBinWidth, binOffset: binOffset}
}

func (b binMapper) bin(mz float64) int32 {
	return BIN(mz, b.inverseBinWidth, b.binOffset)
}

// precalcMasses holds the -H2O/-NH3 neutral-loss bin offsets computed once
// per Config, mirroring g_staticParams.precalcMasses.iMinus17/iMinus18.
type precalcMasses struct {
	iMinus17 int32
	iMinus18 int32
}

func newPrecalcMasses(b binMapper) precalcMasses {
	return precalcMasses{
		iMinus17: b.bin(H2O),
		iMinus18: b.bin(NH3),
	}
}
