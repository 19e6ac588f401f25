package msprep

// SparseEntry is one (bin, intensity) run-change record in a sparse vector.
// See DESIGN NOTES and SparseBuilder for the encoding's invariants.
type SparseEntry struct {
	Bin       int32
	Intensity float32
}

// Vector is the dense-or-sparse tagged union carried by Query. Exactly one
// of Dense/Sparse is populated, chosen once per Config (sparseMatrixEnabled)
// rather than per call, per DESIGN NOTES §9.
type Vector struct {
	Dense  []float32
	Sparse []SparseEntry
}

func denseVector(v []float32) Vector    { return Vector{Dense: v} }
func sparseVector(v []SparseEntry) Vector { return Vector{Sparse: v} }

// IsSparse reports which representation is populated.
func (v Vector) IsSparse() bool { return v.Sparse != nil }

// Len returns the dense array size implied by this vector: for a dense
// vector that's len(Dense); for a sparse vector it's the sentinel bin of
// the last entry (see SparseBuilder).
func (v Vector) Len() int {
	if v.IsSparse() {
		if len(v.Sparse) == 0 {
			return 0
		}
		return int(v.Sparse[len(v.Sparse)-1].Bin)
	}
	return len(v.Dense)
}

// At returns the dense value at bin i, reconstructing it from the sparse
// run-change encoding when necessary (the S2 sparse round-trip invariant).
func (v Vector) At(i int) float32 {
	if !v.IsSparse() {
		if i < 0 || i >= len(v.Dense) {
			return 0
		}
		return v.Dense[i]
	}
	var cur float32
	for _, e := range v.Sparse {
		if int(e.Bin) > i {
			break
		}
		cur = e.Intensity
	}
	return cur
}

// Query is the per-(spectrum, precursor-charge) result of preprocessing.
type Query struct {
	ScanNumber  int32
	ChargeState int32

	ExpPepMass    float64
	ArraySize     int
	MaxFragCharge int32

	RetentionTimeSec float64
	NativeID         string

	MinusTol float64
	PlusTol  float64

	FastXcorr   Vector
	FastXcorrNL *Vector // nil when neutral-loss overlay is not enabled

	// SpScore's sparse form lists only the ions whose intensity exceeds
	// FloatZero, in ascending bin order, with no (0,0) or sentinel entry; it
	// is not a run-change encoding, so Vector.Len and Vector.At do not
	// reconstruct its dense form.
	SpScore Vector
}
