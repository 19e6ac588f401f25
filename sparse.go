package msprep

// BuildSparse implements §4.3 SparseBuilder: it converts a dense array
// v[0..arraySize] into the run-change encoding used when sparseMatrixEnabled
// is set. The result always starts with (0,0) and ends with the sentinel
// (arraySize, 0); every interior entry marks a bin whose value differs from
// its predecessor.
func BuildSparse(v []float32, arraySize int) []SparseEntry {
	out := make([]SparseEntry, 0, 2)
	out = append(out, SparseEntry{Bin: 0, Intensity: 0})

	for i := 1; i < arraySize; i++ {
		if !isEqualF32(v[i], v[i-1]) {
			out = append(out, SparseEntry{Bin: int32(i), Intensity: v[i]})
		}
	}

	out = append(out, SparseEntry{Bin: int32(arraySize), Intensity: 0})
	return out
}

// ExpandSparse reconstructs the dense array a sparse vector encodes, sized
// arraySize+1 so index arraySize (the sentinel) is addressable too. It is
// used only by tests to check the sparse round-trip invariant; production
// code reads through Vector.At instead of materializing the dense form.
func ExpandSparse(entries []SparseEntry, arraySize int) []float32 {
	out := make([]float32, arraySize+1)
	var cur float32
	idx := 0
	for i := 0; i <= arraySize; i++ {
		for idx < len(entries) && int(entries[idx].Bin) == i {
			cur = entries[idx].Intensity
			idx++
		}
		out[i] = cur
	}
	return out
}
