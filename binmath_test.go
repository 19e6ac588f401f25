package msprep

import "testing"

func TestBIN(t *testing.T) {
	const inverseBinWidth = 1.0005
	const binOffset = 0.4

	if got := BIN(1000.0, inverseBinWidth, binOffset); got != 1000 {
		t.Errorf("BIN(1000.0) = %d, want 1000", got)
	}
	if got := BIN(1000.5, inverseBinWidth, binOffset); got != 1001 {
		t.Errorf("BIN(1000.5) = %d, want 1001", got)
	}
}

func TestBINMonotonic(t *testing.T) {
	b := newBinMapper(1.0005, 0.4)
	prev := b.bin(0.0)
	for mz := 0.5; mz < 2000.0; mz += 0.37 {
		cur := b.bin(mz)
		if cur < prev {
			t.Fatalf("BIN not monotonic at mz=%v: prev=%d cur=%d", mz, prev, cur)
		}
		prev = cur
	}
}

func TestIsEqual(t *testing.T) {
	if !isEqual(1.0, 1.0+1e-7) {
		t.Error("expected values within FloatZero to compare equal")
	}
	if isEqual(1.0, 1.0+1e-5) {
		t.Error("expected values outside FloatZero to compare unequal")
	}
}
