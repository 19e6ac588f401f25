package msprep

import "testing"

func TestSmoothDeltaImpulse(t *testing.T) {
	data := []float64{0, 0, 0, 16, 0, 0, 0}
	arraySize := len(data)

	smooth(data, arraySize, make([]float64, arraySize))

	// Per the 1-4-6-4-1 kernel, a 16-impulse at index 3 spreads to indices
	// 2 and 4 (weight 4/16) and 3 (weight 6/16); 4*16/16=4, 6*16/16=6.
	want := []float64{0, 0, 4, 6, 4, 0, 0}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v (full: %v)", i, data[i], want[i], data)
		}
	}
}

func TestSmoothEdgesZeroed(t *testing.T) {
	data := make([]float64, 10)
	for i := range data {
		data[i] = float64(i + 1)
	}
	smooth(data, len(data), make([]float64, len(data)))

	for _, i := range []int{0, 1, len(data) - 2, len(data) - 1} {
		if data[i] != 0 {
			t.Errorf("data[%d] = %v, want 0", i, data[i])
		}
	}
}
