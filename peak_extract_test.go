package msprep

import "testing"

func TestPeakExtractIsolatesSpike(t *testing.T) {
	arraySize := 20
	data := make([]float64, arraySize)
	data[10] = 100

	peakExtract(data, arraySize, make([]float64, arraySize))

	if data[10] <= 0 {
		t.Errorf("data[10] = %v, want > 0 (spike should survive extraction)", data[10])
	}
	for _, i := range []int{2, 3, 4, 15, 16, 17} {
		if data[i] != 0 {
			t.Errorf("data[%d] = %v, want 0 (flat background should not be extracted)", i, data[i])
		}
	}
}

func TestPeakExtractEdgesNeverExtracted(t *testing.T) {
	arraySize := 10
	data := make([]float64, arraySize)
	data[0] = 1000
	data[arraySize-1] = 1000

	peakExtract(data, arraySize, make([]float64, arraySize))

	if data[0] != 0 {
		t.Errorf("data[0] = %v, want 0 (first bin is never eligible for extraction)", data[0])
	}
	if data[arraySize-1] != 0 {
		t.Errorf("data[%d] = %v, want 0 (last bin is never eligible for extraction)", arraySize-1, data[arraySize-1])
	}
}

func TestPeakExtractFlatInputStaysZero(t *testing.T) {
	arraySize := 30
	data := make([]float64, arraySize)
	for i := range data {
		data[i] = 5
	}

	peakExtract(data, arraySize, make([]float64, arraySize))

	for i, v := range data {
		if v != 0 {
			t.Errorf("data[%d] = %v, want 0 (uniform input never exceeds its window mean)", i, v)
		}
	}
}
