package msprep

// smooth implements §4.2 Smooth: a 5-point 1-4-6-4-1 binomial filter over
// data, zeroing the two bins at each edge (invariant 3: after Smooth,
// {0,1,arraySize-2,arraySize-1} are exactly 0). scratch must have length
// >= arraySize; it is pool-owned staging, not allocated per call.
func smooth(data []float64, arraySize int, scratch []float64) {
	data[0] = 0
	data[1] = 0
	data[arraySize-1] = 0
	data[arraySize-2] = 0

	smoothed := scratch[:arraySize]
	smoothed[0], smoothed[1], smoothed[arraySize-2], smoothed[arraySize-1] = 0, 0, 0, 0
	for i := 2; i < arraySize-2; i++ {
		smoothed[i] = (data[i-2] + 4*data[i-1] + 6*data[i] + 4*data[i+1] + data[i+2]) * 0.0625
	}

	copy(data, smoothed)
}
