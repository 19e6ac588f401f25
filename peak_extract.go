package msprep

import "math"

// peakExtractWindow computes the mean and standard deviation of data over
// the clamped [i-50, i+50] neighborhood. The mean divisor is the window
// width (iEndIndex-iStartIndex) while the variance divisor is that width
// plus one (§9 Open Question: this asymmetry is preserved, not corrected).
func peakExtractWindow(data []float64, i, arraySize int) (mean, stddev float64) {
	start := i - 50
	if start < 0 {
		start = 0
	}
	end := i + 50
	if end > arraySize-1 {
		end = arraySize - 1
	}

	for j := start; j <= end; j++ {
		mean += data[j]
	}
	width := end - start
	mean /= float64(width)

	for j := start; j <= end; j++ {
		d := data[j] - mean
		stddev += d * d
	}
	stddev = math.Sqrt(stddev / float64(width+1))

	return mean, stddev
}

// peakExtract implements §4.2 PeakExtract: a two-pass local-background
// subtraction. The first pass zeroes any interior bin exceeding mean+stddev
// and records its extracted value; the second pass recomputes mean/stddev
// over the now-zeroed data and extracts any interior bin exceeding
// mean+2*stddev, without re-checking against the first pass's result.
// scratch must have length >= arraySize; it is pool-owned staging, not
// allocated per call.
func peakExtract(data []float64, arraySize int, scratch []float64) {
	extracted := scratch[:arraySize]
	for i := range extracted {
		extracted[i] = 0
	}

	for i := 0; i < arraySize; i++ {
		mean, stddev := peakExtractWindow(data, i, arraySize)
		if i > 0 && i < arraySize-1 && data[i] > mean+stddev {
			extracted[i] = data[i] - mean + stddev
			data[i] = 0
		}
	}

	for i := 0; i < arraySize; i++ {
		mean, stddev := peakExtractWindow(data, i, arraySize)
		if i > 0 && i < arraySize-1 && data[i] > mean+2*stddev {
			extracted[i] = data[i] - mean + stddev
		}
	}

	copy(data, extracted)
}
