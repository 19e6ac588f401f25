package msprep

// boxcarWidth/boxcarHalf/boxcarWeight implement the 151-wide (75 behind, 75
// ahead, center excluded) boxcar mean of §4.2's FastXcorr transform.
const (
	boxcarHalf   = 75
	boxcarWidth  = 2*boxcarHalf + 1
	boxcarWeight = 0.00666666666666667
)

// fastXcorrMean computes the sliding boxcar mean `meanAround` used to turn
// correlationData into fastXcorr, via the running-sum recurrence in §4.2.
// scratch is pool-owned staging (must have length >= arraySize) standing in
// for the original's pdTmpFastXcorrData array.
func fastXcorrMean(correlationData []float64, arraySize int, scratch []float64) []float64 {
	meanAround := scratch[:arraySize]

	runningSum := 0.0
	for i := 0; i < boxcarHalf && i < arraySize; i++ {
		runningSum += correlationData[i]
	}

	for i := boxcarHalf; i < arraySize+boxcarHalf; i++ {
		if i < arraySize {
			runningSum += correlationData[i]
		}
		if i >= boxcarWidth {
			runningSum -= correlationData[i-boxcarWidth]
		}
		meanAround[i-boxcarHalf] = (runningSum - correlationData[i-boxcarHalf]) * boxcarWeight
	}

	return meanAround
}

// fastXcorrOptions bundles the per-Query flags fastXcorr needs beyond the
// raw correlation/mean arrays.
type fastXcorrOptions struct {
	flankingPeaks bool // theoreticalFragmentIons == 0
	neutralLoss   bool // useNeutralLossOverlay()
	minus17       int32
	minus18       int32
}

// buildFastXcorr implements the per-bin delta, optional flanking-peak
// addition, and optional neutral-loss overlay from §4.2. It returns the
// primary fastXcorr vector and, when opts.neutralLoss is set, the NL
// overlay vector (otherwise nil).
func buildFastXcorr(correlationData, meanAround []float64, arraySize int, opts fastXcorrOptions) (fastXcorr []float32, fastXcorrNL []float32) {
	fastXcorr = make([]float32, arraySize)
	if opts.neutralLoss {
		fastXcorrNL = make([]float32, arraySize)
	}

	delta := func(i int) float64 {
		if i < 0 || i >= arraySize {
			return 0
		}
		return correlationData[i] - meanAround[i]
	}

	for i := 1; i < arraySize; i++ {
		v := delta(i)

		if opts.flankingPeaks {
			v += 0.5*delta(i-1) + 0.5*delta(i+1)
		}

		fastXcorr[i] = float32(v)

		if opts.neutralLoss {
			nl := float64(fastXcorr[i])
			if iTmp := i - int(opts.minus17); iTmp >= 0 {
				nl += delta(iTmp) * 0.2
			}
			if iTmp := i - int(opts.minus18); iTmp >= 0 {
				nl += delta(iTmp) * 0.2
			}
			fastXcorrNL[i] = float32(nl)
		}
	}

	return fastXcorr, fastXcorrNL
}
