package msprep

// getTopIons implements §4.2 GetTopIons: a replace-the-bucket-minimum scan
// that keeps the NumSpIons highest-intensity bins seen in rawData, then
// rescales the bucket so the strongest surviving intensity is 100.
func getTopIons(rawData []float64, arraySize int) []spIon {
	bucket := make([]spIon, NumSpIons)

	lowestIdx := 0
	lowest := 0.0
	maxInten := 0.0

	for i := 0; i < arraySize; i++ {
		if rawData[i] <= lowest {
			continue
		}

		bucket[lowestIdx] = spIon{ion: float64(i), intensity: rawData[i]}
		if bucket[lowestIdx].intensity > maxInten {
			maxInten = bucket[lowestIdx].intensity
		}

		lowest = bucket[0].intensity
		lowestIdx = 0
		for j := 1; j < NumSpIons; j++ {
			if bucket[j].intensity < lowest {
				lowest = bucket[j].intensity
				lowestIdx = j
			}
		}
	}

	if maxInten > FloatZero {
		for i := range bucket {
			bucket[i].intensity = (bucket[i].intensity / maxInten) * 100.0
		}
	}

	return bucket
}
