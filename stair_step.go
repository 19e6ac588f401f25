package msprep

import "sort"

// sortByIon implements §4.2 QsortByIon: ascending total order by ion bin.
func sortByIon(bucket []spIon) {
	sort.Slice(bucket, func(i, j int) bool {
		return bucket[i].ion < bucket[j].ion
	})
}

// stairStep implements §4.2 StairStep. Run on an ion-sorted bucket, it
// sweeps runs of consecutive ions whose gap is <= fragmentBinSize and
// levels the ions of the run to the run's maximum intensity. When a run
// reaches the last ion of the bucket, that last ion keeps its own intensity.
func stairStep(bucket []spIon, fragmentBinSize float64) {
	n := len(bucket)
	i := 0

	for i < n-1 {
		ii := i
		maxInten := bucket[i].intensity
		gap := 0.0

		for gap <= fragmentBinSize && ii < n-1 {
			ii++
			gap = bucket[ii].ion - bucket[ii-1].ion
			if gap <= fragmentBinSize && bucket[ii].intensity > maxInten {
				maxInten = bucket[ii].intensity
			}
		}

		for j := i; j < ii; j++ {
			bucket[j].intensity = maxInten
		}
		i = ii
	}
}
