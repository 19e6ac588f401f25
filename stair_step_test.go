package msprep

import "testing"

func buildBucket(ions []float64, intensities []float64) []spIon {
	bucket := make([]spIon, len(ions))
	for i := range ions {
		bucket[i] = spIon{ion: ions[i], intensity: intensities[i]}
	}
	return bucket
}

func TestSortByIonAscending(t *testing.T) {
	bucket := buildBucket([]float64{5, 1, 3, 2, 4}, []float64{1, 2, 3, 4, 5})
	sortByIon(bucket)
	for i := 1; i < len(bucket); i++ {
		if bucket[i].ion < bucket[i-1].ion {
			t.Fatalf("bucket not ascending at %d: %v", i, bucket)
		}
	}
}

func TestStairStepMergesCloseRun(t *testing.T) {
	bucket := buildBucket([]float64{10, 11, 12, 50}, []float64{1, 5, 2, 9})
	stairStep(bucket, 1.0)

	for _, i := range []int{0, 1, 2} {
		if bucket[i].intensity != 5 {
			t.Errorf("bucket[%d].intensity = %v, want 5 (run max)", i, bucket[i].intensity)
		}
	}
	if bucket[3].intensity != 9 {
		t.Errorf("bucket[3].intensity = %v, want 9 (isolated ion untouched)", bucket[3].intensity)
	}
}

func TestStairStepIdempotent(t *testing.T) {
	bucket := buildBucket([]float64{1, 2, 3, 10, 20, 21}, []float64{4, 1, 7, 2, 3, 9})
	stairStep(bucket, 1.0)

	once := make([]spIon, len(bucket))
	copy(once, bucket)

	stairStep(bucket, 1.0)
	for i := range bucket {
		if bucket[i] != once[i] {
			t.Errorf("stairStep not idempotent at %d: first=%v second=%v", i, once[i], bucket[i])
		}
	}
}
