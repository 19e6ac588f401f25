package msprep

import (
	"fmt"
	"sync"
)

// scratchSlot bundles the five f64 scratch arrays a single in-flight
// preprocessing task needs: raw binned intensities, fast-xcorr staging,
// windowed correlation data, the smoothed spectrum, and extracted peaks.
type scratchSlot struct {
	rawData         []float64
	fastXcorrStage  []float64
	correlationData []float64
	smoothed        []float64
	peakExtracted   []float64
}

// BufferPool implements §4.7: N preallocated scratchSlots shared by the
// worker pool, handed out by index under a single mutex so a dispatcher
// that never lets more than N tasks run concurrently never sees
// ErrPoolExhausted.
type BufferPool struct {
	mu   sync.Mutex
	busy []bool
	slot []scratchSlot
}

// NewBufferPool allocates n slots, each sized for maxArraySize bins.
func NewBufferPool(n, maxArraySize int) *BufferPool {
	bp := &BufferPool{
		busy: make([]bool, n),
		slot: make([]scratchSlot, n),
	}
	for i := range bp.slot {
		bp.slot[i] = scratchSlot{
			rawData:         make([]float64, maxArraySize),
			fastXcorrStage:  make([]float64, maxArraySize),
			correlationData: make([]float64, maxArraySize),
			smoothed:        make([]float64, maxArraySize),
			peakExtracted:   make([]float64, maxArraySize),
		}
	}
	return bp
}

// Acquire scans for a free slot, marks it busy, and returns its index.
// It fails with ErrPoolExhausted only if every slot is already busy, which
// must not happen when the caller bounds in-flight tasks to n.
func (bp *BufferPool) Acquire() (int, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	for i, b := range bp.busy {
		if !b {
			bp.busy[i] = true
			return i, nil
		}
	}
	return -1, fmt.Errorf("%s: no free buffer pool slots", ErrPoolExhausted)
}

// Release clears the busy flag for slot i. The slot's arrays are not
// zeroed; callers must zero the prefix they intend to read on next use.
func (bp *BufferPool) Release(i int) {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	bp.busy[i] = false
}

// zeroPrefix clears the first n entries of every scratch array in slot i.
func (bp *BufferPool) zeroPrefix(i, n int) {
	s := &bp.slot[i]
	for _, arr := range [][]float64{s.rawData, s.fastXcorrStage, s.correlationData, s.smoothed, s.peakExtracted} {
		for j := 0; j < n && j < len(arr); j++ {
			arr[j] = 0
		}
	}
}
