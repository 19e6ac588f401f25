package msprep

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// ChargeState tracks the highest MaxFragCharge observed across every Query
// produced so far, replacing the source's g_massRange.iMaxFragmentCharge
// global (§9 DESIGN NOTES).
type ChargeState struct {
	mu       sync.Mutex
	observed int32
}

// NewChargeState returns a zeroed ChargeState.
func NewChargeState() *ChargeState { return &ChargeState{} }

// observe atomically raises the observed maximum to at least maxFragCharge.
func (c *ChargeState) observe(maxFragCharge int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if maxFragCharge > c.observed {
		c.observed = maxFragCharge
	}
}

// Observed returns the highest fragment charge seen so far.
func (c *ChargeState) Observed() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.observed
}

// SpectrumPreprocessor implements §4.6: it turns one Spectrum into zero or
// more Query results, one per admissible candidate Z-state, reusing scratch
// buffers from a shared BufferPool and appending results to a shared
// ResultQueue.
type SpectrumPreprocessor struct {
	cfg     *Config
	bin     binMapper
	masses  precalcMasses
	pool    *BufferPool
	results *ResultQueue
	charges *ChargeState
	errs    *ErrorSink
	metrics *Metrics
	log     *logrus.Entry
}

// NewSpectrumPreprocessor wires together the shared collaborators a running
// intake loop's workers all share.
func NewSpectrumPreprocessor(cfg *Config, pool *BufferPool, results *ResultQueue, charges *ChargeState, errs *ErrorSink, metrics *Metrics, log *logrus.Logger) *SpectrumPreprocessor {
	bin := cfg.binMapper()
	return &SpectrumPreprocessor{
		cfg:     cfg,
		bin:     bin,
		masses:  newPrecalcMasses(bin),
		pool:    pool,
		results: results,
		charges: charges,
		errs:    errs,
		metrics: metrics,
		log:     log.WithField("component", "preprocessor"),
	}
}

// Process runs §4.6's pipeline for every candidate Z-state of spec, each
// tagged with its own correlation ID for logging.
func (p *SpectrumPreprocessor) Process(spec Spectrum) {
	var zstates []ZState
	if spec.SizeZ() > 0 && !p.cfg.OverrideCharge {
		for i := 0; i < spec.SizeZ(); i++ {
			zstates = append(zstates, spec.AtZ(i))
		}
	} else {
		zstates = InferCharges(p.cfg, spec)
	}

	for _, z := range zstates {
		p.processOne(spec, z)
	}
}

func (p *SpectrumPreprocessor) processOne(spec Spectrum, z ZState) {
	scan := spec.ScanNumber()
	taskID := uuid.New().String()
	log := p.log.WithFields(logrus.Fields{"scan": scan, "charge": z.Z, "task": taskID})

	if p.checkExistOutFile(scan, z.Z) {
		log.Debug("skipping: output file already present")
		if p.metrics != nil {
			p.metrics.spectraRejected.WithLabelValues("skip_existing").Inc()
		}
		return
	}

	if p.cfg.LowPeptideMass != 0 && (z.M < p.cfg.LowPeptideMass || z.M > p.cfg.HighPeptideMass) {
		log.Debug("skipping: mass out of configured range")
		if p.metrics != nil {
			p.metrics.spectraRejected.WithLabelValues("mass_range").Inc()
		}
		return
	}
	if z.Z > p.cfg.MaxPrecursorCharge {
		log.Debug("skipping: charge exceeds max precursor charge")
		if p.metrics != nil {
			p.metrics.spectraRejected.WithLabelValues("max_precursor_charge").Inc()
		}
		return
	}

	arraySize := int((z.M + 100.0) * p.cfg.InverseBinWidth)
	maxFragCharge := z.Z - 1
	if z.Z == 1 {
		maxFragCharge = 1
	}
	if maxFragCharge > p.cfg.MaxFragmentCharge {
		maxFragCharge = p.cfg.MaxFragmentCharge
	}
	p.charges.observe(maxFragCharge)

	minusTol, plusTol, err := ResolveTolerance(p.cfg, z.M, z.Z)
	if err != nil {
		p.errs.SetError(ErrInvalidIsotope, err.Error())
		log.WithError(err).Error("tolerance resolution failed")
		if p.metrics != nil {
			p.metrics.preprocessErrors.Inc()
		}
		return
	}

	slot, err := p.pool.Acquire()
	if err != nil {
		p.errs.SetError(ErrPoolExhausted, err.Error())
		log.WithError(err).Error("buffer pool exhausted")
		if p.metrics != nil {
			p.metrics.preprocessErrors.Inc()
		}
		return
	}
	if p.metrics != nil {
		p.metrics.bufferPoolInUse.Inc()
	}
	defer func() {
		p.pool.Release(slot)
		if p.metrics != nil {
			p.metrics.bufferPoolInUse.Dec()
		}
	}()
	p.pool.zeroPrefix(slot, arraySize)
	s := &p.pool.slot[slot]

	var timer *prometheus.Timer
	if p.metrics != nil {
		timer = prometheus.NewTimer(p.metrics.spectrumLatency)
	}
	query, err := p.runPipeline(spec, z, arraySize, maxFragCharge, minusTol, plusTol, s)
	if timer != nil {
		timer.ObserveDuration()
	}
	if err != nil {
		p.errs.SetError(ErrAllocationFailed, err.Error())
		log.WithError(err).Error("preprocessing pipeline failed")
		if p.metrics != nil {
			p.metrics.preprocessErrors.Inc()
		}
		return
	}

	p.results.Append(query)
	if p.metrics != nil {
		p.metrics.queriesProduced.Inc()
		p.metrics.resultQueueDepth.Set(float64(p.results.Len()))
	}
	log.Debug("query produced")
}

// runPipeline implements the LoadIons -> MakeCorrData -> FastXcorr ->
// (Smooth -> PeakExtract) -> GetTopIons -> sort -> StairStep chain that
// produces one Query, per §4.6.
func (p *SpectrumPreprocessor) runPipeline(spec Spectrum, z ZState, arraySize int, maxFragCharge int32, minusTol, plusTol float64, s *scratchSlot) (*Query, error) {
	var st preprocessState
	loadIons(p.cfg, p.bin, spec, z.M, z.Z, s.rawData[:arraySize], &st)

	// A spectrum with no usable intensity still produces a Query: MakeCorrData
	// guards st.highestIntensity <= FloatZero with scale=1.0 rather than
	// dividing by zero, matching the original's unconditional "return true".
	makeCorrData(s.rawData[:arraySize], s.correlationData[:arraySize], arraySize, &st)

	meanAround := fastXcorrMean(s.correlationData[:arraySize], arraySize, s.fastXcorrStage)
	opts := fastXcorrOptions{
		flankingPeaks: p.cfg.TheoreticalFragmentIons == 0,
		neutralLoss:   p.cfg.useNeutralLossOverlay(),
		minus17:       p.masses.iMinus17,
		minus18:       p.masses.iMinus18,
	}
	fastXcorr, fastXcorrNL := buildFastXcorr(s.correlationData[:arraySize], meanAround, arraySize, opts)

	var fastXcorrVec, spScoreVec Vector
	var fastXcorrNLVec *Vector

	if p.cfg.SparseMatrixEnabled {
		fastXcorrVec = sparseVector(BuildSparse(fastXcorr, arraySize))
		if fastXcorrNL != nil {
			v := sparseVector(BuildSparse(fastXcorrNL, arraySize))
			fastXcorrNLVec = &v
		}
	} else {
		fastXcorrVec = denseVector(fastXcorr)
		if fastXcorrNL != nil {
			v := denseVector(fastXcorrNL)
			fastXcorrNLVec = &v
		}
	}

	if p.cfg.FragmentBinSize >= 0.10 {
		smooth(s.rawData[:arraySize], arraySize, s.smoothed)
		peakExtract(s.rawData[:arraySize], arraySize, s.peakExtracted)
	}

	bucket := getTopIons(s.rawData[:arraySize], arraySize)
	sortByIon(bucket)
	stairStep(bucket, p.cfg.FragmentBinSize)

	if p.cfg.SparseMatrixEnabled {
		entries := make([]SparseEntry, 0, NumSpIons)
		for _, ion := range bucket {
			if ion.intensity > FloatZero {
				entries = append(entries, SparseEntry{Bin: int32(ion.ion), Intensity: float32(ion.intensity)})
			}
		}
		spScoreVec = sparseVector(entries)
	} else {
		dense := make([]float32, arraySize)
		for _, ion := range bucket {
			dense[int(ion.ion)] = float32(ion.intensity)
		}
		spScoreVec = denseVector(dense)
	}

	nativeID, _ := spec.NativeID()

	return &Query{
		ScanNumber:       spec.ScanNumber(),
		ChargeState:      z.Z,
		ExpPepMass:       z.M,
		ArraySize:        arraySize,
		MaxFragCharge:    maxFragCharge,
		RetentionTimeSec: 60.0 * spec.RetentionTimeMinutes(),
		NativeID:         nativeID,
		MinusTol:         minusTol,
		PlusTol:          plusTol,
		FastXcorr:        fastXcorrVec,
		FastXcorrNL:      fastXcorrNLVec,
		SpScore:          spScoreVec,
	}, nil
}

// checkExistOutFile implements the §6 skip-existing-output path: when
// configured, a (scan, charge) pair is skipped if its .out file already
// exists and is openable for read.
func (p *SpectrumPreprocessor) checkExistOutFile(scan, charge int32) bool {
	if !(p.cfg.OutputOutFiles && p.cfg.SkipAlreadyDone && !p.cfg.AnyStreamOutput) {
		return false
	}
	name := fmt.Sprintf("%s.%05d.%05d.%d.out", p.cfg.BaseName, scan, scan, charge)
	path := filepath.Join(p.cfg.BaseDir, name)
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
