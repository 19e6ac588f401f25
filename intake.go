package msprep

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// clearedSpectrum wraps a Spectrum, reporting zero intensity for any peak
// whose m/z falls in [clearStart, clearEnd], implementing §4.8's
// clearMzRange step without mutating the underlying reader-owned Spectrum.
type clearedSpectrum struct {
	Spectrum
	clearStart, clearEnd float64
}

func (c clearedSpectrum) At(i int) Peak {
	p := c.Spectrum.At(i)
	if p.MZ >= c.clearStart && p.MZ <= c.clearEnd {
		p.Intensity = 0
	}
	return p
}

func peaksAbove(spec Spectrum, minIntensity float64) int {
	n := 0
	for i := 0; i < spec.Len(); i++ {
		if spec.At(i).Intensity > minIntensity {
			n++
		}
	}
	return n
}

// IntakeLoop implements §4.8: a single-threaded scan producer that applies
// the clearMzRange/minPeaks/activation filters and hands every admitted
// spectrum to a bounded pool of SpectrumPreprocessor workers.
type IntakeLoop struct {
	cfg     *Config
	prep    *SpectrumPreprocessor
	errs    *ErrorSink
	metrics *Metrics
	log     *logrus.Entry
}

// NewIntakeLoop wires an IntakeLoop around an already-constructed
// SpectrumPreprocessor and its shared ErrorSink.
func NewIntakeLoop(cfg *Config, prep *SpectrumPreprocessor, errs *ErrorSink, metrics *Metrics, log *logrus.Logger) *IntakeLoop {
	return &IntakeLoop{cfg: cfg, prep: prep, errs: errs, metrics: metrics, log: log.WithField("component", "intake")}
}

// Run drives reader over fileName, dispatching each admitted spectrum to a
// worker and blocking until every dispatched task completes. At most
// cfg.NumThreads+1 tasks are in flight at once, the same bound that
// waitForQueuedParams(1, 1) gives; all of them run concurrently.
func (il *IntakeLoop) Run(ctx context.Context, reader ScanReader, fileName string, firstScanHint int32) error {
	sem := semaphore.NewWeighted(int64(il.cfg.NumThreads + 1))
	group, ctx := errgroup.WithContext(ctx)

	firstScan := true
	var fileLastScan int32 = -1
	lastScanKnown := false
	var totalScans, loadedSinceBatchStart int32
	probeCount := int32(0)

	for {
		var spec Spectrum
		var err error
		if firstScan {
			spec, err = reader.Read(fileName, firstScanHint)
			firstScan = false
		} else {
			spec, err = reader.ReadNext()
		}
		if err != nil {
			il.errs.SetError(ErrReader, err.Error())
			break
		}

		if !lastScanKnown {
			fileLastScan = reader.LastScan()
			lastScanKnown = true
		}
		if fileLastScan < il.cfg.FirstScan {
			break
		}

		if spec.ScanNumber() == 0 {
			if il.cfg.InputType != InputTypeMZXML {
				break
			}
			probeCount++
			if probeCount > fileLastScan {
				break
			}
			continue
		}

		cleared := clearedSpectrum{Spectrum: spec, clearStart: il.cfg.ClearMzRange.Start, clearEnd: il.cfg.ClearMzRange.End}

		if peaksAbove(cleared, 0) < il.cfg.MinPeaks {
			if il.metrics != nil {
				il.metrics.spectraRejected.WithLabelValues("min_peaks").Inc()
			}
			if il.checkExit(scanExitState{scan: spec.ScanNumber(), totalScans: totalScans, readerLastScan: fileLastScan, loadedSinceBatchStart: loadedSinceBatchStart}) {
				break
			}
			continue
		}

		if il.cfg.AnalysisType == AnalysisSpecificScanRange && il.cfg.LastScan > 0 && spec.ScanNumber() > il.cfg.LastScan {
			break
		}

		if !il.activationMethodMatches(spec.Activation()) {
			if il.metrics != nil {
				il.metrics.spectraRejected.WithLabelValues("activation_method").Inc()
			}
			if il.checkExit(scanExitState{scan: spec.ScanNumber(), totalScans: totalScans, readerLastScan: fileLastScan, loadedSinceBatchStart: loadedSinceBatchStart}) {
				break
			}
			continue
		}

		loadedSinceBatchStart++

		if err := sem.Acquire(ctx, 1); err != nil {
			il.errs.SetError(ErrReader, fmt.Sprintf("semaphore acquire: %v", err))
			break
		}
		task := cleared
		group.Go(func() error {
			defer sem.Release(1)
			il.prep.Process(task)
			return nil
		})
		totalScans++
		if il.metrics != nil {
			il.metrics.spectraAdmitted.Inc()
		}

		if il.checkExit(scanExitState{scan: spec.ScanNumber(), totalScans: totalScans, readerLastScan: fileLastScan, loadedSinceBatchStart: loadedSinceBatchStart}) {
			break
		}
	}

	if err := group.Wait(); err != nil {
		return err
	}
	if kind, msg, ok := il.errs.Error(); ok {
		return fmt.Errorf("%s: %s", kind, msg)
	}
	return nil
}

// scanExitState bundles the loop counters checkExit needs, so the
// predicate itself stays a pure function of that state.
type scanExitState struct {
	scan                  int32
	totalScans            int32
	readerLastScan        int32
	loadedSinceBatchStart int32
}

// checkExit implements §4.8 CheckExit: true on any condition that should
// end the intake loop.
func (il *IntakeLoop) checkExit(s scanExitState) bool {
	if il.errs.HasError() {
		return true
	}
	switch il.cfg.AnalysisType {
	case AnalysisSpecificScan:
		return true
	case AnalysisSpecificScanRange:
		if il.cfg.LastScan > 0 && s.scan >= il.cfg.LastScan {
			return true
		}
	case AnalysisEntireFile:
		if il.cfg.InputType == InputTypeMZXML && s.scan == 0 {
			return true
		}
	}
	if il.cfg.InputType == InputTypeMZXML && s.totalScans > s.readerLastScan {
		return true
	}
	if il.cfg.SpectrumBatchSize > 0 && s.loadedSinceBatchStart >= int32(il.cfg.SpectrumBatchSize) {
		return true
	}
	return false
}

// activationMethodMatches implements §4.8's activation filter: spectra tagged
// NA, or a configured method of "ALL", always pass; otherwise the spectrum's
// method must equal the configured one (§9: the NA bypass is preserved even
// when a specific method was requested). An empty or unrecognised configured
// method also admits every spectrum.
func (il *IntakeLoop) activationMethodMatches(act ActivationMethod) bool {
	if il.cfg.ActivationMethod == "ALL" || il.cfg.ActivationMethod == "" {
		return true
	}
	if act == ActivationNA {
		return true
	}
	configured, err := ParseActivationMethod(il.cfg.ActivationMethod)
	if err != nil {
		return true
	}
	return act == configured
}
