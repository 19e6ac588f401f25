package msprep

import "fmt"

// ResolveTolerance implements §4.4 TolerancePolicy: it turns a Config's
// tolerance options plus a Query's mass/charge into a (minusTol, plusTol)
// window. It performs resolution only — tolerance *use* is a downstream
// concern, per the Non-goals.
func ResolveTolerance(cfg *Config, expPepMass float64, chargeState int32) (minusTol, plusTol float64, err error) {
	var tol float64
	switch cfg.ToleranceUnits {
	case ToleranceAMU:
		tol = cfg.InputTolerance
	case ToleranceMMU:
		tol = cfg.InputTolerance * 0.001
	case TolerancePPM:
		tol = cfg.InputTolerance * expPepMass / 1e6
	default:
		tol = cfg.InputTolerance
	}

	if cfg.ToleranceType == TolerancePrecursorMZ {
		tol *= float64(chargeState)
	}

	switch cfg.IsotopeError {
	case IsotopeErrorNone:
		return expPepMass - tol, expPepMass + tol, nil
	case IsotopeErrorNarrow:
		return expPepMass - tol - 3.0*C13Diff*ProtonMass, expPepMass + tol + 1.0*C13Diff*ProtonMass, nil
	case IsotopeErrorWide:
		return expPepMass - tol - 8.1, expPepMass + tol + 8.1, nil
	default:
		return 0, 0, fmt.Errorf("%s: isotope_error=%d", ErrInvalidIsotope, cfg.IsotopeError)
	}
}
