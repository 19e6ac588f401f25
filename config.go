package msprep

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// supportedSchemaConstraint is the range of Config.SchemaVersion this build
// understands. Bumped whenever a breaking field is added/removed.
const supportedSchemaConstraint = ">= 1.0, < 2.0"

// ToleranceUnits enumerates §4.4's tolerance unit options.
type ToleranceUnits int

const (
	ToleranceAMU ToleranceUnits = iota
	ToleranceMMU
	TolerancePPM
)

// ToleranceType enumerates §4.4's tolerance scope options.
type ToleranceType int

const (
	TolerancePeptide ToleranceType = iota
	TolerancePrecursorMZ
)

// IsotopeError enumerates §4.4's isotope-error window options.
type IsotopeError int

const (
	IsotopeErrorNone IsotopeError = iota
	IsotopeErrorNarrow
	IsotopeErrorWide
)

// RemovePrecursorPolicy enumerates §4.2's precursor-removal options.
type RemovePrecursorPolicy int

const (
	RemovePrecursorNone RemovePrecursorPolicy = iota
	RemovePrecursorSingleCharge
	RemovePrecursorAllCharges
)

// AnalysisType enumerates §4.8's scan-range analysis modes.
type AnalysisType int

const (
	AnalysisEntireFile AnalysisType = iota
	AnalysisSpecificScan
	AnalysisSpecificScanRange
)

// InputType enumerates the scan-file formats IntakeLoop's mzXML probe-count
// exit path needs to distinguish (§4.8, §9).
type InputType int

const (
	InputTypeOther InputType = iota
	InputTypeMZXML
)

func (t InputType) String() string {
	switch t {
	case InputTypeMZXML:
		return "mzXML"
	default:
		return "other"
	}
}

// ClearMzRange is a peak-clearing window: peaks with mz in [Start, End] are
// zeroed before the minPeaks/activation filters run.
type ClearMzRange struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Config is the immutable, process-wide configuration value that replaces
// the source's g_staticParams/g_massRange globals (DESIGN NOTES §9).
// Every field is the Go analogue of a §6 "Configuration options recognized"
// entry.
type Config struct {
	SchemaVersion string `yaml:"schema_version"`

	InverseBinWidth float64 `yaml:"inverse_bin_width"`
	BinOffset       float64 `yaml:"bin_offset"`

	HighPeptideMass float64 `yaml:"high_peptide_mass"`
	LowPeptideMass  float64 `yaml:"low_peptide_mass"`

	MinIntensity     float64      `yaml:"min_intensity"`
	MinPeaks         int          `yaml:"min_peaks"`
	ClearMzRange     ClearMzRange `yaml:"clear_mz_range"`

	RemovePrecursor    RemovePrecursorPolicy `yaml:"remove_precursor"`
	RemovePrecursorTol float64               `yaml:"remove_precursor_tol"`

	StartCharge        int32 `yaml:"start_charge"`
	EndCharge          int32 `yaml:"end_charge"`
	OverrideCharge     bool  `yaml:"override_charge"`
	MaxPrecursorCharge int32 `yaml:"max_precursor_charge"`
	MaxFragmentCharge  int32 `yaml:"max_fragment_charge"`

	UseNeutralLoss bool           `yaml:"use_neutral_loss"`
	IonVal         map[string]int `yaml:"ion_val"` // keys: "A".."Z"

	TheoreticalFragmentIons int `yaml:"theoretical_fragment_ions"`

	SparseMatrixEnabled bool `yaml:"sparse_matrix_enabled"`

	FragmentBinSize float64 `yaml:"fragment_bin_size"`

	ToleranceUnits  ToleranceUnits `yaml:"tolerance_units"`
	ToleranceType   ToleranceType  `yaml:"tolerance_type"`
	InputTolerance  float64        `yaml:"input_tolerance"`
	IsotopeError    IsotopeError   `yaml:"isotope_error"`

	ActivationMethod string `yaml:"activation_method"`

	SpectrumBatchSize int `yaml:"spectrum_batch_size"`

	AnalysisType AnalysisType `yaml:"analysis_type"`
	FirstScan    int32        `yaml:"first_scan"`
	LastScan     int32        `yaml:"last_scan"`

	InputType InputType `yaml:"input_type"`

	NumThreads int `yaml:"num_threads"`

	OutputOutFiles  bool `yaml:"output_out_files"`
	SkipAlreadyDone bool `yaml:"skip_already_done"`
	AnyStreamOutput bool `yaml:"any_stream_output"`
	BaseDir         string `yaml:"base_dir"`
	BaseName        string `yaml:"base_name"`
}

// LoadConfig reads and validates a Config from a YAML file, mirroring the
// teacher's gopkg.in/yaml.v3 config-loading idiom.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks internal consistency the way CometPreprocess implicitly
// assumes its globals satisfy before the intake loop starts.
func (c *Config) Validate() error {
	if c.SchemaVersion != "" {
		v, err := version.NewVersion(c.SchemaVersion)
		if err != nil {
			return fmt.Errorf("schema_version %q: %w", c.SchemaVersion, err)
		}
		constraint, err := version.NewConstraint(supportedSchemaConstraint)
		if err != nil {
			return fmt.Errorf("internal: bad schema constraint: %w", err)
		}
		if !constraint.Check(v) {
			return fmt.Errorf("schema_version %s does not satisfy %s", v, supportedSchemaConstraint)
		}
	}

	if c.InverseBinWidth <= 0 {
		return fmt.Errorf("inverse_bin_width must be > 0")
	}
	if c.NumThreads < 1 {
		return fmt.Errorf("num_threads must be >= 1")
	}
	if c.LowPeptideMass != 0 && c.LowPeptideMass > c.HighPeptideMass {
		return fmt.Errorf("low_peptide_mass must be <= high_peptide_mass")
	}
	if c.IsotopeError != IsotopeErrorNone && c.IsotopeError != IsotopeErrorNarrow && c.IsotopeError != IsotopeErrorWide {
		return fmt.Errorf("isotope_error %d: %w", c.IsotopeError, errInvalidIsotopeErrorConfig)
	}
	return nil
}

var errInvalidIsotopeErrorConfig = fmt.Errorf("must be 0, 1, or 2")

// MaxArraySize is the largest iArraySize any Query can have under this
// Config, i.e. the length every BufferPool slot array must be.
func (c *Config) MaxArraySize() int {
	return int((c.HighPeptideMass + 100.0) * c.InverseBinWidth)
}

// binMapper returns the bin-mapping parameters for this Config.
func (c *Config) binMapper() binMapper {
	return newBinMapper(c.InverseBinWidth, c.BinOffset)
}

// useNeutralLossOverlay reports whether the A/B/Y neutral-loss overlay
// gate (§4.2) is satisfied.
func (c *Config) useNeutralLossOverlay() bool {
	if !c.UseNeutralLoss {
		return false
	}
	return c.IonVal["A"] != 0 || c.IonVal["B"] != 0 || c.IonVal["Y"] != 0
}
