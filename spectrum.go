package msprep

// ActivationMethod is the fragmentation technique tagged on a spectrum.
type ActivationMethod int

const (
	ActivationNA ActivationMethod = iota
	ActivationCID
	ActivationHCD
	ActivationETD
	ActivationECD
	ActivationPQD
	ActivationIRMPD
)

// String returns the configuration-file spelling of the activation method.
func (a ActivationMethod) String() string {
	switch a {
	case ActivationNA:
		return "NA"
	case ActivationCID:
		return "CID"
	case ActivationHCD:
		return "HCD"
	case ActivationETD:
		return "ETD"
	case ActivationECD:
		return "ECD"
	case ActivationPQD:
		return "PQD"
	case ActivationIRMPD:
		return "IRMPD"
	default:
		return "Unknown"
	}
}

// ParseActivationMethod converts a configuration string into an
// ActivationMethod. "NA" and the empty string map to ActivationNA; any other
// unlisted string, including "ALL", returns an error.
func ParseActivationMethod(s string) (ActivationMethod, error) {
	switch s {
	case "NA", "":
		return ActivationNA, nil
	case "CID":
		return ActivationCID, nil
	case "HCD":
		return ActivationHCD, nil
	case "ETD":
		return ActivationETD, nil
	case "ECD":
		return ActivationECD, nil
	case "PQD":
		return ActivationPQD, nil
	case "IRMPD":
		return ActivationIRMPD, nil
	default:
		return 0, errUnknownActivationMethod(s)
	}
}

type errUnknownActivationMethod string

func (e errUnknownActivationMethod) Error() string {
	return "unknown activation method: " + string(e)
}

// Peak is a single (m/z, intensity) observation in a spectrum.
type Peak struct {
	MZ        float64
	Intensity float64
}

// ZState is a candidate precursor charge/mass pair, either reported by the
// instrument or inferred by ChargeInference.
type ZState struct {
	Z int32
	M float64
}

// Spectrum is the external collaborator yielded by a ScanReader: an
// immutable, already-parsed MS/MS spectrum. Implementations are provided by
// the file-format layer, out of scope here.
type Spectrum interface {
	ScanNumber() int32
	PrecursorMZ() float64
	Activation() ActivationMethod
	RetentionTimeMinutes() float64

	Len() int
	At(i int) Peak

	SizeZ() int
	AtZ(i int) ZState
	AddZState(z int32, m float64)

	// NativeID returns the spectrum's mzML/mzXML native identifier and
	// whether one was present (an absent ID is modeled as (_, false)
	// rather than the source's "null" sentinel string, per DESIGN NOTES).
	NativeID() (string, bool)
}
