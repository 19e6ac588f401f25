package msprep

import (
	"fmt"
	"sync"
)

// ScanReader is the file-format collaborator IntakeLoop drives. Concrete
// implementations (mzML, mzXML, ...) are out of scope here (Non-goals); the
// engine only depends on this interface, per the source's MSReader usage in
// PreloadIons.
type ScanReader interface {
	// Read opens fileName and returns the spectrum at or after scanHint.
	// Called exactly once, for the first scan of a run.
	Read(fileName string, scanHint int32) (Spectrum, error)

	// ReadNext returns the next spectrum in the file opened by Read.
	// A Spectrum whose ScanNumber() is 0 signals "not an MS/MS scan" (see
	// §9's mzXML probe-count note) rather than an error.
	ReadNext() (Spectrum, error)

	// LastScan returns the last scan number in the file, once known.
	LastScan() int32
}

// ReaderFactory opens fileName and returns a ready-to-use ScanReader.
type ReaderFactory func(fileName string) (ScanReader, error)

var (
	readerRegistryMu sync.Mutex
	readerRegistry    = map[InputType]ReaderFactory{}
)

// RegisterReader binds a ReaderFactory to an InputType, the way
// database/sql drivers register themselves by name. A file-format package
// (mzML, mzXML, ...) calls this from its own init(); this package never
// constructs a concrete reader itself (Non-goals).
func RegisterReader(inputType InputType, factory ReaderFactory) {
	readerRegistryMu.Lock()
	defer readerRegistryMu.Unlock()
	readerRegistry[inputType] = factory
}

// OpenReader looks up the ReaderFactory registered for inputType and opens
// fileName with it.
func OpenReader(fileName string, inputType InputType) (ScanReader, error) {
	readerRegistryMu.Lock()
	factory, ok := readerRegistry[inputType]
	readerRegistryMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no ScanReader registered for input type %s", inputType)
	}
	return factory(fileName)
}
