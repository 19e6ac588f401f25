package msprep

// fakeSpectrum is a minimal in-memory Spectrum used across the test suite;
// it stands in for the file-format-backed implementation the real reader
// would provide.
type fakeSpectrum struct {
	scanNumber  int32
	precursorMZ float64
	activation  ActivationMethod
	rtMinutes   float64
	peaks       []Peak
	zstates     []ZState
	nativeID    string
	hasNativeID bool
}

func (s *fakeSpectrum) ScanNumber() int32                  { return s.scanNumber }
func (s *fakeSpectrum) PrecursorMZ() float64                { return s.precursorMZ }
func (s *fakeSpectrum) Activation() ActivationMethod         { return s.activation }
func (s *fakeSpectrum) RetentionTimeMinutes() float64        { return s.rtMinutes }
func (s *fakeSpectrum) Len() int                             { return len(s.peaks) }
func (s *fakeSpectrum) At(i int) Peak                        { return s.peaks[i] }
func (s *fakeSpectrum) SizeZ() int                           { return len(s.zstates) }
func (s *fakeSpectrum) AtZ(i int) ZState                     { return s.zstates[i] }
func (s *fakeSpectrum) AddZState(z int32, m float64)         { s.zstates = append(s.zstates, ZState{Z: z, M: m}) }
func (s *fakeSpectrum) NativeID() (string, bool)             { return s.nativeID, s.hasNativeID }
