package ports

// DebugSink abstracts debug output for intermediate pipeline data.
// It allows saving what actually flowed into the encoder for later
// inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveInvocationJSON saves the resolved encoder invocation as JSON.
	SaveInvocationJSON(data []byte) error

	// SaveRawFrame saves the raw bytes of a single submitted frame.
	SaveRawFrame(index int, data []byte) error

	// SaveDiagnostics saves the diagnostic text captured from the encoder
	// process.
	SaveDiagnostics(text string) error
}
