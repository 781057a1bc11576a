package mocks

import (
	"github.com/user/framepipe/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink that records
// everything it receives.
type DebugSink struct {
	// EnabledValue is returned by Enabled.
	EnabledValue bool

	// Recorded calls for verification
	Invocations [][]byte
	RawFrames   map[int][]byte
	Diagnostics []string
}

// NewDebugSink creates an enabled recording sink.
func NewDebugSink() *DebugSink {
	return &DebugSink{
		EnabledValue: true,
		RawFrames:    make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.EnabledValue
}

func (m *DebugSink) SaveInvocationJSON(data []byte) error {
	m.Invocations = append(m.Invocations, append([]byte(nil), data...))
	return nil
}

func (m *DebugSink) SaveRawFrame(index int, data []byte) error {
	if m.RawFrames == nil {
		m.RawFrames = make(map[int][]byte)
	}
	m.RawFrames[index] = append([]byte(nil), data...)
	return nil
}

func (m *DebugSink) SaveDiagnostics(text string) error {
	m.Diagnostics = append(m.Diagnostics, text)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
