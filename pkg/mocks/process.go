// Package mocks provides hand-written mock implementations of the ports
// interfaces for testing.
package mocks

import (
	"bytes"

	"github.com/user/framepipe/pkg/ports"
)

// EncoderRunner is a mock implementation of ports.EncoderRunner.
type EncoderRunner struct {
	SpawnFunc func(inv ports.Invocation) (ports.EncoderProcess, error)

	// Recorded calls for verification
	SpawnCalls []ports.Invocation

	// Process is returned by Spawn when SpawnFunc is nil. If both are
	// nil, Spawn returns a fresh EncoderProcess.
	Process ports.EncoderProcess
}

func (m *EncoderRunner) Spawn(inv ports.Invocation) (ports.EncoderProcess, error) {
	m.SpawnCalls = append(m.SpawnCalls, inv)
	if m.SpawnFunc != nil {
		return m.SpawnFunc(inv)
	}
	if m.Process != nil {
		return m.Process, nil
	}
	return &EncoderProcess{}, nil
}

// EncoderProcess is a mock implementation of ports.EncoderProcess.
// By default it accepts all writes into Input and exits with status 0.
type EncoderProcess struct {
	WriteFunc     func(p []byte) (int, error)
	WaitFunc      func() ports.ExitStatus
	TerminateFunc func() error

	// Input accumulates every byte written, in order.
	Input bytes.Buffer

	// MaxWrite caps how many bytes a single Write accepts, to exercise
	// partial-write handling. 0 means unlimited.
	MaxWrite int

	// Dead makes Running return false and is also set by Terminate.
	Dead bool

	// Status is returned by Wait when WaitFunc is nil.
	Status ports.ExitStatus

	// Recorded calls for verification
	WriteCalls     int
	CloseCalls     int
	WaitCalled     bool
	TerminateCalls int
}

func (m *EncoderProcess) PID() int {
	return 4242
}

func (m *EncoderProcess) Write(p []byte) (int, error) {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	if m.MaxWrite > 0 && len(p) > m.MaxWrite {
		p = p[:m.MaxWrite]
	}
	return m.Input.Write(p)
}

func (m *EncoderProcess) CloseInput() error {
	m.CloseCalls++
	return nil
}

func (m *EncoderProcess) Wait() ports.ExitStatus {
	m.WaitCalled = true
	m.Dead = true
	if m.WaitFunc != nil {
		return m.WaitFunc()
	}
	return m.Status
}

func (m *EncoderProcess) Terminate() error {
	m.TerminateCalls++
	m.Dead = true
	if m.TerminateFunc != nil {
		return m.TerminateFunc()
	}
	return nil
}

func (m *EncoderProcess) Running() bool {
	return !m.Dead
}

// InvocationBuilder is a mock implementation of ports.InvocationBuilder.
type InvocationBuilder struct {
	BuildFunc func(params ports.InvocationParams) (ports.Invocation, error)

	// Recorded calls for verification
	BuildCalls []ports.InvocationParams
}

func (m *InvocationBuilder) Build(params ports.InvocationParams) (ports.Invocation, error) {
	m.BuildCalls = append(m.BuildCalls, params)
	if m.BuildFunc != nil {
		return m.BuildFunc(params)
	}
	return ports.Invocation{Path: "/usr/bin/true", Args: []string{params.OutputPath}}, nil
}

var (
	_ ports.EncoderRunner     = (*EncoderRunner)(nil)
	_ ports.EncoderProcess    = (*EncoderProcess)(nil)
	_ ports.InvocationBuilder = (*InvocationBuilder)(nil)
)
