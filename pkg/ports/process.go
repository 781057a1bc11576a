package ports

// Invocation describes how to launch the external encoder: the resolved
// executable path plus the full argument list (excluding argv[0]).
type Invocation struct {
	Path string
	Args []string
}

// ExitStatus is the outcome of a terminated encoder process.
type ExitStatus struct {
	// Code is the process exit code. -1 if the process was killed.
	Code int

	// Stderr is the diagnostic text captured from the process, kept as an
	// opaque blob for error reporting.
	Stderr string
}

// Success returns true if the process exited with status zero.
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

// EncoderRunner spawns external encoder processes.
type EncoderRunner interface {
	// Spawn starts the encoder process with its stdin open for writing and
	// its stderr drained in the background.
	Spawn(inv Invocation) (EncoderProcess, error)
}

// EncoderProcess is a handle to a live external encoder subprocess.
// It is exclusively owned by a single session; methods must not be called
// concurrently except for Running, which is safe at any time.
type EncoderProcess interface {
	// PID returns the operating system process identifier.
	PID() int

	// Write forwards bytes to the process stdin. It may block when the pipe
	// buffer is full; this is the intended backpressure mechanism.
	// After the process has exited, Write fails with a closed-pipe error.
	Write(p []byte) (int, error)

	// CloseInput closes stdin, signaling end-of-stream. Safe to call more
	// than once.
	CloseInput() error

	// Wait blocks until the process terminates and returns its exit status
	// together with the captured diagnostic output.
	Wait() ExitStatus

	// Terminate forcibly ends the process and reaps it. Used for
	// abandonment cleanup; safe to call after the process has exited.
	Terminate() error

	// Running reports whether the process is still alive. Non-blocking.
	Running() bool
}

// InvocationBuilder constructs the encoder invocation from session
// parameters. Implementations own the exact flag syntax of a particular
// encoder binary.
type InvocationBuilder interface {
	// Build resolves the encoder executable and assembles its argument
	// list. Fails if the executable cannot be located.
	Build(params InvocationParams) (Invocation, error)
}

// InvocationParams carries the encoder-facing subset of a session
// configuration.
type InvocationParams struct {
	Width       int
	Height      int
	PixelFormat string // raw input pixel format name, e.g. "rgb24"
	Framerate   string // e.g. "30" or "30000/1001"
	OutputPath  string
	BinaryPath  string // explicit encoder executable, empty = discover

	Codec     string // output codec, e.g. "libx264"
	Preset    string // encoder speed preset
	Container string // output container, empty = derive from path
	Quality   int    // 0-63, lower is better; 0 = encoder default
	Bitrate   int    // target bitrate in kbps; 0 = unset
	ExtraArgs []string
}
