package id3meta

import (
	"runtime"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
)

// Option configures reading and extraction.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := id3meta.ReadFile("episode.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithLogger(log),
//	)
type Option func(*options)

type options struct {
	logger         logr.Logger
	registry       *Registry
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Drop warnings from the returned Tag
	tracerProvider trace.TracerProvider
	concurrency    int // ReadMany parallelism
}

func defaultOptions() *options {
	return &options{
		logger:      logr.Discard(),
		concurrency: runtime.NumCPU(),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = defaultRegistry
	}
	return o
}

// WithLogger sets the logger used for diagnostics.
//
// Frames that cannot be extracted are logged at V(1) with the frame id and
// the reason. A truncated tag body is logged at V(0).
// The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithRegistry sets the decoder registry used by extraction.
//
// The default is DefaultRegistry(). A nil registry keeps the default.
//
// Example:
//
//	reg := id3meta.DefaultRegistry().With(myTXXXDecoder{})
//	frames := id3meta.Extract(tag.Frames, id3meta.WithRegistry(reg))
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default a tag whose body ends early is returned with the frames read
// so far and a Warning. With strict parsing the read fails instead, and
// the error wraps the warning's cause:
//
//	_, err := id3meta.ReadFile("cut.mp3", id3meta.WithStrictParsing())
//	errors.Is(err, id3meta.ErrTruncated) // true for a short body
func WithStrictParsing() Option {
	return func(o *options) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings drops all warnings from the returned Tag.
// They are still logged.
func WithIgnoreWarnings() Option {
	return func(o *options) {
		o.ignoreWarnings = true
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used by
// ReadFileContext and ReadMany. The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithConcurrency limits how many files ReadMany decodes at once.
// Values below 1 are ignored. The default is runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
