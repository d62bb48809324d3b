// Package logging builds the human readable loggers used by the commands.
package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logr.Logger writing console lines to w. Messages logged
// with V(n) are written when n <= verbosity.
func New(w io.Writer, verbosity int) logr.Logger {
	if verbosity < 0 {
		verbosity = 0
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	sink := zapcore.AddSync(w)
	level := zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	log := zap.New(zapcore.NewCore(encoder, sink, level)).
		WithOptions(
			zap.ErrorOutput(sink),
			zap.AddStacktrace(zap.NewAtomicLevelAt(zap.DPanicLevel)),
		)
	return zapr.NewLogger(log)
}
