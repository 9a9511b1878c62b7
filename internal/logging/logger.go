package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnabled returns true if debug mode is enabled via the TE_DEBUG
// environment variable
func DebugEnabled() bool {
	return os.Getenv("TE_DEBUG") != ""
}

// New creates the application logger. Output goes to stderr so command
// output on stdout stays clean for piping. Verbose (or TE_DEBUG) lowers
// the level to debug.
func New(verbose bool) *zap.Logger {
	level := zap.NewAtomicLevel()
	if verbose || DebugEnabled() {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core)
}

// NewNop returns a logger that discards everything, for tests and for
// components that were handed no logger.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
