// Package logger builds the zap logger used for rep's diagnostic side channel.
// Diagnostics are written at Info level and only appear in verbose mode;
// warnings are always written.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing human-readable lines to w.
func New(w io.Writer, verbose bool) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.NameKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.WarnLevel
	if verbose {
		level = zap.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
