// internal/logging/logging.go
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger writing to w (stderr in the binaries, a
// buffer in tests). quiet raises the floor to warnings so pipelines stay
// silent unless something needs attention.
func New(w io.Writer, quiet bool) *zap.Logger {
	lvl := zapcore.InfoLevel
	if quiet {
		lvl = zapcore.WarnLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core)
}
