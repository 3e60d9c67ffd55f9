package observability

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// NewSlogHandler returns a [slog.Handler] that writes records to logger's
// core under logger's name. It lets the turnip library, which logs through
// slog, share the command's zap configuration.
func NewSlogHandler(logger *zap.Logger) *zapslog.Handler {
	var opts []zapslog.HandlerOption
	if name := logger.Name(); name != "" {
		opts = append(opts, zapslog.WithName(name))
	}
	return zapslog.NewHandler(logger.Core(), opts...)
}

// NewSlogLogger returns a slog logger writing to logger under the given name.
func NewSlogLogger(logger *zap.Logger, name string) *slog.Logger {
	return slog.New(NewSlogHandler(logger.Named(name)))
}
