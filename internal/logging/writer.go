package logging

import (
	"log/slog"
	"strings"
)

type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	switch {
	case strings.HasPrefix(msg, "ERROR "):
		w.logger.Error(strings.TrimPrefix(msg, "ERROR "))
	case strings.HasPrefix(msg, "WARN "):
		w.logger.Warn(strings.TrimPrefix(msg, "WARN "))
	case strings.HasPrefix(msg, "INFO "):
		w.logger.Info(strings.TrimPrefix(msg, "INFO "))
	default:
		w.logger.Debug(msg)
	}
	return len(p), nil
}
