package logx

import (
	"io"
	"log/slog"
	"strings"
)

func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := new(slog.LevelVar)
	switch strings.ToLower(levelStr) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}

	var h slog.Handler
	if strings.ToLower(formatStr) == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(h)
}
