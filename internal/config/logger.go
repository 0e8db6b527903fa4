package config

import (
	"io"
	"log/slog"
	"os"
)

func InitLogger(level slog.Level) *slog.Logger {
	return InitLoggerTo(os.Stdout, level)
}

// InitLoggerTo permite mandar o log para arquivo (o TUI ocupa o stdout).
func InitLoggerTo(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	l := slog.New(h)
	slog.SetDefault(l) // permite usar slog.Info/Error globalmente
	return l
}
