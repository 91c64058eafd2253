package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger installs a tint handler on stdout as the default slog logger.
// When logFile is set, records are also written as JSON to a rotated file.
func InitLogger(level, logFile string) {
	lvl := ParseLevel(level)

	var file io.Writer
	if logFile != "" {
		file = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	slog.SetDefault(slog.New(newRootHandler(os.Stdout, file, lvl)))
}

func newRootHandler(console, file io.Writer, level slog.Level) slog.Handler {
	handler := NewHandler(console, level, false)
	if file == nil {
		return handler
	}
	return slogmulti.Fanout(handler, NewJSONHandler(file, level))
}

func NewHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    noColor,
	})
}

func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
