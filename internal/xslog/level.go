package xslog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Level string

var _ fmt.Stringer = (*Level)(nil)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const EnvKey = "LOG_LEVEL"

const Default = LevelInfo

func Parse(s string) (Level, error) {
	switch Level(strings.ToLower(s)) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn:
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	default:
		return "", fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
}

func FromEnv() Level {
	s := os.Getenv(EnvKey)
	if s == "" {
		return Default
	}
	level, err := Parse(s)
	if err != nil {
		return Default
	}
	return level
}

func (l Level) ToSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) String() string {
	return string(l)
}

// HandlerFormat selects the slog handler. Terminals get text, pipelines json.
type HandlerFormat string

const (
	FormatText HandlerFormat = "text"
	FormatJSON HandlerFormat = "json"
)

const FormatEnvKey = "LOG_FORMAT"

// FormatFromEnv reads LOG_FORMAT, falling back to text for anything but json.
func FormatFromEnv() HandlerFormat {
	if HandlerFormat(strings.ToLower(os.Getenv(FormatEnvKey))) == FormatJSON {
		return FormatJSON
	}
	return FormatText
}

func NewLogger(w io.Writer, level Level, format HandlerFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.ToSlog()}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func NewLoggerFromEnv(w io.Writer) *slog.Logger {
	return NewLogger(w, FromEnv(), FormatFromEnv())
}
