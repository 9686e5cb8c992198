package xslog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/garrettladley/swatch/internal/version"
)

// ErrorGroup records the message and concrete type of err.
func ErrorGroup(err error) slog.Attr {
	const (
		groupError = "error"
		keyMessage = "message"
		keyType    = "type"
	)
	if err == nil {
		return slog.Group(groupError)
	}
	return slog.Group(groupError,
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	)
}

func Theme(name string) slog.Attr {
	const themeKey = "theme"
	return slog.String(themeKey, name)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Color(c fmt.Stringer) slog.Attr {
	const colorKey = "color"
	return slog.String(colorKey, c.String())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Format(format string) slog.Attr {
	const formatKey = "format"
	return slog.String(formatKey, format)
}

func Bytes(n int) slog.Attr {
	const bytesKey = "bytes"
	return slog.Int(bytesKey, n)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}
