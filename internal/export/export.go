// Package export writes rendered themes to a filesystem.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/swatch/internal/theme"
	"github.com/garrettladley/swatch/internal/validator"
	"github.com/garrettladley/swatch/internal/xslog"
)

type Format string

const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
)

const maxConcurrency = 4

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSS:
		return FormatCSS, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (valid: css, json)", s)
	}
}

// Render encodes t in the given format.
func Render(t theme.Theme, format Format) ([]byte, error) {
	switch format {
	case FormatCSS:
		return []byte(theme.Stylesheet(t)), nil
	case FormatJSON:
		return theme.MarshalIndent(t)
	default:
		return nil, fmt.Errorf("invalid format: %q (valid: css, json)", format)
	}
}

type Writer struct {
	fs  afero.Afero
	dir string
}

func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: afero.Afero{Fs: fs}, dir: dir}
}

// Write renders t and stores it as <dir>/<name>.<format>. It returns the
// path written.
func (w *Writer) Write(ctx context.Context, name string, t theme.Theme, format Format) (string, error) {
	if err := validator.Validate(t); err != nil {
		return "", fmt.Errorf("theme %s: %w", name, err)
	}
	data, err := Render(t, format)
	if err != nil {
		return "", err
	}
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, name+"."+string(format))
	if err := w.fs.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	xslog.FromContext(ctx).DebugContext(ctx, "wrote theme",
		xslog.Theme(name),
		xslog.Path(path),
		xslog.Bytes(len(data)))
	return path, nil
}

// WriteAll looks up and writes each named theme concurrently. The first
// failure cancels the remaining writes.
func (w *Writer) WriteAll(ctx context.Context, names []string, format Format) ([]string, error) {
	start := time.Now()
	ctx = xslog.WithAttrs(ctx, xslog.Format(string(format)))
	logger := xslog.FromContext(ctx)
	written := make([]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("context cancelled: %w", err)
			}
			t, err := theme.Lookup(name)
			if err != nil {
				return err
			}
			path, err := w.Write(gctx, t.Name, t, format)
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", name, err)
			}
			written[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "export failed", xslog.ErrorGroup(err))
		return nil, err
	}

	logger.InfoContext(ctx, "exported themes",
		xslog.Count(len(written)),
		xslog.Path(w.dir),
		xslog.Duration(time.Since(start)))
	return written, nil
}
