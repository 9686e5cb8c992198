package xslog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/swatch/internal/version"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "Warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "trace", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvKey, "bogus")
	if got := FromEnv(); got != Default {
		t.Errorf("FromEnv() = %q, want %q", got, Default)
	}
	t.Setenv(EnvKey, "debug")
	if got := FromEnv(); got != LevelDebug {
		t.Errorf("FromEnv() = %q, want %q", got, LevelDebug)
	}

	t.Setenv(FormatEnvKey, "JSON")
	if got := FormatFromEnv(); got != FormatJSON {
		t.Errorf("FormatFromEnv() = %q, want %q", got, FormatJSON)
	}
	t.Setenv(FormatEnvKey, "")
	if got := FormatFromEnv(); got != FormatText {
		t.Errorf("FormatFromEnv() = %q, want %q", got, FormatText)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn, FormatJSON)
	logger.Info("dropped")
	logger.Warn("kept", Theme("apple"), Count(3), ErrorGroup(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record logged at warn level: %s", out)
	}
	for _, want := range []string{`"msg":"kept"`, `"theme":"apple"`, `"count":3`, `"message":"boom"`, `"type":"*errors.errorString"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), NewLogger(&buf, LevelDebug, FormatText))
	ctx = WithAttrs(ctx, Path("/tmp/x.css"))
	FromContext(ctx).Debug("wrote")

	if got := buf.String(); !strings.Contains(got, "path=/tmp/x.css") {
		t.Errorf("output %q missing path attr", got)
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext(empty) is not slog.Default()")
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	got := Version()
	if got.Key != "version" {
		t.Errorf("Key = %q, want %q", got.Key, "version")
	}
	if diff := cmp.Diff(version.Get(), got.Value.String()); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
}
