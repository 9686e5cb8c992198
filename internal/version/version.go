package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is set via ldflags at build time.
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// IsDevelopment reports whether v was built from a working tree rather than
// a tagged release.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// Describe renders v for `swatch version`.
func Describe(v string) string {
	if IsDevelopment(v) {
		return v + " (development build)"
	}
	return v
}
