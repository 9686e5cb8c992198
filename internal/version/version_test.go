package version

import "testing"

func TestIsDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{name: "tagged release", version: "v1.2.0", want: false},
		{name: "tagged release without prefix", version: "1.2.0", want: false},
		{name: "devel", version: "devel", want: true},
		{name: "unknown", version: "unknown", want: true},
		{name: "empty", version: "", want: true},
		{name: "dirty tree", version: "v1.2.0-dirty", want: true},
		{name: "pseudo version", version: "v0.0.0-0.20251101120000-abcdef123456", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDevelopment(tt.version); got != tt.want {
				t.Errorf("IsDevelopment(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    string
	}{
		{version: "v1.0.0", want: "v1.0.0"},
		{version: "devel", want: "devel (development build)"},
	}
	for _, tt := range tests {
		if got := Describe(tt.version); got != tt.want {
			t.Errorf("Describe(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}
