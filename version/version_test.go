package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %q", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-10-15"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	if got := GetFullVersion(); got != "1.2.0 (abc123, 2026-10-15)" {
		t.Errorf("GetFullVersion failed: got %q", got)
	}
	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("GetVersion failed: expected 1.2.0, got %q", got)
	}
}
