package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestFull(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = ""
	BuildDate = ""
	if got := Full(); got != "cslex 1.2.3" {
		t.Errorf("Full() = %q, want %q", got, "cslex 1.2.3")
	}

	GitCommit = "abc123"
	BuildDate = "2026-01-15T10:30:00Z"
	got := Full()
	for _, part := range []string{"1.2.3", "(abc123)", "built 2026-01-15T10:30:00Z"} {
		if !strings.Contains(got, part) {
			t.Errorf("Full() = %q, missing %q", got, part)
		}
	}
}
