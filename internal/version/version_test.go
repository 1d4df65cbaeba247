package version

import (
	"testing"

	"github.com/fatih/color"
)

func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	// Simulates -ldflags "-X .../version.Version=1.2.3".
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("overrides not applied: %q %q %q", Version, GitCommit, BuildDate)
	}
}

func TestPrettyWithoutColorIsIdentity(t *testing.T) {
	withoutColor(t)
	for _, v := range []string{
		"0.1.0",
		"1.2.3",
		"0.1.0-dev",
		"1.0.0-beta.1",
		"1.2.3-rc.1+build.123",
		"dev",
		"1.2",
	} {
		if got := Pretty(v); got != v {
			t.Errorf("Pretty(%q) = %q", v, got)
		}
	}
}

func TestPrettyColorsComponents(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	got := Pretty("1.2.3-dev")
	want := versionMajorColor.Sprint("1") + "." + versionMinorColor.Sprint("2") + "." + versionPatchColor.Sprint("3") + "-dev"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
	if got == "1.2.3-dev" {
		t.Fatalf("expected escape sequences in %q", got)
	}
}

func BenchmarkPretty(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Pretty("1.2.3-rc.1+build.123")
	}
}
