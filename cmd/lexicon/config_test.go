package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

func writeConfig(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// TestLoadLexiconConfig verifies every section of a complete lexicon.toml.
func TestLoadLexiconConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `# test config
[target]
default = "aarch64-apple-ios"
data_model = "ILP32"

[check]
targets = ["x86_64-unknown-linux-gnu", "wasm32-unknown-unknown"]
jobs = 3
`)
	cfg, err := loadLexiconConfig(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.False(t, cfg.Target.Default.IsHost())
	assert.True(t, cfg.Target.Default.Triple() == triple.MustParse("aarch64-apple-ios"),
		"default target = %s", cfg.Target.Default.Triple())

	m, ok := cfg.Target.dataModel()
	require.True(t, ok)
	assert.Equal(t, datamodel.ILP32, m)

	assert.Equal(t, []string{"x86_64-unknown-linux-gnu", "wasm32-unknown-unknown"}, cfg.Check.Targets)
	assert.Equal(t, 3, cfg.Check.Jobs)
}

// TestLoadLexiconConfig_DefaultsToHost verifies an absent [target].default.
func TestLoadLexiconConfig_DefaultsToHost(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[check]\njobs = 1\n")
	cfg, err := loadLexiconConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Target.Default.IsHost())
	assert.True(t, cfg.Target.Default.Triple() == triple.Host())
	_, ok := cfg.Target.dataModel()
	assert.False(t, ok)
}

func TestLoadLexiconConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "[target\n", "failed to parse TOML"},
		{"bad triple", "[target]\ndefault = \"x86_64-bogus-linux\"\n", "failed to parse TOML"},
		{"bad data model", "[target]\ndata_model = \"lp128\"\n", "unknown C data model"},
		{"negative jobs", "[check]\njobs = -1\n", "must not be negative"},
		{"empty target", "[check]\ntargets = [\"\"]\n", "targets[0] is empty"},
		{"unknown key", "[check]\nworkers = 2\n", "unknown keys: check.workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.data)
			_, err := loadLexiconConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFindLexiconToml_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := findLexiconToml(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFindLexiconToml_Missing(t *testing.T) {
	got, ok, err := findLexiconToml(t.TempDir())
	require.NoError(t, err)
	if ok {
		t.Skipf("a %s exists above the temp dir at %s", configFileName, got)
	}
}
