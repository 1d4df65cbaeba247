package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
	"github.com/bytecodealliance/target-lexicon/internal/logging"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

const configFileName = "lexicon.toml"

type lexiconConfig struct {
	Target targetConfig `toml:"target"`
	Check  checkConfig  `toml:"check"`

	// Path is where the config was loaded from; empty for defaults.
	Path string `toml:"-"`
}

type targetConfig struct {
	Default   triple.DefaultToHost `toml:"default"`
	DataModel string               `toml:"data_model"`
}

type checkConfig struct {
	Targets []string `toml:"targets"`
	Jobs    int      `toml:"jobs"`
}

// dataModel returns the configured C data model override, if any.
func (c targetConfig) dataModel() (datamodel.CDataModel, bool) {
	if c.DataModel == "" {
		return 0, false
	}
	return datamodel.ParseCDataModel(c.DataModel)
}

func findLexiconToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadLexiconConfig(path string) (lexiconConfig, error) {
	var cfg lexiconConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return lexiconConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return lexiconConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("target", "data_model") {
		if _, ok := cfg.Target.dataModel(); !ok {
			return lexiconConfig{}, fmt.Errorf("%s: [target].data_model: unknown C data model %q", path, cfg.Target.DataModel)
		}
	}
	if meta.IsDefined("check", "jobs") && cfg.Check.Jobs < 0 {
		return lexiconConfig{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	for i, target := range cfg.Check.Targets {
		if strings.TrimSpace(target) == "" {
			return lexiconConfig{}, fmt.Errorf("%s: [check].targets[%d] is empty", path, i)
		}
	}
	cfg.Path = path
	return cfg, nil
}

// resolveConfig loads the file named by --config, or the nearest lexicon.toml
// above the working directory. A missing file yields the defaults.
func resolveConfig(cmd *cobra.Command) (lexiconConfig, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return lexiconConfig{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	log := logging.Logger()
	if explicit != "" {
		log.Debug("loading config", zap.String("path", explicit))
		return loadLexiconConfig(explicit)
	}
	path, ok, err := findLexiconToml(".")
	if err != nil {
		return lexiconConfig{}, err
	}
	if !ok {
		log.Debug("no lexicon.toml found, using defaults")
		return lexiconConfig{}, nil
	}
	log.Debug("loading config", zap.String("path", path))
	return loadLexiconConfig(path)
}
