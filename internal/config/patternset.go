package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PatternSet names which normalization passes cmd/ariscore should run, and
// in what order, loaded from a funxy.yaml-style config file (see
// internal/ext/config.go in the teacher for the YAML-struct convention this
// follows).
type PatternSet struct {
	// Passes lists pass names in the order they should run. Names must
	// match a pkg/normalize.Pass.Name. LoadPatternSet does not check them;
	// cmd/ariscore rejects an unknown name before running any pass.
	Passes []string `yaml:"passes"`
}

// LoadPatternSet reads a PatternSet from a YAML file and rejects one that
// names no passes.
func LoadPatternSet(path string) (PatternSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternSet{}, fmt.Errorf("config: reading pattern set %s: %w", path, err)
	}

	var ps PatternSet
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return PatternSet{}, fmt.Errorf("config: parsing pattern set %s: %w", path, err)
	}
	if len(ps.Passes) == 0 {
		return PatternSet{}, fmt.Errorf("config: pattern set %s names no passes", path)
	}
	return ps, nil
}
