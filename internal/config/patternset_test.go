package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arisgo/ariscore/internal/config"
)

func TestLoadPatternSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passes:\n  - demorgans\n  - absorption\n"), 0o644))

	ps, err := config.LoadPatternSet(path)
	require.NoError(t, err)
	require.Equal(t, []string{"demorgans", "absorption"}, ps.Passes)
}

func TestLoadPatternSetRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passes: []\n"), 0o644))

	_, err := config.LoadPatternSet(path)
	require.Error(t, err)
}

func TestLoadPatternSetMissingFile(t *testing.T) {
	_, err := config.LoadPatternSet(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
