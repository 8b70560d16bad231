package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, "border: unicode\ndelimiter: \",\"\n")
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "unicode", cfg.Border)
	assert.Equal(t, ",", cfg.GetDelimiter())
}

func TestLoadFromPathMissing(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadFromPathInvalid(t *testing.T) {
	path := writeConfig(t, "border: [unterminated\n")
	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoadUsesPathFunc(t *testing.T) {
	path := writeConfig(t, "border: ascii\n")
	orig := SetConfigPathFunc(func() (string, error) { return path, nil })
	t.Cleanup(func() { SetConfigPathFunc(orig) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ascii", cfg.Border)
}

func TestLoadNoHome(t *testing.T) {
	orig := SetConfigPathFunc(func() (string, error) { return "", os.ErrNotExist })
	t.Cleanup(func() { SetConfigPathFunc(orig) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestBorderNamePrecedence(t *testing.T) {
	t.Setenv(EnvBorder, "")
	assert.Equal(t, "none", (&Config{}).BorderName())
	assert.Equal(t, "ascii", (&Config{Border: "ascii"}).BorderName())

	t.Setenv(EnvBorder, "unicode")
	assert.Equal(t, "unicode", (&Config{Border: "ascii"}).BorderName())
}

func TestGetDelimiterDefault(t *testing.T) {
	assert.Equal(t, "\t", (&Config{}).GetDelimiter())
}
