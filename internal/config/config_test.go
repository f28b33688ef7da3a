package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.Set("config_dir", dir)
	v.SetEnvPrefix("ADJESPIN_TEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(newViper(dir))
	require.NoError(t, err)

	want := Default(dir)
	assert.Equal(t, want, cfg)
	assert.Equal(t, filepath.Join(dir, StateFile), cfg.StatePath())
	assert.Equal(t, filepath.Join(dir, LogFile), cfg.LogPath())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `
words_file: /tmp/words.yaml
lookup:
  timeout: 3s
  concurrency: 4
picker:
  policy: no-repeat
reel:
  decoys: 20
  duration: 1500ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(newViper(dir))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.yaml", cfg.WordsFile)
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 4, cfg.Lookup.Concurrency)
	assert.Equal(t, "no-repeat", cfg.Picker.Policy)
	assert.Equal(t, 20, cfg.Reel.Decoys)
	assert.Equal(t, 1500*time.Millisecond, cfg.Reel.Duration)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.Picker.MaxAttempts)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADJESPIN_TEST_PICKER_POLICY", "both")
	t.Setenv("ADJESPIN_TEST_LOOKUP_CONCURRENCY", "2")

	cfg, err := Load(newViper(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "both", cfg.Picker.Policy)
	assert.Equal(t, 2, cfg.Lookup.Concurrency)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	content := "picker:\n  policy: sometimes\nlookup:\n  concurrency: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	_, err := Load(newViper(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
	assert.Contains(t, err.Error(), "concurrency")
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	cfg.WordsFile = filepath.Join(dir, "words.yaml")
	cfg.Reel.Duration = 750 * time.Millisecond

	require.NoError(t, Save(filepath.Join(dir, FileName), cfg))

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "duration: 750ms")

	got, err := Load(newViper(dir))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
