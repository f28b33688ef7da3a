package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const happyJSON = `[{"word":"happy","phonetics":[{"text":"/ˈhæpi/"}],
"meanings":[{"partOfSpeech":"adjective","definitions":[
{"definition":"Feeling joy.","example":"a happy child"}]}]}]`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func dictionaryServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/happy" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, happyJSON)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("ADJESPIN_LOOKUP_BASE_URL", srv.URL)
	return srv
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created words.yaml")
	assert.FileExists(t, filepath.Join(dir, "words.yaml"))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	_, err = execute(t, "init", "--config", dir)
	require.Error(t, err)

	_, err = execute(t, "init", "--config", dir, "--force")
	require.NoError(t, err)

	out, err = execute(t, "words", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "happy\n")
}

func TestLookup(t *testing.T) {
	dictionaryServer(t)
	dir := t.TempDir()

	out, err := execute(t, "lookup", "happy", "zzzz", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "happy (/ˈhæpi/)\nFeeling joy.\n\"a happy child\"")
	assert.Contains(t, out, "zzzz: word not found")

	_, err = execute(t, "lookup", "zzzz", "--config", dir)
	require.Error(t, err)
}

func TestSpinThenLast(t *testing.T) {
	dictionaryServer(t)
	dir := t.TempDir()
	words := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(words, []byte(`{"adjectives":[{"word":"happy"}]}`), 0644))

	out, err := execute(t, "last", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No saved word yet")

	out, err = execute(t, "spin", "--config", dir, "--words", words)
	require.NoError(t, err)
	assert.Contains(t, out, "happy (/ˈhæpi/)")

	out, err = execute(t, "last", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Feeling joy.")
}
