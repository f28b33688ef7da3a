package word

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "happy (/ˈhæpi/)", Enriched{Word: "happy", Pronunciation: "/ˈhæpi/"}.Title())
	assert.Equal(t, "blue", Empty("blue").Title())
}

func TestHasDefinition(t *testing.T) {
	assert.True(t, Enriched{Word: "happy", Definition: "feeling joy"}.HasDefinition())
	assert.False(t, Empty("blue").HasDefinition())
	assert.False(t, Enriched{Word: "blue", Definition: "  "}.HasDefinition())
}

func TestDefault(t *testing.T) {
	words := Default()
	require.NotEmpty(t, words)
	assert.Equal(t, "happy", words[0])
	for _, w := range words {
		assert.NotEmpty(t, w)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "json adjectives",
			file:    "words.json",
			content: `{"adjectives":[{"word":"happy"},{"word":" blue "},{"word":""}]}`,
			want:    []string{"happy", "blue"},
		},
		{
			name:    "json array",
			file:    "words.json",
			content: `["happy","blue"]`,
			want:    []string{"happy", "blue"},
		},
		{
			name:    "yaml adjectives",
			file:    "words.yaml",
			content: "adjectives:\n  - word: happy\n  - word: blue\n",
			want:    []string{"happy", "blue"},
		},
		{
			name:    "yaml sequence",
			file:    "words.yml",
			content: "- happy\n- blue\n",
			want:    []string{"happy", "blue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadFile(writeFile(t, "empty.json", `{"adjectives":[]}`))
	require.ErrorIs(t, err, ErrNoWords)

	_, err = LoadFile(writeFile(t, "bad.json", `{not json`))
	require.Error(t, err)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	words, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), words)
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	out, err := MarshalYAML([]string{"happy", "blue"})
	require.NoError(t, err)

	got, err := LoadFile(writeFile(t, "words.yaml", string(out)))
	require.NoError(t, err)
	assert.Equal(t, []string{"happy", "blue"}, got)
}
