package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/f3rmion/adjespin/internal/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newServer serves canned bodies keyed by request path. Unknown paths 404.
func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"title":"No Definitions Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_FirstDefinitionAndPhonetic(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/bright": `[{
			"word": "bright",
			"phonetics": [{"audio": "https://example.com/bright.mp3"}, {"text": "/BRAɪT/"}, {"text": "/other/"}],
			"meanings": [
				{"partOfSpeech": "noun", "definitions": []},
				{"partOfSpeech": "adjective", "definitions": [
					{"definition": ""},
					{"definition": "Emitting much light.", "example": "a bright star"},
					{"definition": "Intelligent."}
				]}
			]
		}]`,
	})

	c := NewClient(zaptest.NewLogger(t), WithBaseURL(srv.URL))
	got, err := c.Fetch(context.Background(), "bright")
	require.NoError(t, err)
	assert.Equal(t, word.Enriched{
		Word:          "bright",
		Definition:    "Emitting much light.",
		Example:       "a bright star",
		Pronunciation: "/braɪt/",
	}, got)
}

func TestFetch_ScansLaterEntries(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/fair": `[
			{"word": "fair", "phonetics": [], "meanings": [{"definitions": []}]},
			{"word": "fair", "phonetics": [{"text": "/fɛə/"}], "meanings": [{"definitions": [{"definition": "Just."}]}]}
		]`,
	})

	c := NewClient(zaptest.NewLogger(t), WithBaseURL(srv.URL))
	got, err := c.Fetch(context.Background(), "fair")
	require.NoError(t, err)
	assert.Equal(t, "Just.", got.Definition)
	assert.Empty(t, got.Example)
	assert.Equal(t, "/fɛə/", got.Pronunciation)
}

func TestLookup_SoftFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		case "/garbled":
			w.Write([]byte(`{"not":"an array"`))
		case "/nodef":
			w.Write([]byte(`[{"word":"nodef","phonetics":[{"text":"/x/"}],"meanings":[{"definitions":[{"example":"only an example"}]}]}]`))
		case "/none":
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := NewClient(zaptest.NewLogger(t), WithBaseURL(srv.URL))
	for _, w := range []string{"missing", "broken", "garbled", "nodef", "none"} {
		t.Run(w, func(t *testing.T) {
			got := c.Lookup(context.Background(), w)
			assert.Equal(t, word.Empty(w), got)
		})
	}
}

func TestFetch_Errors(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/nodef": `[{"word":"nodef","meanings":[]}]`,
	})
	c := NewClient(zaptest.NewLogger(t), WithBaseURL(srv.URL))

	_, err := c.Fetch(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.Fetch(context.Background(), "nodef")
	require.ErrorIs(t, err, ErrNoDefinition)
}

func TestLookup_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(nil, WithBaseURL(url), WithTimeout(time.Second))
	assert.Equal(t, word.Empty("happy"), c.Lookup(context.Background(), "happy"))
}

func TestFetch_EscapesWord(t *testing.T) {
	paths := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(nil, WithBaseURL(srv.URL+"/"))
	c.Lookup(context.Background(), "ice cream")
	assert.Equal(t, "/ice%20cream", <-paths)
}
