package word

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoWords is returned when a word list contains no usable entries.
var ErrNoWords = errors.New("word list is empty")

//go:embed data/words.json
var defaultList []byte

// entry is a single element of the "adjectives" list.
type entry struct {
	Word string `json:"word" yaml:"word"`
}

// document is the on-disk shape of a word list file.
type document struct {
	Adjectives []entry `json:"adjectives" yaml:"adjectives"`
}

// Default returns the built-in word list.
func Default() []string {
	words, err := parseJSON(defaultList)
	if err != nil {
		// The embedded list is part of the binary.
		panic(fmt.Sprintf("parsing embedded word list: %v", err))
	}
	return words
}

// DefaultJSON returns the raw built-in word list file.
func DefaultJSON() []byte {
	out := make([]byte, len(defaultList))
	copy(out, defaultList)
	return out
}

// LoadFile reads a word list from path. The format is chosen by extension:
// .yaml/.yml are parsed as YAML, anything else as JSON.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		words, err = parseYAML(data)
	default:
		words, err = parseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing word list %s: %w", path, err)
	}
	return words, nil
}

// Load returns the list at path, or the built-in list when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// parseJSON accepts {"adjectives":[{"word":...}]} or a plain array of strings.
func parseJSON(data []byte) ([]string, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err == nil {
		return normalize(entriesToWords(doc.Adjectives))
	}

	var plain []string
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("unrecognized JSON word list: %w", err)
	}
	return normalize(plain)
}

// parseYAML accepts the same two shapes as parseJSON.
func parseYAML(data []byte) ([]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return normalize(entriesToWords(doc.Adjectives))
	}

	var plain []string
	if err := yaml.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("unrecognized YAML word list: %w", err)
	}
	return normalize(plain)
}

func entriesToWords(entries []entry) []string {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

// normalize trims entries and drops blanks, preserving order.
func normalize(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrNoWords
	}
	return out, nil
}

// MarshalYAML renders words in the YAML word list format.
func MarshalYAML(words []string) ([]byte, error) {
	doc := document{Adjectives: make([]entry, len(words))}
	for i, w := range words {
		doc.Adjectives[i] = entry{Word: w}
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling word list: %w", err)
	}
	return out, nil
}
