// Package word holds the word source and the enriched word record.
package word

import "strings"

// Enriched is a source word combined with the dictionary data fetched for it.
// Word always matches an entry of the source list; the other fields are
// empty when the lookup failed or returned nothing usable.
type Enriched struct {
	Word          string `json:"word" yaml:"word"`
	Definition    string `json:"definition" yaml:"definition"`
	Example       string `json:"example" yaml:"example"`
	Pronunciation string `json:"pronunciation" yaml:"pronunciation"` // lowercased phonetic spelling
}

// Empty returns the record used when a lookup produced no data.
func Empty(w string) Enriched {
	return Enriched{Word: w}
}

// HasDefinition reports whether the lookup found a definition.
func (e Enriched) HasDefinition() bool {
	return strings.TrimSpace(e.Definition) != ""
}

// Title is the heading line of the definition panel, e.g. "happy (/ˈhæpi/)".
func (e Enriched) Title() string {
	if e.Pronunciation == "" {
		return e.Word
	}
	return e.Word + " (" + e.Pronunciation + ")"
}

// Words extracts the bare words from a list of records, keeping order.
func Words(list []Enriched) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Word
	}
	return out
}
