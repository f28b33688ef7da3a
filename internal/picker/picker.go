// Package picker chooses the word a spin lands on.
package picker

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/f3rmion/adjespin/internal/word"
)

// DefaultMaxAttempts bounds the rerolls of every policy.
const DefaultMaxAttempts = 10

// ErrEmpty is returned when there is nothing to pick from.
var ErrEmpty = errors.New("no words to pick from")

// Policy decides which random candidates get rerolled.
type Policy string

const (
	// PolicyDefinition rerolls words whose lookup found no definition.
	PolicyDefinition Policy = "definition"
	// PolicyNoRepeat rerolls the word returned by the previous pick.
	PolicyNoRepeat Policy = "no-repeat"
	// PolicyBoth applies both rejections.
	PolicyBoth Policy = "both"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyDefinition, PolicyNoRepeat, PolicyBoth:
		return p, nil
	case "":
		return PolicyDefinition, nil
	default:
		return "", fmt.Errorf("unknown picker policy %q", s)
	}
}

// Picker draws uniformly random words from a fixed list.
type Picker struct {
	words       []word.Enriched
	policy      Policy
	maxAttempts int
	rng         *rand.Rand
}

// New creates a picker. A nil rng uses a randomly seeded source.
func New(words []word.Enriched, policy Policy, maxAttempts int, rng *rand.Rand) *Picker {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if policy == "" {
		policy = PolicyDefinition
	}
	return &Picker{
		words:       words,
		policy:      policy,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
}

// Len returns the number of candidates.
func (p *Picker) Len() int {
	return len(p.words)
}

// Random returns any word, ignoring the policy.
func (p *Picker) Random() (word.Enriched, error) {
	if len(p.words) == 0 {
		return word.Enriched{}, ErrEmpty
	}
	return p.words[p.rng.IntN(len(p.words))], nil
}

// Pick returns a word according to the policy. prev is the word the last
// spin landed on, or "" if there was none.
func (p *Picker) Pick(prev string) (word.Enriched, error) {
	if len(p.words) == 0 {
		return word.Enriched{}, ErrEmpty
	}

	for range p.maxAttempts {
		w := p.words[p.rng.IntN(len(p.words))]
		if p.accept(w, prev) {
			return w, nil
		}
	}
	return p.fallback(prev), nil
}

func (p *Picker) accept(w word.Enriched, prev string) bool {
	checkDef := p.policy == PolicyDefinition || p.policy == PolicyBoth
	checkRepeat := p.policy == PolicyNoRepeat || p.policy == PolicyBoth

	if checkDef && !w.HasDefinition() {
		return false
	}
	if checkRepeat && prev != "" && w.Word == prev && len(p.words) > 1 {
		return false
	}
	return true
}

// fallback runs after maxAttempts rejected draws. It scans from a random
// offset for an acceptable word, so a word with a definition is returned
// whenever the list has one. If nothing is acceptable it relaxes to any
// word other than prev, and finally to any word at all.
func (p *Picker) fallback(prev string) word.Enriched {
	n := len(p.words)
	start := p.rng.IntN(n)
	for i := range n {
		if w := p.words[(start+i)%n]; p.accept(w, prev) {
			return w
		}
	}
	if prev != "" && p.policy != PolicyDefinition {
		for i := range n {
			if w := p.words[(start+i)%n]; w.Word != prev {
				return w
			}
		}
	}
	return p.words[start]
}

// Decoys returns n random words to scroll past before the final one.
func (p *Picker) Decoys(n int) []string {
	if len(p.words) == 0 || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = p.words[p.rng.IntN(len(p.words))].Word
	}
	return out
}
