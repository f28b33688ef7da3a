// Package machine is the slot machine controller. It owns the source list,
// the enriched words, the last result and the spin lifecycle, and hands
// them to the picker, the reel and the store.
package machine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/f3rmion/adjespin/internal/dictionary"
	"github.com/f3rmion/adjespin/internal/picker"
	"github.com/f3rmion/adjespin/internal/reel"
	"github.com/f3rmion/adjespin/internal/store"
	"github.com/f3rmion/adjespin/internal/word"
	"go.uber.org/zap"
)

var (
	// ErrNotReady is returned by Spin before enrichment has finished.
	ErrNotReady = errors.New("words are still loading")
	// ErrBusy is returned by Spin while the previous spin is animating.
	ErrBusy = errors.New("a spin is already in progress")
)

// Store persists the last result.
type Store interface {
	Save(ctx context.Context, slot string, w word.Enriched) error
	Load(ctx context.Context, slot string) (word.Enriched, bool, error)
}

// Options tune selection and animation.
type Options struct {
	Policy      picker.Policy
	MaxAttempts int
	Decoys      int
	Duration    time.Duration
	Slot        string
	Rand        *rand.Rand // nil for a random seed
}

// Machine is safe for use from the TUI's goroutines.
type Machine struct {
	source   []string
	enricher *dictionary.Enricher
	store    Store
	opts     Options
	log      *zap.Logger

	mu        sync.Mutex
	words     []word.Enriched
	picker    *picker.Picker
	ready     bool
	current   *reel.Spin
	last      *word.Enriched
	commitErr error
}

// New creates a machine for the given source words.
func New(source []string, enricher *dictionary.Enricher, store Store, opts Options, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Decoys < 0 {
		opts.Decoys = 0
	}
	if opts.Duration <= 0 {
		opts.Duration = reel.DefaultDuration
	}
	if opts.Policy == "" {
		opts.Policy = picker.PolicyDefinition
	}
	return &Machine{
		source:   source,
		enricher: enricher,
		store:    store,
		opts:     opts,
		log:      logger.Named("machine"),
	}
}

// Source returns the words the machine was built with.
func (m *Machine) Source() []string {
	return m.source
}

// Load enriches every source word and makes the machine ready to spin.
func (m *Machine) Load(ctx context.Context, progress dictionary.ProgressFunc) error {
	if len(m.source) == 0 {
		return word.ErrNoWords
	}

	start := time.Now()
	enriched := m.enricher.EnrichAll(ctx, m.source, progress)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("loading words: %w", err)
	}

	m.SetWords(enriched)
	m.log.Info("ready",
		zap.Int("words", len(enriched)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// SetWords installs an already enriched list and marks the machine ready.
func (m *Machine) SetWords(words []word.Enriched) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words = words
	m.picker = picker.New(words, m.opts.Policy, m.opts.MaxAttempts, m.opts.Rand)
	m.ready = len(words) > 0
}

// Ready reports whether spins are allowed.
func (m *Machine) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

// Words returns the enriched list.
func (m *Machine) Words() []word.Enriched {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.words
}

// Last returns the most recently committed or restored word.
func (m *Machine) Last() (word.Enriched, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return word.Enriched{}, false
	}
	return *m.last, true
}

// Restore loads the persisted last word, if any.
func (m *Machine) Restore(ctx context.Context) (word.Enriched, bool, error) {
	w, ok, err := m.store.Load(ctx, m.slot())
	if err != nil {
		return word.Enriched{}, false, fmt.Errorf("restoring last word: %w", err)
	}
	if !ok {
		return word.Enriched{}, false, nil
	}

	m.mu.Lock()
	m.last = &w
	m.mu.Unlock()

	m.log.Debug("restored", zap.String("word", w.Word))
	return w, true, nil
}

// Spin picks the final word and returns the reel that animates it. When
// the reel's transition ends, its one-shot completion commits the word.
func (m *Machine) Spin(ctx context.Context) (*reel.Spin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return nil, ErrNotReady
	}
	if m.current != nil && !m.current.Completed() {
		return nil, ErrBusy
	}

	prev := ""
	if m.last != nil {
		prev = m.last.Word
	}
	final, err := m.picker.Pick(prev)
	if err != nil {
		return nil, fmt.Errorf("picking word: %w", err)
	}

	s := reel.New(final, m.picker.Decoys(m.opts.Decoys), m.opts.Duration)
	s.OnComplete(func(w word.Enriched) {
		if err := m.Commit(ctx, w); err != nil {
			m.log.Error("commit failed", zap.String("word", w.Word), zap.Error(err))
		}
	})
	m.current = s

	m.log.Debug("spin", zap.String("final", final.Word), zap.Int("items", len(s.Items())))
	return s, nil
}

// Commit records w as the last result and persists it.
func (m *Machine) Commit(ctx context.Context, w word.Enriched) error {
	m.mu.Lock()
	m.last = &w
	m.mu.Unlock()

	err := m.store.Save(ctx, m.slot(), w)

	m.mu.Lock()
	m.commitErr = err
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("persisting %q: %w", w.Word, err)
	}
	m.log.Info("committed", zap.String("word", w.Word), zap.Bool("definition", w.HasDefinition()))
	return nil
}

// CommitErr returns the error of the most recent commit, if any.
func (m *Machine) CommitErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commitErr
}

func (m *Machine) slot() string {
	if m.opts.Slot == "" {
		return store.DefaultSlot
	}
	return m.opts.Slot
}
