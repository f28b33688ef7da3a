// Package reel models the slot reel: a run of decoy words ending on the
// final word, scrolled along an easing curve until the final word sits in
// the centre of the window.
package reel

import (
	"math"
	"sync"
	"time"

	"github.com/f3rmion/adjespin/internal/word"
)

const (
	// DefaultDecoys is how many words scroll past before the final one.
	DefaultDecoys = 10
	// DefaultDuration is the length of the scroll transition.
	DefaultDuration = time.Second
)

// Spin is one reel run. It is not safe for concurrent use except for End,
// which may be raised from any goroutine.
type Spin struct {
	items    []string
	final    word.Enriched
	duration time.Duration
	curve    Bezier
	elapsed  time.Duration

	mu         sync.Mutex
	onComplete func(word.Enriched)
	completed  bool
}

// New builds a spin that scrolls past decoys and lands on final.
func New(final word.Enriched, decoys []string, duration time.Duration) *Spin {
	if duration <= 0 {
		duration = DefaultDuration
	}
	items := make([]string, 0, len(decoys)+1)
	items = append(items, decoys...)
	items = append(items, final.Word)
	return &Spin{
		items:    items,
		final:    final,
		duration: duration,
		curve:    EaseOut,
	}
}

// Items returns the full reel, decoys first and the final word last.
func (s *Spin) Items() []string {
	return s.items
}

// Final returns the word the reel lands on.
func (s *Spin) Final() word.Enriched {
	return s.final
}

// Duration returns the transition length.
func (s *Spin) Duration() time.Duration {
	return s.duration
}

// OnComplete registers the handler run when the transition ends. Only one
// handler is kept; it runs at most once.
func (s *Spin) OnComplete(fn func(word.Enriched)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onComplete = fn
}

// Advance moves the animation clock forward by dt and reports whether the
// transition has reached its end.
func (s *Spin) Advance(dt time.Duration) bool {
	if dt > 0 {
		s.elapsed += dt
	}
	if s.elapsed > s.duration {
		s.elapsed = s.duration
	}
	return s.Finished()
}

// Finished reports whether the full duration has elapsed.
func (s *Spin) Finished() bool {
	return s.elapsed >= s.duration
}

// Progress is the eased position in [0,1].
func (s *Spin) Progress() float64 {
	x := float64(s.elapsed) / float64(s.duration)
	return s.curve.At(x)
}

// Offset is the scroll position measured in items. It ends at the index
// of the final word.
func (s *Spin) Offset() float64 {
	return s.Progress() * float64(len(s.items)-1)
}

// End signals the end of the transition. The completion handler runs the
// first time End is called after the transition has finished and is then
// dropped; early or repeated calls do nothing. It reports whether the
// handler ran.
func (s *Spin) End() bool {
	if !s.Finished() {
		return false
	}

	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return false
	}
	s.completed = true
	fn := s.onComplete
	s.onComplete = nil
	s.mu.Unlock()

	if fn != nil {
		fn(s.final)
	}
	return true
}

// Completed reports whether End has fired.
func (s *Spin) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Window returns rows items centred on the current offset. Positions
// outside the reel are empty strings. The centre row is rows/2.
func (s *Spin) Window(rows int) []string {
	if rows <= 0 {
		return nil
	}
	centre := int(math.Round(s.Offset()))
	out := make([]string, rows)
	for r := range rows {
		i := centre - rows/2 + r
		if i >= 0 && i < len(s.items) {
			out[r] = s.items[i]
		}
	}
	return out
}
