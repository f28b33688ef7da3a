package reel

import (
	"sync"
	"testing"
	"time"

	"github.com/f3rmion/adjespin/internal/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var happy = word.Enriched{Word: "happy", Definition: "feeling joy", Pronunciation: "/ˈhæpi/"}

func TestNew_ItemsEndOnFinal(t *testing.T) {
	s := New(happy, []string{"blue", "brave", "blue"}, 0)
	assert.Equal(t, []string{"blue", "brave", "blue", "happy"}, s.Items())
	assert.Equal(t, DefaultDuration, s.Duration())
	assert.Equal(t, happy, s.Final())
}

func TestAdvance_OffsetLandsOnFinal(t *testing.T) {
	s := New(happy, []string{"a", "b", "c", "d"}, 100*time.Millisecond)
	assert.Zero(t, s.Offset())

	assert.False(t, s.Advance(50*time.Millisecond))
	mid := s.Offset()
	assert.Greater(t, mid, 2.0, "ease-out covers more than half the distance by half time")
	assert.Less(t, mid, 4.0)

	assert.True(t, s.Advance(time.Hour))
	assert.InDelta(t, 4.0, s.Offset(), 1e-9)
}

func TestEnd_OneShot(t *testing.T) {
	s := New(happy, []string{"a"}, 10*time.Millisecond)

	var calls int
	var got word.Enriched
	s.OnComplete(func(w word.Enriched) {
		calls++
		got = w
	})

	assert.False(t, s.End(), "End before the transition finishes is ignored")
	assert.Zero(t, calls)

	s.Advance(10 * time.Millisecond)
	assert.True(t, s.End())
	assert.False(t, s.End())
	assert.False(t, s.End())

	assert.Equal(t, 1, calls)
	assert.Equal(t, happy, got)
	assert.True(t, s.Completed())
}

func TestEnd_ConcurrentFiresOnce(t *testing.T) {
	s := New(happy, nil, time.Millisecond)
	s.Advance(time.Millisecond)

	var mu sync.Mutex
	calls := 0
	s.OnComplete(func(word.Enriched) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.End()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestEnd_WithoutHandler(t *testing.T) {
	s := New(happy, nil, time.Millisecond)
	s.Advance(time.Millisecond)
	assert.True(t, s.End())
	assert.True(t, s.Completed())
}

func TestWindow(t *testing.T) {
	s := New(happy, []string{"a", "b", "c"}, time.Millisecond)

	assert.Equal(t, []string{"", "a", "b"}, s.Window(3))

	s.Advance(time.Millisecond)
	assert.Equal(t, []string{"c", "happy", ""}, s.Window(3))
	assert.Equal(t, []string{"b", "c", "happy", "", ""}, s.Window(5))
	assert.Nil(t, s.Window(0))
}

func TestBezier(t *testing.T) {
	assert.Equal(t, 0.0, EaseOut.At(-1))
	assert.Equal(t, 1.0, EaseOut.At(2))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOut.At(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev, "monotonic at %d", i)
		prev = v
	}

	linear := Bezier{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75}
	assert.InDelta(t, 0.3, linear.At(0.3), 1e-5)
}
