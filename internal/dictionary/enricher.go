package dictionary

import (
	"context"
	"sync/atomic"

	"github.com/f3rmion/adjespin/internal/word"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Lookuper resolves a single word. *Client implements it.
type Lookuper interface {
	Lookup(ctx context.Context, w string) word.Enriched
}

// ProgressFunc is called after each word is enriched with the number of
// finished words and the batch size. It may be called from several
// goroutines when concurrency is above one.
type ProgressFunc func(done, total int)

// Enricher turns a source list into enriched records.
type Enricher struct {
	lookup      Lookuper
	concurrency int
	log         *zap.Logger
}

// NewEnricher creates an enricher. A concurrency of 1 or less enriches
// words strictly one after another.
func NewEnricher(l Lookuper, concurrency int, logger *zap.Logger) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{
		lookup:      l,
		concurrency: concurrency,
		log:         logger.Named("enricher"),
	}
}

// EnrichAll returns exactly one record per source word, in source order.
// Once ctx is done no further lookups start; the remaining words get
// empty records.
func (e *Enricher) EnrichAll(ctx context.Context, words []string, progress ProgressFunc) []word.Enriched {
	out := make([]word.Enriched, len(words))
	for i, w := range words {
		out[i] = word.Empty(w)
	}

	total := len(words)
	var done atomic.Int32
	report := func() {
		n := int(done.Add(1))
		if progress != nil {
			progress(n, total)
		}
	}

	if e.concurrency == 1 {
		for i, w := range words {
			if ctx.Err() != nil {
				break
			}
			out[i] = e.lookup.Lookup(ctx, w)
			report()
		}
		e.logDone(ctx, out)
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, w := range words {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			// Each goroutine owns one slot, so order follows the source list.
			out[i] = e.lookup.Lookup(gctx, w)
			report()
			return nil
		})
	}
	_ = g.Wait()

	e.logDone(ctx, out)
	return out
}

func (e *Enricher) logDone(ctx context.Context, out []word.Enriched) {
	defined := 0
	for _, w := range out {
		if w.HasDefinition() {
			defined++
		}
	}
	e.log.Info("enrichment finished",
		zap.Int("words", len(out)),
		zap.Int("with_definition", defined),
		zap.Int("concurrency", e.concurrency),
		zap.Bool("cancelled", ctx.Err() != nil),
	)
}
