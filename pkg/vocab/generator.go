package vocab

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hellenist/greekvocab/pkg/greek"
	"github.com/hellenist/greekvocab/pkg/morph"
	"github.com/hellenist/greekvocab/pkg/pipeline"
)

// Analyzer produces candidate analyses for one surface form. morph.Parser
// implements it; tests substitute canned oracles.
type Analyzer interface {
	Analyze(ctx context.Context, surface string) ([]morph.Analysis, error)
}

// Stats summarizes a generation run alongside the vocabulary itself.
type Stats struct {
	Tokens       int // tokens submitted
	Unrecognized int // tokens the analyzer returned zero analyses for
	Failed       int // tokens lost to analyzer unavailability
}

// Generator runs the whole pipeline: analyzer calls fan out over a
// bounded worker pool, then resolution and registration run
// sequentially in original token order. The two phases keep the
// registry single-writer: the resolver's already-registered tie-break
// and the registry merge both need a consistent sequential view.
type Generator struct {
	Analyzer Analyzer
	// Workers bounds concurrent analyzer invocations. Zero or negative
	// means sequential.
	Workers int
	// Logger receives per-token diagnostics. nil means no logging.
	Logger *log.Logger
}

// analyzed holds phase-one output for one token.
type analyzed struct {
	analyses []morph.Analysis
	err      error
}

// Generate consolidates tokens into a deduplicated vocabulary and run
// statistics. Per-token analyzer failures are counted and logged but
// do not abort the run; only the analyzer failing for every single
// token is treated as fatal.
func (g *Generator) Generate(ctx context.Context, tokens []greek.Token) ([]LemmaEntry, Stats, error) {
	stats := Stats{Tokens: len(tokens)}
	if len(tokens) == 0 {
		return nil, stats, nil
	}

	// phase 1: gather all analyses, concurrently when configured.
	// Each task writes only its own slot, so no locking is needed.
	results := make([]analyzed, len(tokens))

	workers := g.Workers
	if workers <= 0 {
		workers = 1
	}
	pool := pipeline.NewPool(workers, workers*2)
	pool.Start(ctx)
	for i, tok := range tokens {
		i, tok := i, tok
		err := pool.SubmitCtx(ctx, func(ctx context.Context) error {
			analyses, err := g.Analyzer.Analyze(ctx, tok.Surface)
			results[i] = analyzed{analyses: analyses, err: err}
			return err
		})
		if err != nil {
			pool.Close()
			return nil, stats, err
		}
	}
	pool.Close()

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	// phase 2: resolve and register sequentially in token order
	registry := NewRegistry()
	resolver := NewResolver(registry)
	for i, tok := range tokens {
		res := results[i]
		if res.err != nil {
			stats.Failed++
			if g.Logger != nil {
				g.Logger.Printf("analysis failed for %q: %v", tok.Surface, res.err)
			}
			continue
		}
		entry := resolver.Resolve(tok.Surface, res.analyses)
		if entry.Unrecognized {
			stats.Unrecognized++
			if g.Logger != nil {
				g.Logger.Printf("warning: no analysis for %q", tok.Surface)
			}
			continue
		}
		registry.Register(entry)
	}

	if stats.Failed == stats.Tokens {
		return nil, stats, fmt.Errorf("%w: no token could be analyzed", morph.ErrAnalyzerUnavailable)
	}
	return registry.Snapshot(), stats, nil
}

// IsAnalyzerUnavailable reports whether err stems from the analyzer
// being unreachable.
func IsAnalyzerUnavailable(err error) bool {
	return errors.Is(err, morph.ErrAnalyzerUnavailable)
}
