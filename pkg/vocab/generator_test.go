package vocab

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/hellenist/greekvocab/pkg/greek"
	"github.com/hellenist/greekvocab/pkg/morph"
)

// fakeAnalyzer serves canned analyses per surface form. Surfaces in
// fail return an error; surfaces absent from both maps are
// unrecognized.
type fakeAnalyzer struct {
	analyses map[string][]morph.Analysis
	fail     map[string]error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, surface string) ([]morph.Analysis, error) {
	if err, ok := f.fail[surface]; ok {
		return nil, err
	}
	return f.analyses[surface], nil
}

func logosAnalyzer() *fakeAnalyzer {
	logos := morph.Analysis{
		Lemma: "λόγος", PartOfSpeech: morph.Noun,
		Features:     []morph.Feature{morph.Masculine, morph.Singular},
		MorphClasses: []morph.MorphClass{morph.SecondDeclension},
		Gloss:        "word, speech, reason",
	}
	return &fakeAnalyzer{analyses: map[string][]morph.Analysis{
		"λόγος":  {logos},
		"λόγου":  {logos},
		"λόγοις": {logos},
	}}
}

func tokensFor(surfaces ...string) []greek.Token {
	toks := make([]greek.Token, len(surfaces))
	for i, s := range surfaces {
		toks[i] = greek.Token{Surface: s, Index: i}
	}
	return toks
}

func TestGenerateConsolidatesInflections(t *testing.T) {
	g := &Generator{Analyzer: logosAnalyzer()}
	entries, stats, err := g.Generate(context.Background(), tokensFor("λόγος", "λόγου", "λόγοις"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Lemma != "λόγος" || e.Count != 3 || len(e.Surfaces) != 3 {
		t.Fatalf("entry = %+v", e)
	}
	if stats.Tokens != 3 || stats.Unrecognized != 0 || stats.Failed != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestGenerateCountsUnrecognized(t *testing.T) {
	g := &Generator{Analyzer: logosAnalyzer()}
	entries, stats, err := g.Generate(context.Background(), tokensFor("λόγος", "ἄγνωστον"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if stats.Unrecognized != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(entries) != 1 {
		t.Fatalf("unrecognized token must not produce an entry: %v", entries)
	}
}

func TestGenerateToleratesPartialFailures(t *testing.T) {
	a := logosAnalyzer()
	a.fail = map[string]error{"κακός": fmt.Errorf("cruncher crashed")}
	g := &Generator{Analyzer: a}
	entries, stats, err := g.Generate(context.Background(), tokensFor("λόγος", "κακός"))
	if err != nil {
		t.Fatalf("per-token failure must not abort the run: %v", err)
	}
	if stats.Failed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %v", entries)
	}
}

func TestGenerateAllFailedIsFatal(t *testing.T) {
	a := &fakeAnalyzer{fail: map[string]error{
		"λόγος": fmt.Errorf("no binary"),
		"λόγου": fmt.Errorf("no binary"),
	}}
	g := &Generator{Analyzer: a}
	_, _, err := g.Generate(context.Background(), tokensFor("λόγος", "λόγου"))
	if err == nil {
		t.Fatal("expected fatal error when every token fails")
	}
	if !IsAnalyzerUnavailable(err) {
		t.Fatalf("expected analyzer-unavailable error, got %v", err)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	g := &Generator{Analyzer: logosAnalyzer()}
	entries, stats, err := g.Generate(context.Background(), nil)
	if err != nil || len(entries) != 0 || stats.Tokens != 0 {
		t.Fatalf("entries=%v stats=%+v err=%v", entries, stats, err)
	}
}

func TestGenerateDeterministicAcrossWorkerCounts(t *testing.T) {
	tokens := tokensFor("λόγοις", "λόγος", "λόγου", "λόγος")
	sequential := &Generator{Analyzer: logosAnalyzer(), Workers: 1}
	concurrent := &Generator{Analyzer: logosAnalyzer(), Workers: 8}

	a, _, err := sequential.Generate(context.Background(), tokens)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	b, _, err := concurrent.Generate(context.Background(), tokens)
	if err != nil {
		t.Fatalf("concurrent: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("worker count changed the output:\n%v\nvs\n%v", a, b)
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{Analyzer: logosAnalyzer()}
	_, _, err := g.Generate(ctx, tokensFor("λόγος"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
