package vocab

import (
	"sort"

	"github.com/hellenist/greekvocab/pkg/greek"
	"github.com/hellenist/greekvocab/pkg/morph"
)

// Resolver deterministically selects one reading from a token's
// candidate analyses. Selection depends only on the candidate set and
// on which lemmas the registry has already committed, never on the
// order the analyzer happened to emit candidates in:
//
//  1. a candidate whose lemma is already registered wins, keeping a
//     recurring ambiguous form on one reading for the whole document;
//  2. otherwise the shortest normalized lemma wins (common headwords
//     tend to be short);
//  3. remaining ties break on the lexicographically smallest
//     normalized lemma, then on morphology and gloss strings so equal
//     keys still resolve identically.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver consulting reg for rule 1.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Resolve picks the canonical (lemma, gloss) for one surface form.
// With no candidates it returns the unrecognized sentinel rather than
// an error; an unparseable word must not abort the document.
func (r *Resolver) Resolve(surface string, analyses []morph.Analysis) ResolvedEntry {
	if len(analyses) == 0 {
		return ResolvedEntry{Surface: surface, Unrecognized: true}
	}

	candidates := append([]morph.Analysis(nil), analyses...)
	sort.Slice(candidates, func(i, j int) bool {
		ki := greek.Normalize(candidates[i].Lemma)
		kj := greek.Normalize(candidates[j].Lemma)
		ri := r.registry.Has(ki)
		rj := r.registry.Has(kj)
		if ri != rj {
			return ri
		}
		if len(ki) != len(kj) {
			return len(ki) < len(kj)
		}
		if ki != kj {
			return ki < kj
		}
		mi := morphologyFor(candidates[i])
		mj := morphologyFor(candidates[j])
		if mi != mj {
			return mi < mj
		}
		return candidates[i].Gloss < candidates[j].Gloss
	})

	chosen := candidates[0]
	return ResolvedEntry{
		Surface:    surface,
		Lemma:      chosen.Lemma,
		Gloss:      chosen.Gloss,
		Morphology: morphologyFor(chosen),
	}
}
