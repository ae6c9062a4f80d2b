package vocab

import (
	"sort"

	"github.com/hellenist/greekvocab/pkg/greek"
)

// Registry accumulates resolved entries for a whole document, merging
// repeated occurrences of the same lemma into one LemmaEntry. It has a
// single writer by construction: Register is called sequentially in
// token order.
type Registry struct {
	entries map[string]*LemmaEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*LemmaEntry)}
}

// Register merges one resolved entry. The first occurrence of a lemma
// creates its LemmaEntry; later occurrences increment the count, add
// unseen surface forms, and fill in a gloss or morphology only if none
// was recorded yet. Unrecognized sentinels are ignored: they carry no
// lemma to consolidate.
func (r *Registry) Register(e ResolvedEntry) {
	if e.Unrecognized || e.Lemma == "" {
		return
	}
	key := greek.Normalize(e.Lemma)
	entry, ok := r.entries[key]
	if !ok {
		r.entries[key] = &LemmaEntry{
			Key:        key,
			Lemma:      e.Lemma,
			Gloss:      e.Gloss,
			Morphology: e.Morphology,
			Surfaces:   []string{e.Surface},
			Count:      1,
		}
		return
	}
	entry.Count++
	if !containsString(entry.Surfaces, e.Surface) {
		entry.Surfaces = append(entry.Surfaces, e.Surface)
	}
	if entry.Gloss == "" {
		entry.Gloss = e.Gloss
	}
	if entry.Morphology == "" {
		entry.Morphology = e.Morphology
	}
}

// Has reports whether a lemma with the given normalized key has been
// registered. The resolver uses this to stabilize recurring ambiguous
// forms onto one reading.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of distinct lemmas registered.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Snapshot returns the registered entries ordered by normalized key.
// The ordering depends only on the keys, never on insertion order, so
// output is reproducible however the input was traversed. Entries are
// copied; mutating the result does not touch the registry.
func (r *Registry) Snapshot() []LemmaEntry {
	out := make([]LemmaEntry, 0, len(r.entries))
	for _, e := range r.entries {
		copied := *e
		copied.Surfaces = append([]string(nil), e.Surfaces...)
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
