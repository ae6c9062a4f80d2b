package vocab

import "testing"

func TestRegistryMergesInflections(t *testing.T) {
	r := NewRegistry()
	for _, surface := range []string{"λόγος", "λόγου", "λόγοις"} {
		r.Register(ResolvedEntry{
			Surface: surface,
			Lemma:   "λόγος",
			Gloss:   "word, speech, reason",
		})
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 lemma, got %d", r.Len())
	}
	entries := r.Snapshot()
	e := entries[0]
	if e.Count != 3 {
		t.Errorf("count = %d, want 3", e.Count)
	}
	if len(e.Surfaces) != 3 {
		t.Errorf("surfaces = %v, want 3 distinct forms", e.Surfaces)
	}
	if e.Lemma != "λόγος" || e.Gloss != "word, speech, reason" {
		t.Errorf("entry = %+v", e)
	}
}

func TestRegistryDeduplicatesSurfaces(t *testing.T) {
	r := NewRegistry()
	r.Register(ResolvedEntry{Surface: "λόγος", Lemma: "λόγος"})
	r.Register(ResolvedEntry{Surface: "λόγος", Lemma: "λόγος"})
	e := r.Snapshot()[0]
	if e.Count != 2 {
		t.Errorf("count = %d, want 2", e.Count)
	}
	if len(e.Surfaces) != 1 {
		t.Errorf("surfaces = %v, want 1", e.Surfaces)
	}
}

func TestRegistryFirstGlossWins(t *testing.T) {
	r := NewRegistry()
	r.Register(ResolvedEntry{Surface: "λόγος", Lemma: "λόγος", Gloss: "word"})
	r.Register(ResolvedEntry{Surface: "λόγου", Lemma: "λόγος", Gloss: "different gloss"})
	if got := r.Snapshot()[0].Gloss; got != "word" {
		t.Errorf("gloss = %q, want the first one", got)
	}
}

func TestRegistryFillsEmptyGloss(t *testing.T) {
	r := NewRegistry()
	r.Register(ResolvedEntry{Surface: "λόγος", Lemma: "λόγος"})
	r.Register(ResolvedEntry{Surface: "λόγου", Lemma: "λόγος", Gloss: "word"})
	if got := r.Snapshot()[0].Gloss; got != "word" {
		t.Errorf("gloss = %q, want later gloss to fill the gap", got)
	}
}

func TestRegistryIgnoresUnrecognized(t *testing.T) {
	r := NewRegistry()
	r.Register(ResolvedEntry{Surface: "ἄγνωστος", Unrecognized: true})
	r.Register(ResolvedEntry{Surface: "κενός"}) // empty lemma
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d entries", r.Len())
	}
}

func TestRegistryAccentVariantsShareEntry(t *testing.T) {
	r := NewRegistry()
	r.Register(ResolvedEntry{Surface: "καί", Lemma: "καί"})
	r.Register(ResolvedEntry{Surface: "καὶ", Lemma: "καὶ"})
	if r.Len() != 1 {
		t.Fatalf("expected accent variants to merge, got %d entries", r.Len())
	}
	if got := r.Snapshot()[0].Lemma; got != "καί" {
		t.Errorf("display lemma = %q, want first-seen spelling", got)
	}
}

func TestSnapshotOrderedByKey(t *testing.T) {
	r := NewRegistry()
	for _, l := range []string{"ψυχή", "ἄνθρωπος", "λόγος"} {
		r.Register(ResolvedEntry{Surface: l, Lemma: l})
	}
	entries := r.Snapshot()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			t.Fatalf("snapshot not ordered: %q before %q", entries[i-1].Key, entries[i].Key)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	r.Register(ResolvedEntry{Surface: "λόγος", Lemma: "λόγος"})
	snap := r.Snapshot()
	snap[0].Lemma = "mutated"
	snap[0].Surfaces[0] = "mutated"
	again := r.Snapshot()
	if again[0].Lemma != "λόγος" || again[0].Surfaces[0] != "λόγος" {
		t.Fatal("mutating a snapshot leaked into the registry")
	}
}
