// Package vocab turns streams of ambiguous morphological analyses into
// one deterministic, deduplicated, filterable glossary.
package vocab

import "strings"

// ResolvedEntry is the single reading chosen for one token: lemma and
// gloss, plus the surface form it came from. Unrecognized marks the
// sentinel produced when the analyzer returned no usable candidate;
// such entries never reach the registry.
type ResolvedEntry struct {
	Surface      string
	Lemma        string
	Gloss        string
	Morphology   string // display morphology ("ου, ὁ", "(adv.)", ...), may be empty
	Unrecognized bool
}

// LemmaEntry is the consolidated, document-wide record for one lemma.
type LemmaEntry struct {
	Key        string // normalized lemma, the dedup and ordering key
	Lemma      string // display form
	Gloss      string
	Morphology string
	Surfaces   []string // distinct surface forms, in first-seen order
	Count      int      // total occurrences across all surface forms
}

// Headword renders the dictionary headword for display: the lemma
// alone, or the lemma with its morphology hint attached the way a
// printed vocabulary list would show it.
func (e LemmaEntry) Headword() string {
	switch {
	case e.Morphology == "":
		return e.Lemma
	case strings.HasPrefix(e.Morphology, "("):
		// parenthesized markers like "(adv.)" follow with a space
		return e.Lemma + " " + e.Morphology
	default:
		return e.Lemma + ", " + e.Morphology
	}
}
