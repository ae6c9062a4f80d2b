package db

import "time"

// Lemma is the canonical vocabulary record for one headword.
type Lemma struct {
	ID         int64
	Lemma      string
	Normalized string
	Gloss      string
	Morphology string
	Language   string
}

// Source is a provenance record for where vocabulary was gathered.
type Source struct {
	ID         int64
	SourceType string
	Title      string
	Author     string
	Website    string
	URL        string
	Meta       string
	AddedAt    time.Time
}

// LemmaSource links a Lemma with a Source and counts its occurrences
// there.
type LemmaSource struct {
	ID              int64
	LemmaID         int64
	SourceID        int64
	OccurrenceCount int
	FirstSeenAt     time.Time
}
