// Package ingest persists consolidated vocabulary entries into the
// database in resumable, batched transactions.
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/hellenist/greekvocab/pkg/db"
	"github.com/hellenist/greekvocab/pkg/greek"
	"github.com/hellenist/greekvocab/pkg/vocab"
)

// Ingester writes vocabulary entries for one source. Entries already
// persisted in a previous run are skipped using the source's
// checkpoint, so re-running after an interruption continues where the
// last run stopped.
type Ingester struct {
	DB        *sql.DB
	BatchSize int
	Logger    *log.Logger

	// OnProgress, when set, is called after each entry commits with
	// the entry's index and the total entry count.
	OnProgress func(index, total int)
}

// NewIngester returns an Ingester with the default batch size.
func NewIngester(conn *sql.DB) *Ingester {
	return &Ingester{DB: conn, BatchSize: 25}
}

// Ingest persists entries for sourceID and returns how many entries
// were written this run. Entries must be in the same deterministic
// order on every run for checkpoint resume to be correct; the
// registry's sorted snapshot satisfies that.
func (in *Ingester) Ingest(ctx context.Context, sourceID int64, entries []vocab.LemmaEntry) (int, error) {
	if in.DB == nil {
		return 0, fmt.Errorf("ingester has no database")
	}

	last, err := db.GetSourceProgress(in.DB, sourceID)
	if err != nil {
		return 0, fmt.Errorf("read source progress: %w", err)
	}
	start := last + 1
	if start >= len(entries) {
		return 0, nil
	}
	if start > 0 && in.Logger != nil {
		in.Logger.Printf("resuming source %d at entry %d of %d", sourceID, start, len(entries))
	}

	bw := NewBatchWriter(in.DB, in.BatchSize, 2*time.Second)
	if in.Logger != nil {
		bw.OnError = func(err error) {
			in.Logger.Printf("batch write failed: %v", err)
		}
	}

	var written atomic.Int64
	for i := start; i < len(entries); i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		i := i
		entry := entries[i]
		err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			if err := in.writeEntry(tx, sourceID, entry); err != nil {
				return fmt.Errorf("entry %d (%s): %w", i, entry.Lemma, err)
			}
			if err := db.UpdateSourceProgress(tx, sourceID, i); err != nil {
				return fmt.Errorf("checkpoint entry %d: %w", i, err)
			}
			written.Add(1)
			if in.OnProgress != nil {
				in.OnProgress(i, len(entries))
			}
			return nil
		})
		if err != nil {
			break
		}
	}

	if err := bw.Close(); err != nil {
		return int(written.Load()), err
	}
	return int(written.Load()), ctx.Err()
}

func (in *Ingester) writeEntry(tx *sql.Tx, sourceID int64, entry vocab.LemmaEntry) error {
	lemmaID, err := db.CreateOrGetLemma(tx, entry.Lemma, greek.Normalize(entry.Lemma), entry.Gloss, entry.Morphology, "grc")
	if err != nil {
		return err
	}
	for _, form := range entry.Surfaces {
		if err := db.AddSurfaceForm(tx, lemmaID, form); err != nil {
			return err
		}
	}
	count := entry.Count
	if count < 1 {
		count = 1
	}
	return db.LinkLemmaToSource(tx, lemmaID, sourceID, count)
}
