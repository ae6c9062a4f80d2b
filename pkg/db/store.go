package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// isUniqueConstraintErr returns true when the error indicates a unique/constraint violation
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// CreateOrGetLemma upserts a lemma keyed by (normalized, language) and
// returns its id. An existing row keeps its gloss and morphology
// unless they are still empty; the registry's first-wins merge rule
// carries through to the database.
func CreateOrGetLemma(db DBExecutor, lemma, normalized, gloss, morphology, language string) (int64, error) {
	trimmed := strings.TrimSpace(lemma)
	if trimmed == "" {
		return 0, fmt.Errorf("lemma must be non-empty")
	}
	if normalized == "" {
		return 0, fmt.Errorf("normalized key must be non-empty")
	}

	var id int64
	query := `INSERT INTO lemmas (lemma, normalized, gloss, morphology, language)
			  VALUES (?, ?, ?, ?, ?)
			  ON CONFLICT(normalized, language)
			  DO UPDATE SET
			    gloss = COALESCE(NULLIF(lemmas.gloss, ''), excluded.gloss),
				morphology = COALESCE(NULLIF(lemmas.morphology, ''), excluded.morphology)
			  RETURNING id`

	err := db.QueryRow(query, trimmed, normalized, gloss, morphology, language).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert lemma: %w", err)
	}
	return id, nil
}

// CreateOrGetSource returns existing source id or inserts a new source and returns its id.
func CreateOrGetSource(db DBExecutor, sourceType, title, author, website, url, meta string) (int64, error) {
	trimmedSourceType := strings.TrimSpace(sourceType)
	if trimmedSourceType == "" {
		return 0, fmt.Errorf("sourceType must be non-empty")
	}

	const maxRetries = 3

	var id int64
	for attempt := 0; attempt < maxRetries; attempt++ {
		// First, try to find an existing source.
		err := db.QueryRow(
			`SELECT id FROM sources WHERE IFNULL(url, '') = ? AND IFNULL(title, '') = ? AND IFNULL(author, '') = ?`,
			url, title, author,
		).Scan(&id)
		if err == nil {
			return id, nil
		}
		if err != sql.ErrNoRows {
			return 0, err
		}

		// No existing row; try to insert one.
		res, err := db.Exec(
			`INSERT INTO sources (source_type, title, author, website, url, meta) VALUES (?, ?, ?, ?, ?, ?)`,
			trimmedSourceType, title, author, website, url, meta,
		)
		if err != nil {
			// If another concurrent transaction inserted the same source, retry the SELECT.
			if isUniqueConstraintErr(err) {
				continue
			}
			return 0, err
		}

		return res.LastInsertId()
	}

	return 0, fmt.Errorf("could not create or get source after %d retries", maxRetries)
}

// LinkLemmaToSource records that a lemma occurred in a source,
// creating the link row or adding to its occurrence count.
func LinkLemmaToSource(db DBExecutor, lemmaID, sourceID int64, incrementAmount int) error {
	if lemmaID <= 0 {
		return fmt.Errorf("lemmaID must be positive")
	}
	if sourceID <= 0 {
		return fmt.Errorf("sourceID must be positive")
	}
	if incrementAmount < 1 {
		return fmt.Errorf("incrementAmount must be positive, got %d", incrementAmount)
	}

	_, err := db.Exec(`INSERT INTO lemma_sources (lemma_id, source_id, occurrence_count, first_seen_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(lemma_id, source_id) DO UPDATE SET
	  occurrence_count = lemma_sources.occurrence_count + excluded.occurrence_count`,
		lemmaID, sourceID, incrementAmount, time.Now())
	return err
}

// AddSurfaceForm records one attested surface form for a lemma.
// Duplicate forms are ignored.
func AddSurfaceForm(db DBExecutor, lemmaID int64, form string) error {
	if lemmaID <= 0 {
		return fmt.Errorf("lemmaID must be positive")
	}
	form = strings.TrimSpace(form)
	if form == "" {
		return nil
	}
	_, err := db.Exec(`INSERT OR IGNORE INTO surface_forms (lemma_id, form) VALUES (?, ?)`, lemmaID, form)
	return err
}

// GetSurfaceForms returns the attested forms for a lemma in insertion order.
func GetSurfaceForms(db DBExecutor, lemmaID int64) ([]string, error) {
	rows, err := db.Query(`SELECT form FROM surface_forms WHERE lemma_id = ? ORDER BY id`, lemmaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var forms []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, rows.Err()
}

// GetLemmasBySource returns the lemmas linked to a source, ordered by
// normalized key for reproducible listings.
func GetLemmasBySource(db DBExecutor, sourceID int64) ([]Lemma, error) {
	rows, err := db.Query(`SELECT l.id, l.lemma, l.normalized, l.gloss, l.morphology, l.language
		FROM lemmas l JOIN lemma_sources ls ON ls.lemma_id = l.id
		WHERE ls.source_id = ? ORDER BY l.normalized`, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Lemma
	for rows.Next() {
		var l Lemma
		var gloss, morph, lang sql.NullString
		if err := rows.Scan(&l.ID, &l.Lemma, &l.Normalized, &gloss, &morph, &lang); err != nil {
			return nil, err
		}
		l.Gloss = gloss.String
		l.Morphology = morph.String
		l.Language = lang.String
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSourceProgress returns the index of the last vocabulary entry
// persisted for a source, or -1 when ingestion has not started.
func GetSourceProgress(db DBExecutor, sourceID int64) (int, error) {
	var index int
	err := db.QueryRow("SELECT last_ingested_entry FROM sources WHERE id = ?", sourceID).Scan(&index)
	if err != nil {
		return 0, err
	}
	return index, nil
}

// UpdateSourceProgress checkpoints the last persisted entry index.
func UpdateSourceProgress(db DBExecutor, sourceID int64, index int) error {
	_, err := db.Exec("UPDATE sources SET last_ingested_entry = ? WHERE id = ?", index, sourceID)
	return err
}
