package db

// migrationsSQL holds the schema, executed statement by statement by
// InitDB. Statements must not contain ';' inside string literals.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS lemmas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lemma TEXT NOT NULL,
	normalized TEXT NOT NULL,
	gloss TEXT,
	morphology TEXT,
	language TEXT NOT NULL DEFAULT 'grc',
	UNIQUE(normalized, language)
);

CREATE TABLE IF NOT EXISTS sources (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_type TEXT NOT NULL,
	title TEXT,
	author TEXT,
	website TEXT,
	url TEXT,
	meta TEXT,
	added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	last_ingested_entry INTEGER NOT NULL DEFAULT -1,
	UNIQUE(url, title, author)
);

CREATE TABLE IF NOT EXISTS lemma_sources (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lemma_id INTEGER NOT NULL REFERENCES lemmas(id),
	source_id INTEGER NOT NULL REFERENCES sources(id),
	occurrence_count INTEGER NOT NULL DEFAULT 0,
	first_seen_at TIMESTAMP,
	UNIQUE(lemma_id, source_id)
);

CREATE TABLE IF NOT EXISTS surface_forms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lemma_id INTEGER NOT NULL REFERENCES lemmas(id),
	form TEXT NOT NULL,
	UNIQUE(lemma_id, form)
);

CREATE INDEX IF NOT EXISTS idx_lemma_sources_source ON lemma_sources(source_id);

CREATE INDEX IF NOT EXISTS idx_surface_forms_lemma ON surface_forms(lemma_id);
`
