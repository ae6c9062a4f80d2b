package morph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hellenist/greekvocab/pkg/betacode"
)

// Definitions is an in-memory lemma → short-definition table, loaded
// from a tab-separated file of "headword<TAB>definition" lines (the
// Logeion short-definitions format). Headwords are indexed in both
// Beta Code and Unicode, with and without trailing homograph digits,
// so lookups succeed whichever form the analyzer reports.
type Definitions struct {
	byLemma map[string]string
}

// LoadDefinitions reads a definitions file from disk.
func LoadDefinitions(path string) (*Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDefinitions(f)
}

// ReadDefinitions parses definitions from r. Lines without a tab
// separator are skipped.
func ReadDefinitions(r io.Reader) (*Definitions, error) {
	d := &Definitions{byLemma: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		headword, definition, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		d.add(headword, strings.TrimSpace(definition))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	return d, nil
}

func (d *Definitions) add(headword, definition string) {
	greek := betacode.ToGreek(headword)
	d.store(greek, definition)
	d.store(betacode.ToBeta(greek), definition)

	base := BaseLemma(headword)
	if base != headword {
		d.store(betacode.ToGreek(base), definition)
		d.store(betacode.ToBeta(betacode.ToGreek(base)), definition)
	}
}

// store keeps the first definition seen for a key; the source file
// lists homographs in frequency order.
func (d *Definitions) store(key, definition string) {
	if key == "" {
		return
	}
	if _, exists := d.byLemma[key]; !exists {
		d.byLemma[key] = definition
	}
}

// Len returns the number of indexed headword keys.
func (d *Definitions) Len() int {
	return len(d.byLemma)
}

// Lookup returns the short definition for a lemma in Unicode or Beta
// Code, trying the exact form first and then the form without trailing
// homograph digits. Returns "" when no definition is known.
func (d *Definitions) Lookup(lemma string) string {
	if def, ok := d.byLemma[lemma]; ok {
		return def
	}
	if def, ok := d.byLemma[BaseLemma(lemma)]; ok {
		return def
	}
	return ""
}
