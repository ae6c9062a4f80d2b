package vocab

import (
	"fmt"
	"strings"
)

// Mode selects the output format.
type Mode int

const (
	// ModePlain renders one "lemma: gloss" line per entry.
	ModePlain Mode = iota
	// ModeLaTeX renders one \vocabentry{lemma}{gloss} line per entry.
	// The command name, brace placement and argument order are a
	// compatibility contract with the downstream typesetting pipeline
	// and must not change.
	ModeLaTeX
)

// ParseMode maps a format flag value to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "plain":
		return ModePlain, nil
	case "latex", "markup":
		return ModeLaTeX, nil
	}
	return ModePlain, fmt.Errorf("unknown output format %q", name)
}

// Render formats the entries in snapshot order, one per line.
func Render(entries []LemmaEntry, mode Mode) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, renderEntry(e, mode))
	}
	return strings.Join(lines, "\n")
}

func renderEntry(e LemmaEntry, mode Mode) string {
	if mode == ModeLaTeX {
		return fmt.Sprintf(`\vocabentry{%s}{%s}`, e.Headword(), e.Gloss)
	}
	return fmt.Sprintf("%s: %s", e.Headword(), e.Gloss)
}
