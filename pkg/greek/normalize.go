package greek

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining marks (accents,
// breathings, iota subscripts, diaereses, length marks) and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sigmaFolder collapses the sigma variants (final ς, lunate ϲ/Ϲ) onto σ
// so that word-final and word-internal spellings compare equal.
var sigmaFolder = strings.NewReplacer("ς", "σ", "ϲ", "σ", "Ϲ", "σ")

// Normalize reduces a Greek string to its comparison key: accents,
// breathings and other diacritics are stripped, letters are lowercased
// and sigma variants are folded. Two spellings of the same word that
// differ only in diacritics map to the same key. Normalize is pure and
// idempotent.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the input
		out = s
	}
	return sigmaFolder.Replace(strings.ToLower(out))
}
