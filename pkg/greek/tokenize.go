package greek

import "regexp"

// Token is one surface word form at its position in the source text.
type Token struct {
	Surface string
	Index   int // 0-based position in the token sequence
}

// wordRE matches runs of Greek letters: the basic Greek and Coptic
// block plus the Greek Extended block (polytonic precomposed forms).
var wordRE = regexp.MustCompile(`[\x{0370}-\x{03FF}\x{1F00}-\x{1FFF}]+`)

// Tokenize extracts the Greek word forms from running text in document
// order, skipping punctuation, Latin text and digits. Repeated forms
// are kept; deduplication happens later at the lemma level.
func Tokenize(text string) []Token {
	words := wordRE.FindAllString(text, -1)
	tokens := make([]Token, 0, len(words))
	for i, w := range words {
		tokens = append(tokens, Token{Surface: w, Index: i})
	}
	return tokens
}

// Words returns just the surface forms of Tokenize(text).
func Words(text string) []string {
	return wordRE.FindAllString(text, -1)
}
