// Package betacode converts between Unicode polytonic Greek and TLG
// Beta Code, the transliteration the morpheus analyzer reads and
// writes. Lowercase letters map to plain ASCII, diacritics to the
// suffix symbols ) ( / \ = | + and capitals to a * prefix.
package betacode

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// letterToBeta maps lowercase Greek base letters to Beta Code ASCII.
var letterToBeta = map[rune]byte{
	'α': 'a', 'β': 'b', 'γ': 'g', 'δ': 'd', 'ε': 'e', 'ζ': 'z',
	'η': 'h', 'θ': 'q', 'ι': 'i', 'κ': 'k', 'λ': 'l', 'μ': 'm',
	'ν': 'n', 'ξ': 'c', 'ο': 'o', 'π': 'p', 'ρ': 'r', 'σ': 's',
	'ς': 's', 'ϲ': 's', 'τ': 't', 'υ': 'u', 'φ': 'f', 'χ': 'x',
	'ψ': 'y', 'ω': 'w', 'ϝ': 'v',
}

// betaToLetter is the reverse of letterToBeta with σ for 's';
// final-sigma placement is decided by position during conversion.
var betaToLetter = map[byte]rune{
	'a': 'α', 'b': 'β', 'g': 'γ', 'd': 'δ', 'e': 'ε', 'z': 'ζ',
	'h': 'η', 'q': 'θ', 'i': 'ι', 'k': 'κ', 'l': 'λ', 'm': 'μ',
	'n': 'ν', 'c': 'ξ', 'o': 'ο', 'p': 'π', 'r': 'ρ', 's': 'σ',
	't': 'τ', 'u': 'υ', 'f': 'φ', 'x': 'χ', 'y': 'ψ', 'w': 'ω',
	'v': 'ϝ',
}

// markToBeta maps combining marks (as produced by NFD) to Beta Code
// diacritic symbols. Length marks (macron, breve) have no Beta symbol
// in morpheus input and are dropped.
var markToBeta = map[rune]byte{
	'̓': ')',  // smooth breathing
	'̔': '(',  // rough breathing
	'́': '/',  // acute
	'̀': '\\', // grave
	'͂': '=',  // circumflex (perispomeni)
	'ͅ': '|',  // iota subscript (ypogegrammeni)
	'̈': '+',  // diaeresis
}

var betaToMark = map[byte]rune{
	')':  '̓',
	'(':  '̔',
	'/':  '́',
	'\\': '̀',
	'=':  '͂',
	'|':  'ͅ',
	'+':  '̈',
}

func isCombining(r rune) bool {
	return r >= '̀' && r <= 'ͯ'
}

// ToBeta converts Unicode Greek to Beta Code. Capitals become
// *<diacritics><letter>; runes outside the Greek alphabet pass through
// unchanged.
func ToBeta(s string) string {
	var b strings.Builder
	var letter byte
	var upper bool
	var marks []byte

	flush := func() {
		if letter == 0 {
			return
		}
		if upper {
			b.WriteByte('*')
			b.Write(marks)
			b.WriteByte(letter)
		} else {
			b.WriteByte(letter)
			b.Write(marks)
		}
		letter, upper, marks = 0, false, nil
	}

	for _, r := range norm.NFD.String(s) {
		if isCombining(r) {
			if m, ok := markToBeta[r]; ok {
				marks = append(marks, m)
			}
			continue
		}
		flush()
		lower := r
		if r >= 'Α' && r <= 'Ω' || r == 'Ϲ' {
			lower = toLowerGreek(r)
			upper = true
		}
		if l, ok := letterToBeta[lower]; ok {
			letter = l
		} else {
			upper = false
			b.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

func toLowerGreek(r rune) rune {
	switch r {
	case 'Ϲ':
		return 'ϲ'
	case 'Σ':
		return 'σ'
	}
	return r + ('α' - 'Α')
}

// ToGreek converts Beta Code to composed Unicode Greek. A trailing 's'
// becomes final sigma ς. Bytes that are neither Beta letters, Beta
// diacritics nor '*' pass through unchanged.
func ToGreek(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		upper := false
		if c == '*' {
			upper = true
			i++
		}
		var marks []rune
		// capitals carry their diacritics before the letter
		for i < len(s) {
			m, ok := betaToMark[s[i]]
			if !ok {
				break
			}
			marks = append(marks, m)
			i++
		}
		if i >= len(s) {
			for _, m := range marks {
				b.WriteRune(m)
			}
			break
		}
		letter, ok := betaToLetter[lowerASCII(s[i])]
		if !ok {
			if !upper && len(marks) == 0 {
				b.WriteByte(s[i])
				i++
			}
			continue
		}
		i++
		// lowercase letters carry their diacritics after the letter
		for i < len(s) {
			m, ok := betaToMark[s[i]]
			if !ok {
				break
			}
			marks = append(marks, m)
			i++
		}
		if letter == 'σ' && !upper && atWordEnd(s, i) {
			letter = 'ς'
		}
		if upper {
			letter = toUpperGreek(letter)
		}
		b.WriteRune(letter)
		for _, m := range marks {
			b.WriteRune(m)
		}
	}
	return norm.NFC.String(b.String())
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpperGreek(r rune) rune {
	if r == 'σ' || r == 'ς' {
		return 'Σ'
	}
	return r - ('α' - 'Α')
}

// atWordEnd reports whether position i in the Beta string is past the
// last letter of the current word.
func atWordEnd(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	c := lowerASCII(s[i])
	_, letter := betaToLetter[c]
	return !letter && s[i] != '*'
}
