package vocab

import (
	"strings"

	"github.com/hellenist/greekvocab/pkg/morph"
)

// irregularAdjectives maps lemmas whose declension cannot be derived
// from an ending pattern to their printed form.
var irregularAdjectives = map[string]string{
	"πολύς": "πολύς, πολλή, πολύ",
	"μέγας": "μέγας, μεγάλη, μέγα",
	"πᾶς":   "πᾶς, πᾶσα, πᾶν",
	"ἄλλος": "ἄλλη, ἄλλο",
}

// irregularPronouns maps pronoun lemmas to their printed trio.
var irregularPronouns = map[string]string{
	"τίς":    "τίς, τί",
	"τις":    "τις, τι",
	"ὅστις":  "ὅστις, ἥτις, ὅτι",
	"οὗτος":  "οὗτος, αὕτη, τοῦτο",
	"ἐκεῖνος": "ἐκεῖνος, ἐκείνη, ἐκεῖνο",
	"ὅδε":    "ὅδε, ἥδε, τόδε",
	"αὐτός":  "αὐτός, αὐτή, αὐτό",
	"ὅς":     "ὅς, ἥ, ὅ",
}

// morphologyFor derives the display morphology shown after the lemma
// in a printed vocabulary entry: gender articles and genitive endings
// for nouns, ending sets for adjectives, "(adv.)" for adverbs. Returns
// "" when the entry is best printed as the bare lemma.
func morphologyFor(a morph.Analysis) string {
	if m, ok := irregularAdjectives[a.Lemma]; ok {
		return m
	}
	if m, ok := irregularPronouns[a.Lemma]; ok {
		return m
	}
	if a.HasFeature(morph.AdverbF) || a.HasFeature(morph.Adverbial) {
		return "(adv.)"
	}
	if a.HasFeature(morph.ArticleF) {
		return "ὁ/ἡ/τό"
	}
	if isPronoun(a) {
		return pronounMorphology(a)
	}
	if morph.IsAdjectiveClass(a.MorphClasses) {
		return adjectiveMorphology(a)
	}
	if a.PartOfSpeech == morph.Noun {
		return nounMorphology(a)
	}
	return ""
}

func isPronoun(a morph.Analysis) bool {
	return a.PartOfSpeech == morph.Pronoun ||
		a.HasFeature(morph.Demonstrative) ||
		a.HasFeature(morph.RelativePronoun) ||
		a.HasFeature(morph.PersonalPronoun) ||
		a.HasFeature(morph.IndefiniteRelative) ||
		a.HasClass(morph.PronAdj1) ||
		a.HasClass(morph.PronAdj3)
}

func pronounMorphology(a morph.Analysis) string {
	if !a.HasFeature(morph.Masculine) {
		return ""
	}
	switch {
	case strings.HasSuffix(a.Lemma, "ος"):
		return osEndingSet(a.Lemma)
	case a.HasFeature(morph.MascFem):
		return a.Lemma + ", τό"
	case a.HasFeature(morph.MascFemNeut):
		return a.Lemma
	}
	return ""
}

func adjectiveMorphology(a morph.Analysis) string {
	lemma := a.Lemma
	accented := finalSyllableAccented(lemma)

	switch {
	case a.HasClass(morph.Adj212):
		return osEndingSet(lemma)
	case a.HasClass(morph.Adj22):
		return pick(accented, "όν", "ον")
	case a.HasClass(morph.Adj33):
		return "ές"
	case a.HasClass(morph.UsEiaU):
		return "εῖα, ύ"
	case a.HasClass(morph.AsAsaAn):
		return "ασα, αν"
	case a.HasClass(morph.WnOn), a.HasClass(morph.WnOnComp):
		return pick(accented, "όν", "ον")
	}

	// no class gave a pattern; fall back to the lemma's ending
	switch {
	case strings.HasSuffix(lemma, "ος"):
		if a.HasFeature(morph.Feminine) {
			return osEndingSet(lemma)
		}
		return pick(accented, "όν", "ον")
	case strings.HasSuffix(lemma, "ης"):
		return "ές"
	case strings.HasSuffix(lemma, "υς"):
		return "εῖα, ύ"
	case strings.HasSuffix(lemma, "ων"):
		return pick(accented, "όν", "ον")
	}
	return ""
}

// osEndingSet returns the feminine/neuter ending pair for an -ος
// lemma. Stems in ε, ι or ρ take alpha feminines; an accented final
// syllable keeps the accent on the endings.
func osEndingSet(lemma string) string {
	accented := finalSyllableAccented(lemma)
	runes := []rune(lemma)
	if len(runes) >= 3 {
		switch runes[len(runes)-3] {
		case 'ε', 'ι', 'ρ', 'έ', 'ί':
			return pick(accented, "ά, όν", "α, ον")
		}
	}
	return pick(accented, "ή, όν", "α, ον")
}

func nounMorphology(a morph.Analysis) string {
	if a.Lemma == "ἀνήρ" {
		return "ἀνδρός, ὁ"
	}

	article := ""
	switch {
	case a.HasFeature(morph.Masculine):
		article = "ὁ"
	case a.HasFeature(morph.Feminine):
		article = "ἡ"
	case a.HasFeature(morph.Neuter):
		article = "τό"
	case a.HasFeature(morph.MascFem):
		article = "ὁ, ἡ"
	}

	if a.HasFeature(morph.Indeclinable) {
		return article
	}

	gen := genitiveEnding(a)
	if gen == "" {
		return article
	}
	if article == "" {
		return gen
	}
	return gen + ", " + article
}

// genitiveEnding derives the genitive shown for third-declension
// nouns; first/second declension genitives are predictable and left
// out, matching printed school vocabularies.
func genitiveEnding(a morph.Analysis) string {
	thirdDecl := a.HasClass(morph.ThirdDeclension) ||
		a.HasClass(morph.IrregularDecl3) ||
		a.HasClass(morph.SDosStem) ||
		a.HasClass(morph.IsIdosStem) ||
		a.HasClass(morph.HsEosStem) ||
		a.HasClass(morph.MaMatos) ||
		a.HasClass(morph.NNos) ||
		a.HasClass(morph.HrEros)
	if !thirdDecl {
		return ""
	}

	lemma := a.Lemma
	switch {
	case strings.HasSuffix(lemma, "ις") && a.HasClass(morph.IsEws):
		return "εως"
	case strings.HasSuffix(lemma, "μα") && a.HasClass(morph.MaMatos):
		return "ματος"
	case strings.HasSuffix(lemma, "ηρ") && a.HasClass(morph.HrEros):
		return "ερος"
	case strings.HasSuffix(lemma, "ις") && a.HasClass(morph.IsIdosStem):
		return "ιδος"
	case strings.HasSuffix(lemma, "ων"):
		return "οντος"
	case strings.HasSuffix(lemma, "ης") && a.HasClass(morph.HsEosStem):
		return "ους"
	case strings.HasSuffix(lemma, "ος") && a.HasClass(morph.HsEosStem):
		return "εος"
	}
	return "ος"
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// accentedVowels are the vowels bearing an acute, grave or circumflex
// (with or without iota subscript).
const accentedVowels = "άέήίόύώὰὲὴὶὸὺὼᾶῆῖῦῶᾷῇῷΐΰῒῢ"

// vowels are all unaccented and accented Greek vowels.
const vowels = "αεηιουωάέήίόύώὰὲὴὶὸὺὼᾶῆῖῦῶᾷῇῷϊϋΐΰῒῢᾳῃῳ"

// diphthongs in their unaccented spellings; an accent on either letter
// counts as accenting the diphthong.
var diphthongs = []string{"αι", "ει", "οι", "υι", "αυ", "ευ", "ου", "ηυ"}

// finalSyllableAccented reports whether the last syllable of a Greek
// word carries an accent, which decides whether printed ending sets
// keep their accents (ή, όν vs α, ον).
func finalSyllableAccented(word string) bool {
	runes := []rune(word)
	type syllable struct{ accented bool }
	var sylls []syllable

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			pair := string([]rune{baseVowel(runes[i]), baseVowel(runes[i+1])})
			if isDiphthong(pair) {
				acc := isAccented(runes[i]) || isAccented(runes[i+1])
				sylls = append(sylls, syllable{accented: acc})
				i += 2
				continue
			}
		}
		if strings.ContainsRune(vowels, runes[i]) {
			sylls = append(sylls, syllable{accented: isAccented(runes[i])})
		}
		i++
	}

	if len(sylls) == 0 {
		return false
	}
	return sylls[len(sylls)-1].accented
}

func isAccented(r rune) bool {
	return strings.ContainsRune(accentedVowels, r)
}

func isDiphthong(pair string) bool {
	for _, d := range diphthongs {
		if pair == d {
			return true
		}
	}
	return false
}

// baseVowels maps accented vowels to their bare letters for diphthong
// detection.
var baseVowels = map[rune]rune{
	'ά': 'α', 'ὰ': 'α', 'ᾶ': 'α', 'ᾷ': 'α', 'ᾳ': 'α',
	'έ': 'ε', 'ὲ': 'ε',
	'ή': 'η', 'ὴ': 'η', 'ῆ': 'η', 'ῇ': 'η', 'ῃ': 'η',
	'ί': 'ι', 'ὶ': 'ι', 'ῖ': 'ι', 'ϊ': 'ι', 'ΐ': 'ι', 'ῒ': 'ι',
	'ό': 'ο', 'ὸ': 'ο',
	'ύ': 'υ', 'ὺ': 'υ', 'ῦ': 'υ', 'ϋ': 'υ', 'ΰ': 'υ', 'ῢ': 'υ',
	'ώ': 'ω', 'ὼ': 'ω', 'ῶ': 'ω', 'ῷ': 'ω', 'ῳ': 'ω',
}

func baseVowel(r rune) rune {
	if b, ok := baseVowels[r]; ok {
		return b
	}
	return r
}
