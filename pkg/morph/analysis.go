package morph

import (
	"regexp"
	"strings"
)

// PartOfSpeech is the coarse word-class code reported by the analyzer.
type PartOfSpeech string

const (
	Noun         PartOfSpeech = "N"
	Verb         PartOfSpeech = "V"
	Adverb       PartOfSpeech = "Adv"
	Particle     PartOfSpeech = "Part"
	Preposition  PartOfSpeech = "Prep"
	Pronoun      PartOfSpeech = "Pron"
	Conjunction  PartOfSpeech = "Conj"
	Interjection PartOfSpeech = "Interj"
	Numeral      PartOfSpeech = "Num"
	Participle   PartOfSpeech = "P"
	Ethnic       PartOfSpeech = "E"
)

var knownPOS = map[PartOfSpeech]string{
	Noun:         "noun",
	Verb:         "verb",
	Adverb:       "adverb",
	Particle:     "particle",
	Preposition:  "preposition",
	Pronoun:      "pronoun",
	Conjunction:  "conjunction",
	Interjection: "interjection",
	Numeral:      "numeral",
	Participle:   "participle",
	Ethnic:       "ethnic",
}

// ParsePartOfSpeech validates an analyzer word-class code.
func ParsePartOfSpeech(code string) (PartOfSpeech, bool) {
	p := PartOfSpeech(code)
	_, ok := knownPOS[p]
	return p, ok
}

// String returns the human-readable name ("noun", "verb", ...).
func (p PartOfSpeech) String() string {
	if name, ok := knownPOS[p]; ok {
		return name
	}
	return string(p)
}

// Feature is one morphological feature tag (gender, number, case,
// tense, ...) as emitted by the analyzer, e.g. "masc", "sg", "aor".
// The set is open: morpheus emits more tags than any fixed list, so
// unknown features are carried through rather than rejected.
type Feature string

const (
	Masculine    Feature = "masc"
	Feminine     Feature = "fem"
	Neuter       Feature = "neut"
	MascFem      Feature = "masc/fem"
	MascFemNeut  Feature = "masc/fem/neut"
	Singular     Feature = "sg"
	Plural       Feature = "pl"
	ArticleF     Feature = "article"
	AdverbF      Feature = "adverb"
	Adverbial    Feature = "adverbial"
	Indeclinable Feature = "indeclform"

	Demonstrative      Feature = "demonstr"
	RelativePronoun    Feature = "relative"
	PersonalPronoun    Feature = "pers_pron"
	IndefiniteRelative Feature = "indef_rel"
)

// MorphClass is a stem/inflection class tag, e.g. "os_ou" or "w_stem".
type MorphClass string

const (
	SecondDeclension MorphClass = "os_ou"
	ThirdDeclension  MorphClass = "s_os"
	IrregularDecl3   MorphClass = "irreg_decl3"
	IsEws            MorphClass = "is_ews"
	IsIdosStem       MorphClass = "is_idos"
	SDosStem         MorphClass = "s_dos"
	HsEosStem        MorphClass = "hs_eos"
	MaMatos          MorphClass = "ma_matos"
	NNos             MorphClass = "n_nos"
	HrEros           MorphClass = "hr_eros"

	Adj212   MorphClass = "os_h_on"
	Adj22    MorphClass = "os_on"
	Adj33    MorphClass = "hs_es"
	UsEiaU   MorphClass = "us_eia_u"
	AsAsaAn  MorphClass = "as_asa_an"
	WnOn     MorphClass = "wn_on"
	WnOnComp MorphClass = "wn_on_comp"
	EisEssa  MorphClass = "eis_essa"
	PronAdj1 MorphClass = "pron_adj1"
	PronAdj3 MorphClass = "pron_adj3"
	ArtAdj   MorphClass = "art_adj"
)

// adjectiveClasses are the stem classes that mark a lemma as an
// adjective even when the analyzer's coarse class says noun.
var adjectiveClasses = map[MorphClass]bool{
	Adj212: true, Adj22: true, Adj33: true,
	UsEiaU: true, AsAsaAn: true, WnOn: true, WnOnComp: true,
	EisEssa: true, ArtAdj: true,
}

// IsAdjectiveClass reports whether any of the classes marks an adjective.
func IsAdjectiveClass(classes []MorphClass) bool {
	for _, c := range classes {
		if adjectiveClasses[c] {
			return true
		}
	}
	return false
}

// Analysis is one candidate morphological parse for a surface form.
type Analysis struct {
	Surface      string // the form handed to the analyzer
	Lemma        string // dictionary headword, trailing homograph digits stripped
	PartOfSpeech PartOfSpeech
	Features     []Feature
	MorphClasses []MorphClass
	Gloss        string // short definition, empty when no gloss source matched
}

// HasFeature reports whether the analysis carries the given tag.
func (a Analysis) HasFeature(f Feature) bool {
	for _, have := range a.Features {
		if have == f {
			return true
		}
	}
	return false
}

// HasClass reports whether the analysis carries the given stem class.
func (a Analysis) HasClass(c MorphClass) bool {
	for _, have := range a.MorphClasses {
		if have == c {
			return true
		}
	}
	return false
}

// Tag renders the analysis as a compact "pos feat feat class" string.
func (a Analysis) Tag() string {
	parts := []string{string(a.PartOfSpeech)}
	for _, f := range a.Features {
		parts = append(parts, string(f))
	}
	for _, c := range a.MorphClasses {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, " ")
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// BaseLemma strips the trailing homograph number morpheus appends to
// distinguish dictionary entries (λόγος1 → λόγος).
func BaseLemma(lemma string) string {
	return trailingDigits.ReplaceAllString(lemma, "")
}
