package vocab

import (
	"testing"

	"github.com/hellenist/greekvocab/pkg/morph"
)

func TestMorphologyForNouns(t *testing.T) {
	cases := []struct {
		name string
		a    morph.Analysis
		want string
	}{
		{
			"second declension masculine",
			morph.Analysis{Lemma: "λόγος", PartOfSpeech: morph.Noun,
				Features:     []morph.Feature{morph.Masculine, morph.Singular},
				MorphClasses: []morph.MorphClass{morph.SecondDeclension}},
			"ὁ",
		},
		{
			"ma matos neuter shows genitive",
			morph.Analysis{Lemma: "σῶμα", PartOfSpeech: morph.Noun,
				Features:     []morph.Feature{morph.Neuter, morph.Singular},
				MorphClasses: []morph.MorphClass{morph.MaMatos}},
			"ματος, τό",
		},
		{
			"irregular ἀνήρ",
			morph.Analysis{Lemma: "ἀνήρ", PartOfSpeech: morph.Noun,
				Features: []morph.Feature{morph.Masculine}},
			"ἀνδρός, ὁ",
		},
		{
			"indeclinable keeps just the article",
			morph.Analysis{Lemma: "Ἀβραάμ", PartOfSpeech: morph.Noun,
				Features: []morph.Feature{morph.Masculine, morph.Indeclinable}},
			"ὁ",
		},
	}
	for _, c := range cases {
		if got := morphologyFor(c.a); got != c.want {
			t.Errorf("%s: morphologyFor = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMorphologyForAdjectives(t *testing.T) {
	cases := []struct {
		name string
		a    morph.Analysis
		want string
	}{
		{
			"os h on with accented ending",
			morph.Analysis{Lemma: "ἀγαθός", PartOfSpeech: morph.Noun,
				MorphClasses: []morph.MorphClass{morph.Adj212}},
			"ή, όν",
		},
		{
			"epsilon iota rho stems take alpha",
			morph.Analysis{Lemma: "μικρός", PartOfSpeech: morph.Noun,
				MorphClasses: []morph.MorphClass{morph.Adj212}},
			"ά, όν",
		},
		{
			"two termination",
			morph.Analysis{Lemma: "ἄδικος", PartOfSpeech: morph.Noun,
				MorphClasses: []morph.MorphClass{morph.Adj22}},
			"ον",
		},
		{
			"third declension es stems",
			morph.Analysis{Lemma: "ἀληθής", PartOfSpeech: morph.Noun,
				MorphClasses: []morph.MorphClass{morph.Adj33}},
			"ές",
		},
		{
			"us eia u",
			morph.Analysis{Lemma: "ἡδύς", PartOfSpeech: morph.Noun,
				MorphClasses: []morph.MorphClass{morph.UsEiaU}},
			"εῖα, ύ",
		},
	}
	for _, c := range cases {
		if got := morphologyFor(c.a); got != c.want {
			t.Errorf("%s: morphologyFor = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMorphologyForIrregulars(t *testing.T) {
	a := morph.Analysis{Lemma: "πολύς", PartOfSpeech: morph.Noun}
	if got := morphologyFor(a); got != "πολύς, πολλή, πολύ" {
		t.Errorf("πολύς = %q", got)
	}
	p := morph.Analysis{Lemma: "οὗτος", PartOfSpeech: morph.Pronoun}
	if got := morphologyFor(p); got != "οὗτος, αὕτη, τοῦτο" {
		t.Errorf("οὗτος = %q", got)
	}
}

func TestMorphologyForAdverbsAndArticle(t *testing.T) {
	adv := morph.Analysis{Lemma: "καλῶς", PartOfSpeech: morph.Adverb,
		Features: []morph.Feature{morph.AdverbF}}
	if got := morphologyFor(adv); got != "(adv.)" {
		t.Errorf("adverb = %q", got)
	}
	art := morph.Analysis{Lemma: "ὁ", PartOfSpeech: morph.Pronoun,
		Features: []morph.Feature{morph.ArticleF}}
	if got := morphologyFor(art); got != "ὁ/ἡ/τό" {
		t.Errorf("article = %q", got)
	}
}

func TestMorphologyForVerbsEmpty(t *testing.T) {
	v := morph.Analysis{Lemma: "λέγω", PartOfSpeech: morph.Verb}
	if got := morphologyFor(v); got != "" {
		t.Errorf("verb = %q, want bare lemma", got)
	}
}

func TestHeadword(t *testing.T) {
	cases := []struct {
		entry LemmaEntry
		want  string
	}{
		{LemmaEntry{Lemma: "λέγω"}, "λέγω"},
		{LemmaEntry{Lemma: "λόγος", Morphology: "ὁ"}, "λόγος, ὁ"},
		{LemmaEntry{Lemma: "καλῶς", Morphology: "(adv.)"}, "καλῶς (adv.)"},
		{LemmaEntry{Lemma: "σῶμα", Morphology: "ματος, τό"}, "σῶμα, ματος, τό"},
	}
	for _, c := range cases {
		if got := c.entry.Headword(); got != c.want {
			t.Errorf("Headword(%+v) = %q, want %q", c.entry, got, c.want)
		}
	}
}
