package vocab

import (
	"strings"
	"testing"
)

func TestRenderPlain(t *testing.T) {
	entries := []LemmaEntry{
		{Lemma: "λέγω", Gloss: "say, speak"},
		{Lemma: "λόγος", Morphology: "ὁ", Gloss: "word, speech, reason"},
	}
	got := Render(entries, ModePlain)
	want := "λέγω: say, speak\nλόγος, ὁ: word, speech, reason"
	if got != want {
		t.Errorf("Render plain = %q, want %q", got, want)
	}
}

func TestRenderLaTeX(t *testing.T) {
	entries := []LemmaEntry{{Lemma: "λόγος", Gloss: "word, speech, reason"}}
	got := Render(entries, ModeLaTeX)
	want := `\vocabentry{λόγος}{word, speech, reason}`
	if got != want {
		t.Errorf("Render latex = %q, want %q", got, want)
	}
}

func TestRenderNoTrailingNewline(t *testing.T) {
	entries := []LemmaEntry{{Lemma: "α"}, {Lemma: "β"}}
	got := Render(entries, ModePlain)
	if strings.HasSuffix(got, "\n") {
		t.Error("rendered output must not end with a newline")
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected one separator newline, got %q", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, ModePlain); got != "" {
		t.Errorf("Render(nil) = %q", got)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("plain"); err != nil || m != ModePlain {
		t.Errorf("ParseMode(plain) = %v, %v", m, err)
	}
	if m, err := ParseMode("latex"); err != nil || m != ModeLaTeX {
		t.Errorf("ParseMode(latex) = %v, %v", m, err)
	}
	// historical alias
	if m, err := ParseMode("markup"); err != nil || m != ModeLaTeX {
		t.Errorf("ParseMode(markup) = %v, %v", m, err)
	}
	if _, err := ParseMode("html"); err == nil {
		t.Error("expected error for unknown format")
	}
}
