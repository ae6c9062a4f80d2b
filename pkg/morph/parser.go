package morph

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hellenist/greekvocab/pkg/betacode"
)

// ErrAnalyzerUnavailable indicates the external analyzer could not be
// invoked at all, or produced output that is not parsable as a
// response. It is distinct from a recognized form with zero analyses,
// which is reported as an empty result and a nil error.
var ErrAnalyzerUnavailable = errors.New("morphological analyzer unavailable")

// Parser invokes the morpheus cruncher binary to obtain candidate
// analyses for Greek surface forms. The cruncher reads one Beta Code
// word on stdin and writes analysis blocks wrapped in <NL>...</NL>.
//
// Results are cached per surface form: a document repeats its common
// words constantly and each invocation forks a process.
type Parser struct {
	CruncherPath string
	StemlibPath  string // exported to the cruncher as MORPHLIB

	// Definitions supplies glosses for lemmas; nil means analyses carry
	// no gloss.
	Definitions *Definitions

	// Logger receives warnings about discarded malformed records. nil
	// means no logging.
	Logger *log.Logger

	mu    sync.Mutex
	cache map[string][]Analysis
}

// NewParser creates a Parser for the cruncher at cruncherPath with the
// given stem library directory.
func NewParser(cruncherPath, stemlibPath string) *Parser {
	return &Parser{
		CruncherPath: cruncherPath,
		StemlibPath:  stemlibPath,
		cache:        make(map[string][]Analysis),
	}
}

// Analyze returns every candidate analysis for one surface form. An
// empty slice with a nil error means the analyzer did not recognize
// the form. Errors wrap ErrAnalyzerUnavailable.
func (p *Parser) Analyze(ctx context.Context, surface string) ([]Analysis, error) {
	p.mu.Lock()
	if cached, ok := p.cache[surface]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	cmd := exec.CommandContext(ctx, p.CruncherPath)
	cmd.Env = append(os.Environ(), "MORPHLIB="+p.StemlibPath)
	cmd.Stdin = strings.NewReader(betacode.ToBeta(surface) + "\n")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: cruncher %s: %v", ErrAnalyzerUnavailable, p.CruncherPath, err)
	}
	if !utf8.Valid(out) {
		return nil, fmt.Errorf("%w: cruncher output is not valid UTF-8", ErrAnalyzerUnavailable)
	}

	analyses := p.parseOutput(surface, string(out))

	p.mu.Lock()
	p.cache[surface] = analyses
	p.mu.Unlock()
	return analyses, nil
}

// nlBlock matches one analysis block in cruncher output.
var nlBlock = regexp.MustCompile(`(?s)<NL>(.*?)</NL>`)

// parseOutput extracts analyses from raw cruncher output. Each block
// holds whitespace-separated fields: the word-class code, the lemma
// (with a trailing comma), feature tags, then stem-class tags. Blocks
// that cannot be parsed are discarded individually so one malformed
// record does not lose the rest of the response.
func (p *Parser) parseOutput(surface, raw string) []Analysis {
	var analyses []Analysis
	for _, m := range nlBlock.FindAllStringSubmatch(raw, -1) {
		a, ok := p.parseBlock(surface, m[1])
		if !ok {
			if p.Logger != nil {
				p.Logger.Printf("discarding malformed analysis for %q: %q", surface, strings.TrimSpace(m[1]))
			}
			continue
		}
		analyses = append(analyses, a)
	}
	return analyses
}

func (p *Parser) parseBlock(surface, block string) (Analysis, bool) {
	fields := strings.Fields(block)
	if len(fields) < 3 {
		return Analysis{}, false
	}

	pos, ok := ParsePartOfSpeech(fields[0])
	if !ok {
		return Analysis{}, false
	}

	rawLemma := strings.TrimSuffix(fields[1], ",")
	if rawLemma == "" {
		return Analysis{}, false
	}
	lemma := BaseLemma(betacode.ToGreek(rawLemma))

	// stem-class tags contain '_' or ','; everything before the first
	// such field is a feature tag
	split := len(fields)
	for i, f := range fields[2:] {
		if strings.ContainsAny(f, "_,") {
			split = i + 2
			break
		}
	}
	var features []Feature
	for _, f := range fields[2:split] {
		features = append(features, Feature(f))
	}
	var classes []MorphClass
	for _, c := range fields[split:] {
		classes = append(classes, MorphClass(strings.TrimSuffix(c, ",")))
	}

	a := Analysis{
		Surface:      surface,
		Lemma:        lemma,
		PartOfSpeech: pos,
		Features:     features,
		MorphClasses: classes,
	}
	if p.Definitions != nil {
		a.Gloss = p.Definitions.Lookup(rawLemma)
	}
	return a, true
}
