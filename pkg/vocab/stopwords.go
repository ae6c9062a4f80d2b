package vocab

import (
	"bufio"
	"io"
	"strings"

	"github.com/hellenist/greekvocab/pkg/greek"
)

// LoadStopWords reads a stop-word list, one raw word per line. Blank
// lines and lines starting with '#' are skipped.
func LoadStopWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Filter returns the entries whose normalized key matches no stop
// word. Stop words are normalized with the same key function as the
// lemmas, so accent variants of the same word still match; substrings
// never do. Filter is a pure projection: the input slice and its
// entries are left untouched.
func Filter(entries []LemmaEntry, stopwords []string) []LemmaEntry {
	if len(stopwords) == 0 {
		return entries
	}
	stopset := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stopset[greek.Normalize(w)] = struct{}{}
	}

	out := make([]LemmaEntry, 0, len(entries))
	for _, e := range entries {
		if _, stopped := stopset[e.Key]; stopped {
			continue
		}
		out = append(out, e)
	}
	return out
}
