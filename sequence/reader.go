package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadCorpus reads one item per line. A line is either
//
//	caller<TAB>token token ...
//
// or bare whitespace separated tokens. Blank lines and lines starting with
// '#' are skipped. The returned callers are parallel to the corpus; bare
// lines have an empty caller.
func ReadCorpus(r io.Reader) ([]string, Corpus, error) {
	var (
		callers []string
		corpus  Corpus
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		caller, calls := "", text
		if i := strings.IndexByte(text, '\t'); i >= 0 {
			caller, calls = strings.TrimSpace(text[:i]), text[i+1:]
		}
		tokens := strings.Fields(calls)
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("sequence: line %d has no calls: %w", line, ErrInvalidInput)
		}
		callers = append(callers, caller)
		corpus = append(corpus, Sequence(tokens))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("sequence: read corpus: %w", err)
	}
	return callers, corpus, nil
}
