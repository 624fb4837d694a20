package sequence

import (
	"fmt"
	"strings"
)

// Sequence is an ordered list of opaque tokens, e.g. fully-qualified API
// method identifiers invoked by one client method.
type Sequence []string

// Equal reports whether s and o hold the same tokens in the same order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Key returns a string that is identical for equal sequences. Tokens are
// joined with a unit separator so that ["a b"] and ["a", "b"] differ.
func (s Sequence) Key() string { return strings.Join(s, "\x1f") }

// Corpus is the ordered set of sequences being clustered. The index of an
// item is its identity for the rest of the pipeline.
type Corpus []Sequence

// Validate checks that the corpus has at least two items and that none of
// them is empty.
func (c Corpus) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("sequence: corpus needs at least 2 items, got %d: %w", len(c), ErrInvalidInput)
	}
	for i, s := range c {
		if len(s) == 0 {
			return fmt.Errorf("sequence: item %d is empty: %w", i, ErrInvalidInput)
		}
	}
	return nil
}

// Distinct returns the index of the first occurrence of every distinct
// sequence, in corpus order.
func (c Corpus) Distinct() []int {
	seen := make(map[string]struct{}, len(c))
	out := make([]int, 0, len(c))
	for i, s := range c {
		k := s.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, i)
	}
	return out
}

// Counts returns, for every item, how many items in the corpus carry an
// identical sequence (itself included).
func (c Corpus) Counts() []int {
	freq := make(map[string]int, len(c))
	for _, s := range c {
		freq[s.Key()]++
	}
	out := make([]int, len(c))
	for i, s := range c {
		out[i] = freq[s.Key()]
	}
	return out
}

// Subset returns a new corpus holding the items at the given indices.
func (c Corpus) Subset(indices []int) Corpus {
	out := make(Corpus, 0, len(indices))
	for _, i := range indices {
		out = append(out, c[i])
	}
	return out
}
