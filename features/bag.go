package features

import (
	"sort"

	"github.com/viant/seqmine/sequence"
)

// Vocabulary maps every distinct token to its column.
type Vocabulary struct {
	Tokens []string
	index  map[string]int
}

// Column returns the column of token, or -1 when the token is unknown.
func (v *Vocabulary) Column(token string) int {
	if c, ok := v.index[token]; ok {
		return c
	}
	return -1
}

// Len returns the number of columns.
func (v *Vocabulary) Len() int { return len(v.Tokens) }

// NewVocabulary collects the distinct tokens of the corpus in lexical order.
func NewVocabulary(corpus sequence.Corpus) *Vocabulary {
	set := map[string]struct{}{}
	for _, s := range corpus {
		for _, t := range s {
			set[t] = struct{}{}
		}
	}
	tokens := make([]string, 0, len(set))
	for t := range set {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	index := make(map[string]int, len(tokens))
	for i, t := range tokens {
		index[t] = i
	}
	return &Vocabulary{Tokens: tokens, index: index}
}

// Encode returns the binary bag-of-calls row of s: column c is 1 when the
// token of column c occurs in s. Unknown tokens are ignored.
func (v *Vocabulary) Encode(s sequence.Sequence) []float32 {
	row := make([]float32, len(v.Tokens))
	for _, t := range s {
		if c, ok := v.index[t]; ok {
			row[c] = 1
		}
	}
	return row
}

// BagOfCalls builds a vocabulary over the corpus and encodes every item.
func BagOfCalls(corpus sequence.Corpus) (*Vocabulary, [][]float32, error) {
	if err := corpus.Validate(); err != nil {
		return nil, nil, err
	}
	vocab := NewVocabulary(corpus)
	rows := make([][]float32, len(corpus))
	for i, s := range corpus {
		rows[i] = vocab.Encode(s)
	}
	return vocab, rows, nil
}
