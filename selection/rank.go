package selection

import (
	"sort"

	"github.com/viant/seqmine/sequence"
)

// Ranked is a pattern with its support.
type Ranked struct {
	Pattern int `json:"pattern"`
	// Support is the number of corpus sequences containing the pattern as a
	// subsequence.
	Support int `json:"support"`
}

// RankBySupport orders patterns by decreasing support in corpus. Patterns
// with equal support keep their input order.
func RankBySupport(patterns []sequence.Sequence, corpus sequence.Corpus) []Ranked {
	out := make([]Ranked, len(patterns))
	for i, p := range patterns {
		out[i].Pattern = i
		for _, s := range corpus {
			if sequence.IsSubsequence(p, s) {
				out[i].Support++
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Support > out[j].Support })
	return out
}
