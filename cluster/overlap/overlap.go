// Package overlap groups items by shared subsequences. Every distinct
// sequence defines a group holding each item whose sequence contains it as
// an order-preserving subsequence, so an item may belong to many groups.
package overlap

import (
	"context"

	"github.com/viant/seqmine/sequence"
)

// Group is the set of items containing the Defining item's sequence.
type Group struct {
	Defining int
	// Members is ascending and includes Defining.
	Members []int
}

// Fit builds one group per distinct sequence, in order of first occurrence.
// Groups whose only member is the defining item are dropped.
func Fit(ctx context.Context, corpus sequence.Corpus) ([]Group, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	var groups []Group
	for _, d := range corpus.Distinct() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pattern := corpus[d]
		var members []int
		for i, s := range corpus {
			if i == d || sequence.IsSubsequence(pattern, s) {
				members = append(members, i)
			}
		}
		if len(members) < 2 {
			continue
		}
		groups = append(groups, Group{Defining: d, Members: members})
	}
	return groups, nil
}
