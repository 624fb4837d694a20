package kmedoids

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/seqmine/sequence"
	"gonum.org/v1/gonum/mat"
)

// Fit clusters the items of x into p.K clusters.
func Fit(ctx context.Context, x mat.Symmetric, p Params) (*Result, error) {
	if x == nil {
		return nil, fmt.Errorf("kmedoids: nil distance matrix: %w", sequence.ErrUnsupportedConfiguration)
	}
	n := x.SymmetricDim()
	if p.K < 1 || p.K > n {
		return nil, fmt.Errorf("kmedoids: k=%d out of range [1,%d]: %w", p.K, n, sequence.ErrInvalidInput)
	}
	if p.MaxIter < 1 {
		return nil, fmt.Errorf("kmedoids: max iterations must be positive, got %d: %w", p.MaxIter, sequence.ErrInvalidInput)
	}
	switch p.Criterion {
	case CriterionMedoids, CriterionMembers:
	case "":
		p.Criterion = CriterionMedoids
	default:
		return nil, fmt.Errorf("kmedoids: unknown criterion %q: %w", p.Criterion, sequence.ErrUnsupportedConfiguration)
	}

	medoids, err := seed(x, p)
	if err != nil {
		return nil, err
	}

	var previous []int
	for t := 0; t < p.MaxIter; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		labels := assign(x, medoids)
		updated := update(x, medoids, labels)
		converged := false
		switch p.Criterion {
		case CriterionMedoids:
			converged = equalInts(medoids, updated)
		case CriterionMembers:
			converged = t > 0 && equalInts(previous, labels)
		}
		if converged {
			return &Result{Medoids: medoids, Labels: labels, Iterations: t + 1, Converged: true}, nil
		}
		previous = labels
		medoids = updated
	}
	return &Result{Medoids: medoids, Labels: assign(x, medoids), Iterations: p.MaxIter}, nil
}

// assign labels every item with the ordinal of its closest medoid; ties go
// to the lowest ordinal.
func assign(x mat.Symmetric, medoids []int) []int {
	n := x.SymmetricDim()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		best := 0
		bestD := x.At(i, medoids[0])
		for c := 1; c < len(medoids); c++ {
			if d := x.At(i, medoids[c]); d < bestD {
				best, bestD = c, d
			}
		}
		labels[i] = best
	}
	return labels
}

// update moves each medoid to the member with the lowest mean distance to
// its cluster. An empty cluster keeps its medoid. The result is sorted.
func update(x mat.Symmetric, medoids, labels []int) []int {
	members := make([][]int, len(medoids))
	for i, l := range labels {
		members[l] = append(members[l], i)
	}
	out := make([]int, len(medoids))
	for c, group := range members {
		if len(group) == 0 {
			out[c] = medoids[c]
			continue
		}
		best := group[0]
		bestMean := 0.0
		for a, i := range group {
			sum := 0.0
			for _, j := range group {
				sum += x.At(i, j)
			}
			mean := sum / float64(len(group))
			if a == 0 || mean < bestMean {
				best, bestMean = i, mean
			}
		}
		out[c] = best
	}
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
