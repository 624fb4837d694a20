package kmedoids

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/viant/seqmine/sequence"
	"gonum.org/v1/gonum/mat"
)

func seed(x mat.Symmetric, p Params) ([]int, error) {
	n := x.SymmetricDim()
	var medoids []int
	switch p.Init {
	case InitPlusPlus, "":
		medoids = plusPlus(x, p.K, rand.New(rand.NewSource(p.Seed)))
	case InitRandom:
		distinct := distinctRows(x)
		if len(distinct) < p.K {
			return nil, fmt.Errorf("kmedoids: %d distinct rows, cannot draw %d medoids: %w", len(distinct), p.K, sequence.ErrInvalidInput)
		}
		rng := rand.New(rand.NewSource(p.Seed))
		for _, i := range rng.Perm(len(distinct))[:p.K] {
			medoids = append(medoids, distinct[i])
		}
	case InitExplicit:
		if len(p.Medoids) != p.K {
			return nil, fmt.Errorf("kmedoids: got %d explicit medoids for k=%d: %w", len(p.Medoids), p.K, sequence.ErrInvalidInput)
		}
		seen := make(map[int]bool, p.K)
		for _, m := range p.Medoids {
			if m < 0 || m >= n {
				return nil, fmt.Errorf("kmedoids: medoid %d out of range [0,%d): %w", m, n, sequence.ErrInvalidInput)
			}
			if seen[m] {
				return nil, fmt.Errorf("kmedoids: duplicate medoid %d: %w", m, sequence.ErrInvalidInput)
			}
			seen[m] = true
		}
		medoids = append(medoids, p.Medoids...)
	default:
		return nil, fmt.Errorf("kmedoids: unknown init %q: %w", p.Init, sequence.ErrUnsupportedConfiguration)
	}
	sort.Ints(medoids)
	return medoids, nil
}

// plusPlus fixes item 0 as the first medoid, then draws each next medoid by
// roulette over the distance to the closest medoid chosen so far.
func plusPlus(x mat.Symmetric, k int, rng *rand.Rand) []int {
	n := x.SymmetricDim()
	medoids := []int{0}
	chosen := make([]bool, n)
	chosen[0] = true
	closest := make([]float64, n)
	for i := range closest {
		closest[i] = x.At(i, 0)
	}
	for len(medoids) < k {
		sum := 0.0
		for _, d := range closest {
			sum += d
		}
		next := -1
		if sum > 0 {
			r := rng.Float64() * sum
			cum := 0.0
			for i, d := range closest {
				if d <= 0 {
					continue
				}
				cum += d
				next = i
				if cum >= r {
					break
				}
			}
		}
		if next < 0 {
			// every remaining item coincides with a medoid
			for i := 0; i < n; i++ {
				if !chosen[i] {
					next = i
					break
				}
			}
		}
		medoids = append(medoids, next)
		chosen[next] = true
		for i := range closest {
			if d := x.At(i, next); d < closest[i] {
				closest[i] = d
			}
		}
	}
	return medoids
}

// distinctRows returns the first index of every distinct row.
func distinctRows(x mat.Symmetric) []int {
	n := x.SymmetricDim()
	var out []int
	for i := 0; i < n; i++ {
		dup := false
		for _, j := range out {
			if sameRow(x, i, j) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, i)
		}
	}
	return out
}

func sameRow(x mat.Symmetric, i, j int) bool {
	n := x.SymmetricDim()
	for c := 0; c < n; c++ {
		if x.At(i, c) != x.At(j, c) {
			return false
		}
	}
	return true
}
