// Package kmeans implements Lloyd's k-means with k-means++ seeding over
// dense feature rows.
package kmeans

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/viant/seqmine/sequence"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Params configures Fit.
type Params struct {
	K       int
	MaxIter int
	Seed    int64
}

// Result holds the outcome of Fit. Centroids has one row per cluster, Labels
// holds the row of the closest centroid for every item.
type Result struct {
	Centroids  [][]float64
	Labels     []int
	Iterations int
	Converged  bool
	// Inertia is the sum of squared distances to the assigned centroid.
	Inertia float64
}

// Fit clusters the rows of data into p.K clusters.
func Fit(ctx context.Context, data *mat.Dense, p Params) (*Result, error) {
	if data == nil || data.IsEmpty() {
		return nil, fmt.Errorf("kmeans: no data: %w", sequence.ErrInvalidInput)
	}
	n, _ := data.Dims()
	if p.K < 1 || p.K > n {
		return nil, fmt.Errorf("kmeans: k=%d out of range [1,%d]: %w", p.K, n, sequence.ErrInvalidInput)
	}
	if p.MaxIter < 1 {
		return nil, fmt.Errorf("kmeans: max iterations must be positive, got %d: %w", p.MaxIter, sequence.ErrInvalidInput)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	centroids := seedPlusPlus(data, p.K, rng)
	labels := assign(data, centroids)
	result := &Result{Iterations: p.MaxIter}
	for t := 0; t < p.MaxIter; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		centroids = update(data, labels, centroids)
		next := assign(data, centroids)
		if equalInts(labels, next) {
			result.Iterations = t + 1
			result.Converged = true
			break
		}
		labels = next
	}

	k, _ := centroids.Dims()
	result.Labels = labels
	result.Centroids = make([][]float64, k)
	for c := 0; c < k; c++ {
		result.Centroids[c] = mat.Row(nil, c, centroids)
	}
	for i, l := range labels {
		d := floats.Distance(data.RawRowView(i), centroids.RawRowView(l), 2)
		result.Inertia += d * d
	}
	return result, nil
}

func seedPlusPlus(data *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, d := data.Dims()
	centroids := mat.NewDense(k, d, nil)
	centroids.SetRow(0, data.RawRowView(rng.Intn(n)))
	closest := make([]float64, n)
	for i := range closest {
		closest[i] = math.Inf(1)
	}
	for c := 1; c < k; c++ {
		prev := centroids.RawRowView(c - 1)
		total := 0.0
		for i := 0; i < n; i++ {
			dist := floats.Distance(data.RawRowView(i), prev, 2)
			if sq := dist * dist; sq < closest[i] {
				closest[i] = sq
			}
			total += closest[i]
		}
		pick := rng.Intn(n)
		if total > 0 {
			target := rng.Float64() * total
			cum := 0.0
			for i, w := range closest {
				if w == 0 {
					continue
				}
				cum += w
				pick = i
				if cum >= target {
					break
				}
			}
		}
		centroids.SetRow(c, data.RawRowView(pick))
	}
	return centroids
}

func assign(data, centroids *mat.Dense) []int {
	n, _ := data.Dims()
	k, _ := centroids.Dims()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		row := data.RawRowView(i)
		best, bestD := 0, math.Inf(1)
		for c := 0; c < k; c++ {
			if d := floats.Distance(row, centroids.RawRowView(c), 2); d < bestD {
				best, bestD = c, d
			}
		}
		labels[i] = best
	}
	return labels
}

// update recomputes centroids as member means; an empty cluster keeps its
// previous centroid.
func update(data *mat.Dense, labels []int, previous *mat.Dense) *mat.Dense {
	k, d := previous.Dims()
	centroids := mat.NewDense(k, d, nil)
	counts := make([]int, k)
	for i, l := range labels {
		floats.Add(centroids.RawRowView(l), data.RawRowView(i))
		counts[l]++
	}
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			centroids.SetRow(c, previous.RawRowView(c))
			continue
		}
		floats.Scale(1/float64(counts[c]), centroids.RawRowView(c))
	}
	return centroids
}

func equalInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return len(a) == len(b)
}
