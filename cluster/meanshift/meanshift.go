// Package meanshift implements flat-kernel mean shift clustering over dense
// feature rows.
package meanshift

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/seqmine/sequence"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultQuantile is used by Fit when the bandwidth has to be estimated.
const DefaultQuantile = 0.3

// Params configures Fit. A Bandwidth that is not positive is estimated with
// EstimateBandwidth(data, DefaultQuantile).
type Params struct {
	Bandwidth float64
	MaxIter   int
}

// Result holds the outcome of Fit. Modes are ordered by decreasing
// population; Labels holds the closest mode of every item.
type Result struct {
	Modes     [][]float64
	Labels    []int
	Bandwidth float64
	// Converged is false when at least one seed hit MaxIter before settling.
	Converged bool
}

type mode struct {
	center     []float64
	population int
}

// Fit shifts a seed from every row to the mean of the rows within Bandwidth
// until it settles, merges modes closer than Bandwidth keeping the most
// populated one, then labels every row with its closest mode.
func Fit(ctx context.Context, data *mat.Dense, p Params) (*Result, error) {
	if data == nil || data.IsEmpty() {
		return nil, fmt.Errorf("meanshift: no data: %w", sequence.ErrInvalidInput)
	}
	if p.MaxIter < 1 {
		p.MaxIter = 300
	}
	bandwidth := p.Bandwidth
	if bandwidth <= 0 {
		bandwidth = EstimateBandwidth(data, DefaultQuantile)
	}
	n, d := data.Dims()
	stop := 1e-3 * bandwidth
	converged := true

	modes := make([]mode, 0, n)
	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		center := mat.Row(nil, s, data)
		next := make([]float64, d)
		population := 0
		settled := false
		for it := 0; it < p.MaxIter; it++ {
			for i := range next {
				next[i] = 0
			}
			population = 0
			for i := 0; i < n; i++ {
				row := data.RawRowView(i)
				if floats.Distance(row, center, 2) <= bandwidth {
					floats.Add(next, row)
					population++
				}
			}
			if population == 0 {
				break
			}
			floats.Scale(1/float64(population), next)
			shift := floats.Distance(next, center, 2)
			copy(center, next)
			if shift <= stop {
				settled = true
				break
			}
		}
		if !settled {
			converged = false
		}
		if population > 0 {
			modes = append(modes, mode{center: center, population: population})
		}
	}

	sort.SliceStable(modes, func(i, j int) bool { return modes[i].population > modes[j].population })
	var kept []mode
	for _, m := range modes {
		unique := true
		for _, k := range kept {
			if floats.Distance(m.center, k.center, 2) < bandwidth || floats.Equal(m.center, k.center) {
				unique = false
				break
			}
		}
		if unique {
			kept = append(kept, m)
		}
	}

	result := &Result{Labels: make([]int, n), Bandwidth: bandwidth, Converged: converged}
	for _, m := range kept {
		result.Modes = append(result.Modes, m.center)
	}
	for i := 0; i < n; i++ {
		row := data.RawRowView(i)
		best, bestD := 0, floats.Distance(row, kept[0].center, 2)
		for c := 1; c < len(kept); c++ {
			if dd := floats.Distance(row, kept[c].center, 2); dd < bestD {
				best, bestD = c, dd
			}
		}
		result.Labels[i] = best
	}
	return result, nil
}

// EstimateBandwidth averages, over every row, the distance to its
// k-th nearest row (the row itself counted first) with k = quantile*n.
func EstimateBandwidth(data *mat.Dense, quantile float64) float64 {
	n, _ := data.Dims()
	k := int(float64(n) * quantile)
	if k < 1 {
		k = 1
	}
	total := 0.0
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dist[j] = floats.Distance(data.RawRowView(i), data.RawRowView(j), 2)
		}
		sort.Float64s(dist)
		total += dist[k-1]
	}
	return total / float64(n)
}
