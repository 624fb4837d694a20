// Package dbscan implements density-based clustering over an arbitrary
// pairwise distance between item indices.
package dbscan

import (
	"fmt"

	"github.com/viant/seqmine/sequence"
)

// Noise labels items that belong to no cluster.
const Noise = -1

const undefined = -2

// DistanceFunc returns the distance between items i and j.
type DistanceFunc func(i, j int) float64

// Fit labels n items. A point with at least minSamples neighbours within eps
// (itself included) is a core point; clusters grow from core points through
// their neighbourhoods. Labels are contiguous from 0 in discovery order,
// Noise marks unreachable items.
func Fit(n int, dist DistanceFunc, eps float64, minSamples int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("dbscan: no items: %w", sequence.ErrInvalidInput)
	}
	if eps < 0 {
		return nil, fmt.Errorf("dbscan: eps must not be negative, got %v: %w", eps, sequence.ErrInvalidInput)
	}
	if minSamples < 1 {
		return nil, fmt.Errorf("dbscan: min samples must be positive, got %d: %w", minSamples, sequence.ErrInvalidInput)
	}

	neighbours := make([][]int, n)
	for i := 0; i < n; i++ {
		neighbours[i] = append(neighbours[i], i)
		for j := 0; j < i; j++ {
			if dist(i, j) <= eps {
				neighbours[i] = append(neighbours[i], j)
				neighbours[j] = append(neighbours[j], i)
			}
		}
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = undefined
	}
	cluster := -1
	for i := 0; i < n; i++ {
		if labels[i] != undefined {
			continue
		}
		if len(neighbours[i]) < minSamples {
			labels[i] = Noise
			continue
		}
		cluster++
		labels[i] = cluster
		queue := append([]int(nil), neighbours[i]...)
		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]
			if labels[q] == Noise {
				// border point
				labels[q] = cluster
			}
			if labels[q] != undefined {
				continue
			}
			labels[q] = cluster
			if len(neighbours[q]) >= minSamples {
				queue = append(queue, neighbours[q]...)
			}
		}
	}
	return labels, nil
}
