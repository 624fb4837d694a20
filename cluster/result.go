package cluster

import (
	"sort"

	"github.com/viant/seqmine/sequence"
)

// Noise is the label of items that belong to no cluster.
const Noise = -1

// raw is what a strategy hands to the result builder. Either labels (one per
// item, Noise allowed) or groups (overlapping member lists) is set. centers,
// when set, designates the representative of every label ordinal.
type raw struct {
	labels      []int
	groups      [][]int
	overlapping bool
	centers     []int
	centroids   [][]float64
	converged   bool
	iterations  int
	inertia     float64
}

// Cluster is one group of items.
type Cluster struct {
	Label int `json:"label"`
	// Members are item indices in ascending order.
	Members []int `json:"members"`
	// Center is the representative item: the medoid, the defining item of an
	// overlapping cluster, or the member with the highest support.
	Center int `json:"center"`
	// Centroid is set by feature strategies that produce synthetic centers.
	Centroid []float64         `json:"centroid,omitempty"`
	Sequence sequence.Sequence `json:"sequence"`
}

// Result is the normalised outcome of one partition call. It is never
// modified after being returned.
type Result struct {
	Strategy string    `json:"strategy"`
	Clusters []Cluster `json:"clusters"`
	// Labels holds the cluster label of every item, Noise when unassigned.
	// For overlapping results it holds the first cluster of every item.
	Labels      []int   `json:"labels"`
	Noise       []int   `json:"noise,omitempty"`
	Overlapping bool    `json:"overlapping"`
	Converged   bool    `json:"converged"`
	Iterations  int     `json:"iterations,omitempty"`
	Inertia     float64 `json:"inertia,omitempty"`
}

// Centers maps every label to its representative item.
func (r *Result) Centers() map[int]int {
	out := make(map[int]int, len(r.Clusters))
	for _, c := range r.Clusters {
		out[c.Label] = c.Center
	}
	return out
}

// Members maps every label to its member items.
func (r *Result) Members() map[int][]int {
	out := make(map[int][]int, len(r.Clusters))
	for _, c := range r.Clusters {
		out[c.Label] = c.Members
	}
	return out
}

// Cluster returns the cluster with the given label.
func (r *Result) Cluster(label int) (*Cluster, bool) {
	i := sort.Search(len(r.Clusters), func(i int) bool { return r.Clusters[i].Label >= label })
	if i < len(r.Clusters) && r.Clusters[i].Label == label {
		return &r.Clusters[i], true
	}
	return nil, false
}

// LabelsOf returns every label item belongs to, in ascending order. Only
// overlapping results return more than one label.
func (r *Result) LabelsOf(item int) []int {
	if !r.Overlapping {
		if item < 0 || item >= len(r.Labels) || r.Labels[item] == Noise {
			return nil
		}
		return []int{r.Labels[item]}
	}
	var out []int
	for _, c := range r.Clusters {
		i := sort.SearchInts(c.Members, item)
		if i < len(c.Members) && c.Members[i] == item {
			out = append(out, c.Label)
		}
	}
	return out
}

// build normalises a strategy's raw output.
func build(name string, in *Input, r *raw) *Result {
	n := len(in.Corpus)
	res := &Result{
		Strategy:    name,
		Overlapping: r.overlapping,
		Converged:   r.converged,
		Iterations:  r.iterations,
		Inertia:     r.inertia,
		Labels:      make([]int, n),
	}
	groups := r.groups
	if !r.overlapping {
		groups = nil
		for i, l := range r.labels {
			if l == Noise {
				res.Noise = append(res.Noise, i)
				continue
			}
			for len(groups) <= l {
				groups = append(groups, nil)
			}
			groups[l] = append(groups[l], i)
		}
		copy(res.Labels, r.labels)
	} else {
		for i := range res.Labels {
			res.Labels[i] = Noise
		}
		for l := len(groups) - 1; l >= 0; l-- {
			for _, i := range groups[l] {
				res.Labels[i] = l
			}
		}
		for i, l := range res.Labels {
			if l == Noise {
				res.Noise = append(res.Noise, i)
			}
		}
	}

	for l, members := range groups {
		if len(members) == 0 {
			continue
		}
		c := Cluster{Label: l, Members: members}
		if l < len(r.centers) {
			c.Center = r.centers[l]
		} else {
			c.Center = supportCenter(in, members)
		}
		if l < len(r.centroids) {
			c.Centroid = r.centroids[l]
		}
		c.Sequence = in.Corpus[c.Center]
		res.Clusters = append(res.Clusters, c)
	}
	return res
}

// supportCenter returns the member with the most zero-distance members
// (itself included). Ties keep the earliest member.
func supportCenter(in *Input, members []int) int {
	best, bestSupport := members[0], 1
	for _, v := range members {
		support := 0
		for _, u := range members {
			if in.identical(v, u) {
				support++
			}
		}
		if support > bestSupport {
			best, bestSupport = v, support
		}
	}
	return best
}
