package selection

import "container/heap"

// Entry is a selected member and its distance to the cluster center.
type Entry struct {
	Distance float64 `json:"distance"`
	Item     int     `json:"item"`
}

// entries implements heap.Interface as a max-heap on distance; among equal
// distances the larger item index sits closer to the root. A full top-K
// offered a strictly closer entry evicts the root, so among tied entries the
// larger index goes first; ties are drained in ascending item order.
type entries []Entry

func (h entries) Len() int { return len(h) }
func (h entries) Less(i, j int) bool {
	if h[i].Distance != h[j].Distance {
		return h[i].Distance > h[j].Distance
	}
	return h[i].Item > h[j].Item
}
func (h entries) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries) Push(x interface{}) {
	*h = append(*h, x.(Entry))
}

func (h *entries) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topK keeps the k closest entries offered to it.
type topK struct {
	k int
	h entries
}

func newTopK(k int) *topK { return &topK{k: k, h: make(entries, 0, k)} }

// offer keeps e when there is room or when it is strictly closer than the
// farthest kept entry.
func (t *topK) offer(e Entry) {
	if t.k <= 0 {
		return
	}
	if len(t.h) < t.k {
		heap.Push(&t.h, e)
		return
	}
	if e.Distance < t.h[0].Distance {
		t.h[0] = e
		heap.Fix(&t.h, 0)
	}
}

// drain empties the heap, closest first.
func (t *topK) drain() []Entry {
	out := make([]Entry, len(t.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(Entry)
	}
	return out
}
