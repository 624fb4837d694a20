package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopK(t *testing.T) {
	top := newTopK(2)
	for i, d := range []float64{5, 3, 3, 1, 4} {
		top.offer(Entry{Distance: d, Item: i})
	}
	assert.Equal(t, []Entry{{1, 3}, {3, 1}}, top.drain())

	empty := newTopK(0)
	empty.offer(Entry{Distance: 1})
	assert.Empty(t, empty.drain())
}

func TestTopK_Ties(t *testing.T) {
	top := newTopK(2)
	for _, item := range []int{4, 2, 7} {
		top.offer(Entry{Distance: 2, Item: item})
	}
	assert.Equal(t, []Entry{{2, 2}, {2, 4}}, top.drain())

	top = newTopK(2)
	for _, item := range []int{4, 2} {
		top.offer(Entry{Distance: 2, Item: item})
	}
	top.offer(Entry{Distance: 1, Item: 9})
	assert.Equal(t, []Entry{{1, 9}, {2, 2}}, top.drain())
}
