package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpus_Validate(t *testing.T) {
	assert.ErrorIs(t, Corpus{seq("a")}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Corpus{seq("a"), {}}.Validate(), ErrInvalidInput)
	assert.NoError(t, Corpus{seq("a"), seq("b")}.Validate())
}

func TestCorpus_DistinctAndCounts(t *testing.T) {
	c := Corpus{seq("a", "b"), seq("c"), seq("a", "b"), seq("a b"), seq("c")}
	assert.Equal(t, []int{0, 1, 3}, c.Distinct())
	assert.Equal(t, []int{2, 2, 2, 1, 2}, c.Counts())
	assert.Equal(t, Corpus{seq("c"), seq("a b")}, c.Subset([]int{1, 3}))
}

func TestSequence_Equal(t *testing.T) {
	assert.True(t, seq("a", "b").Equal(seq("a", "b")))
	assert.False(t, seq("a", "b").Equal(seq("b", "a")))
	assert.False(t, seq("a").Equal(seq("a", "a")))
}

func TestCorpus_Subset(t *testing.T) {
	corpus := Corpus{{"a"}, {"b"}, {"c"}}
	assert.Equal(t, Corpus{{"c"}, {"a"}}, corpus.Subset([]int{2, 0}))
	assert.Empty(t, corpus.Subset(nil))
}
