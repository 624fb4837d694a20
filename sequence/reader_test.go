package sequence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCorpus(t *testing.T) {
	input := "# calls per method\n" +
		"Reader.load\tFile.open File.read File.close\n" +
		"\n" +
		"File.open File.close\n"
	callers, corpus, err := ReadCorpus(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Reader.load", ""}, callers)
	assert.Equal(t, Corpus{
		{"File.open", "File.read", "File.close"},
		{"File.open", "File.close"},
	}, corpus)

	_, _, err = ReadCorpus(strings.NewReader("Empty.method\t  \n"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
