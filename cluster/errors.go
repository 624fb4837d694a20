package cluster

import "github.com/viant/seqmine/sequence"

// Error taxonomy shared with the sequence package; use errors.Is.
var (
	ErrInvalidInput             = sequence.ErrInvalidInput
	ErrUnsupportedConfiguration = sequence.ErrUnsupportedConfiguration
)
