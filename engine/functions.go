package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/seqmine/sequence"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSequenceFunctions registers the following with the driver:
//
//	seq_distance(a BLOB, b BLOB, metric TEXT) REAL
//	seq_subseq(sub BLOB, seq BLOB) INTEGER (1 when sub is a subsequence of seq)
//	seq_len(a BLOB) INTEGER
//
// Arguments are sequences encoded with sequence.EncodeSequence. Functions are
// visible on connections opened after the first call.
func RegisterSequenceFunctions() error {
	registerOnce.Do(func() {
		if registerErr = sqlite.RegisterDeterministicScalarFunction("seq_distance", 3, seqDistanceImpl); registerErr != nil {
			return
		}
		if registerErr = sqlite.RegisterDeterministicScalarFunction("seq_subseq", 2, seqSubseqImpl); registerErr != nil {
			return
		}
		registerErr = sqlite.RegisterDeterministicScalarFunction("seq_len", 1, seqLenImpl)
	})
	return registerErr
}

func asSequence(arg driver.Value) (sequence.Sequence, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return sequence.DecodeSequence(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for sequence; want BLOB", arg)
	}
}

func seqDistanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("seq_distance: expected 3 arguments, got %d", len(args))
	}
	a, err := asSequence(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asSequence(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	name, ok := args[2].(string)
	if !ok {
		return nil, fmt.Errorf("seq_distance: metric must be TEXT, got %T", args[2])
	}
	m, err := sequence.ParseMetric(name)
	if err != nil {
		return nil, err
	}
	return m.Function()(a, b)
}

func seqSubseqImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("seq_subseq: expected 2 arguments, got %d", len(args))
	}
	sub, err := asSequence(args[0])
	if err != nil {
		return nil, err
	}
	seq, err := asSequence(args[1])
	if err != nil {
		return nil, err
	}
	if sub == nil || seq == nil {
		return nil, nil
	}
	if sequence.IsSubsequence(sub, seq) {
		return int64(1), nil
	}
	return int64(0), nil
}

func seqLenImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("seq_len: expected 1 argument, got %d", len(args))
	}
	s, err := asSequence(args[0])
	if err != nil || s == nil {
		return nil, err
	}
	return int64(len(s)), nil
}
