package sequence

import (
	"encoding/binary"
	"fmt"
)

// EncodeSequence encodes a sequence into a BLOB suitable for storage in
// SQLite: a little-endian uint32 token count followed by, for each token, a
// uint32 byte length and the token bytes.
func EncodeSequence(seq Sequence) ([]byte, error) {
	if len(seq) == 0 {
		return nil, nil
	}
	size := 4
	for _, t := range seq {
		size += 4 + len(t)
	}
	b := make([]byte, 0, size)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(seq)))
	for _, t := range seq {
		b = binary.LittleEndian.AppendUint32(b, uint32(len(t)))
		b = append(b, t...)
	}
	return b, nil
}

// DecodeSequence decodes a BLOB produced by EncodeSequence.
func DecodeSequence(b []byte) (Sequence, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) < 4 {
		return nil, fmt.Errorf("sequence: invalid blob length %d", len(b))
	}
	count := binary.LittleEndian.Uint32(b)
	// every token takes at least its 4-byte length prefix
	if uint64(count) > uint64(len(b)-4)/4 {
		return nil, fmt.Errorf("sequence: blob of %d bytes cannot hold %d tokens", len(b), count)
	}
	n := int(count)
	off := 4
	seq := make(Sequence, 0, n)
	for i := 0; i < n; i++ {
		if off+4 > len(b) {
			return nil, fmt.Errorf("sequence: truncated blob at token %d", i)
		}
		l := int(binary.LittleEndian.Uint32(b[off:]))
		off += 4
		if off+l > len(b) {
			return nil, fmt.Errorf("sequence: truncated token %d", i)
		}
		seq = append(seq, string(b[off:off+l]))
		off += l
	}
	if off != len(b) {
		return nil, fmt.Errorf("sequence: %d trailing bytes", len(b)-off)
	}
	return seq, nil
}
