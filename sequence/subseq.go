package sequence

// IsSubsequence reports whether the tokens of sub appear in seq in the same
// relative order, not necessarily contiguously.
func IsSubsequence(sub, seq Sequence) bool {
	j := 0
	for _, t := range sub {
		for j < len(seq) && seq[j] != t {
			j++
		}
		if j == len(seq) {
			return false
		}
		j++
	}
	return true
}
