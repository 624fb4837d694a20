package sequence

// Levenshtein computes the token edit distance between a and b normalised by
// max(|a|,|b|). Only two rows of the DP table are kept, sized by the shorter
// sequence.
func Levenshtein(a, b Sequence) (float64, error) {
	if err := checkPair("levenshtein", a, b); err != nil {
		return 0, err
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	previous := make([]int, n+1)
	current := make([]int, n+1)
	for j := range current {
		current[j] = j
	}
	for i := 1; i <= m; i++ {
		previous, current = current, previous
		current[0] = i
		for j := 1; j <= n; j++ {
			add, del := previous[j]+1, current[j-1]+1
			change := previous[j-1]
			if a[j-1] != b[i-1] {
				change++
			}
			current[j] = min(add, del, change)
		}
	}
	return float64(current[n]) / float64(m), nil
}
