package sequence

// LCSLen returns the length of the longest common subsequence of x and y
// using the O(|x|·|y|) dynamic programming table.
func LCSLen(x, y Sequence) int {
	m, n := len(x), len(y)
	c := make([][]int, m+1)
	for i := range c {
		c[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				c[i][j] = c[i-1][j-1] + 1
			} else if c[i][j-1] >= c[i-1][j] {
				c[i][j] = c[i][j-1]
			} else {
				c[i][j] = c[i-1][j]
			}
		}
	}
	return c[m][n]
}

// LCS computes D(X,Y) = 1 - 2·LCS(X,Y) / (|X|+|Y|).
func LCS(a, b Sequence) (float64, error) {
	if err := checkPair("lcs", a, b); err != nil {
		return 0, err
	}
	l := float64(LCSLen(a, b))
	return 1 - 2*l/float64(len(a)+len(b)), nil
}

// LCSMod computes D(X,Y) = (|X|+|Y| - 2·LCS(X,Y)) / (|X|+|Y|). It is
// algebraically identical to LCS.
func LCSMod(a, b Sequence) (float64, error) {
	if err := checkPair("lcs_mod", a, b); err != nil {
		return 0, err
	}
	total := len(a) + len(b)
	return float64(total-2*LCSLen(a, b)) / float64(total), nil
}

// LCSMin computes D(X,Y) = 1 - LCS(X,Y) / min(|X|,|Y|).
func LCSMin(a, b Sequence) (float64, error) {
	if err := checkPair("lcs_min", a, b); err != nil {
		return 0, err
	}
	return 1 - float64(LCSLen(a, b))/float64(min(len(a), len(b))), nil
}

// LCSExt computes D(X,Y) = 1 - (LCS²/(|X|·|Y|)) · (min²/max²), adding a
// penalty for length imbalance.
func LCSExt(a, b Sequence) (float64, error) {
	if err := checkPair("lcs_ext", a, b); err != nil {
		return 0, err
	}
	l := float64(LCSLen(a, b))
	la, lb := float64(len(a)), float64(len(b))
	lo, hi := min(la, lb), max(la, lb)
	return 1 - (l*l/(la*lb))*(lo*lo/(hi*hi)), nil
}
