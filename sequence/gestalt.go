package sequence

import "github.com/pmezard/go-difflib/difflib"

// Gestalt computes 1 - 2·M/(|X|+|Y|), where M is the number of tokens in the
// contiguous matching blocks found by the Ratcliff/Obershelp algorithm.
// Tokens that fill more than 1% of a sequence of 200 or more are not used to
// seed matches.
func Gestalt(a, b Sequence) (float64, error) {
	if err := checkPair("gestalt", a, b); err != nil {
		return 0, err
	}
	// Matching blocks depend on argument order; a canonical order keeps the
	// distance symmetric.
	if len(a) > len(b) || (len(a) == len(b) && a.Key() > b.Key()) {
		a, b = b, a
	}
	return 1 - difflib.NewMatcher(a, b).Ratio(), nil
}
