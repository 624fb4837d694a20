package sequence

import "strings"

// ngrams returns the distinct n-grams of s for every n in 1..len(s), keyed
// by their joined tokens and mapped to their length.
func ngrams(s Sequence) map[string]int {
	out := make(map[string]int, len(s)*(len(s)+1)/2)
	for n := 1; n <= len(s); n++ {
		for i := 0; i+n <= len(s); i++ {
			out[strings.Join(s[i:i+n], "\x1f")] = n
		}
	}
	return out
}

// SeqSim computes 1 - Σ|g| over shared n-grams / Σ|g| over all n-grams, where
// n-grams of every length are generated for both sequences and weighted by
// their length (Wang et al., MSR 2013).
func SeqSim(a, b Sequence) (float64, error) {
	if err := checkPair("seqsim", a, b); err != nil {
		return 0, err
	}
	ga, gb := ngrams(a), ngrams(b)
	var inter, union int
	for g, n := range ga {
		union += n
		if _, ok := gb[g]; ok {
			inter += n
		}
	}
	for g, n := range gb {
		if _, ok := ga[g]; !ok {
			union += n
		}
	}
	return 1 - float64(inter)/float64(union), nil
}
