package sequence

func tokenSet(s Sequence) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for _, t := range s {
		out[t] = struct{}{}
	}
	return out
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

// Jaccard computes D(X,Y) = 1 - |X∩Y| / |X∪Y| over the token sets, ignoring
// order and multiplicity.
func Jaccard(a, b Sequence) (float64, error) {
	if err := checkPair("jaccard", a, b); err != nil {
		return 0, err
	}
	sa, sb := tokenSet(a), tokenSet(b)
	inter := intersectionSize(sa, sb)
	union := len(sa) + len(sb) - inter
	return 1 - float64(inter)/float64(union), nil
}

// JaccardMin computes D(X,Y) = 1 - |X∩Y| / min(|X|,|Y|) over the token sets.
func JaccardMin(a, b Sequence) (float64, error) {
	if err := checkPair("jaccard_min", a, b); err != nil {
		return 0, err
	}
	sa, sb := tokenSet(a), tokenSet(b)
	inter := intersectionSize(sa, sb)
	return 1 - float64(inter)/float64(min(len(sa), len(sb))), nil
}
