package sequence

import (
	"fmt"
	"strings"
)

// Metric names a supported sequence distance.
type Metric string

const (
	MetricLCS         Metric = "lcs"
	MetricLCSMod      Metric = "lcs_mod"
	MetricLCSMin      Metric = "lcs_min"
	MetricLCSExt      Metric = "lcs_ext"
	MetricJaccard     Metric = "jaccard"
	MetricJaccardMin  Metric = "jaccard_min"
	MetricGestalt     Metric = "gestalt"
	MetricSeqSim      Metric = "seqsim"
	MetricLevenshtein Metric = "levenshtein"
)

// Metrics lists every supported metric.
var Metrics = []Metric{
	MetricLCS, MetricLCSMod, MetricLCSMin, MetricLCSExt,
	MetricJaccard, MetricJaccardMin, MetricGestalt, MetricSeqSim, MetricLevenshtein,
}

// DistanceFunc computes the distance between two sequences.
type DistanceFunc func(a, b Sequence) (float64, error)

// ParseMetric resolves a metric name. Both "lcs-mod" and "lcs_mod" spellings
// are accepted.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if m.Function() == nil {
		return "", fmt.Errorf("sequence: unknown metric %q: %w", name, ErrUnsupportedConfiguration)
	}
	return m, nil
}

// Function resolves the callable distance implementation, or nil for an
// unknown metric.
func (m Metric) Function() DistanceFunc {
	switch m {
	case MetricLCS:
		return LCS
	case MetricLCSMod:
		return LCSMod
	case MetricLCSMin:
		return LCSMin
	case MetricLCSExt:
		return LCSExt
	case MetricJaccard:
		return Jaccard
	case MetricJaccardMin:
		return JaccardMin
	case MetricGestalt:
		return Gestalt
	case MetricSeqSim:
		return SeqSim
	case MetricLevenshtein:
		return Levenshtein
	default:
		return nil
	}
}

func checkPair(name string, a, b Sequence) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("sequence: %s on empty sequence (%d, %d): %w", name, len(a), len(b), ErrInvalidInput)
	}
	return nil
}
