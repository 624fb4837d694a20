package selection

import (
	"fmt"
	"strings"

	"github.com/viant/seqmine/sequence"
)

// Center selects what members are measured against.
type Center string

const (
	// CenterMedoid uses the cluster's representative item and the distance matrix.
	CenterMedoid Center = "medoid"
	// CenterCentroid uses the cluster centroid and Euclidean distance between feature rows.
	CenterCentroid Center = "centroid"
)

// Mode selects how members are picked.
type Mode string

const (
	// ModeIdentical keeps members at distance exactly 0, in member order.
	ModeIdentical Mode = "identical"
	// ModeNearest keeps the N closest members, closest first.
	ModeNearest Mode = "nearest"
)

// Options configures Select.
type Options struct {
	Center Center
	Mode   Mode
	N      int
}

// ParseCenter resolves a center name.
func ParseCenter(name string) (Center, error) {
	switch c := Center(strings.ToLower(strings.TrimSpace(name))); c {
	case CenterMedoid, CenterCentroid:
		return c, nil
	case "":
		return CenterMedoid, nil
	default:
		return "", fmt.Errorf("selection: unknown center %q: %w", name, sequence.ErrUnsupportedConfiguration)
	}
}

// ParseMode resolves a mode name.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case ModeIdentical, ModeNearest:
		return m, nil
	case "":
		return ModeNearest, nil
	default:
		return "", fmt.Errorf("selection: unknown mode %q: %w", name, sequence.ErrUnsupportedConfiguration)
	}
}
