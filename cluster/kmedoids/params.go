package kmedoids

import (
	"fmt"
	"strings"

	"github.com/viant/seqmine/sequence"
)

// Init names a seeding mode.
type Init string

const (
	InitPlusPlus Init = "k-medoids++"
	InitRandom   Init = "random"
	// InitExplicit uses Params.Medoids as given.
	InitExplicit Init = "explicit"
)

// Criterion names a convergence test.
type Criterion string

const (
	// CriterionMedoids stops once the sorted medoid set is unchanged.
	CriterionMedoids Criterion = "medoids"
	// CriterionMembers stops once every cluster keeps the same members.
	CriterionMembers Criterion = "members"
)

// ParseInit resolves a seeding mode name.
func ParseInit(name string) (Init, error) {
	switch v := Init(strings.ToLower(strings.TrimSpace(name))); v {
	case InitPlusPlus, InitRandom, InitExplicit:
		return v, nil
	case "kmedoids++", "k++":
		return InitPlusPlus, nil
	case "":
		return InitPlusPlus, nil
	default:
		return "", fmt.Errorf("kmedoids: unknown init %q: %w", name, sequence.ErrUnsupportedConfiguration)
	}
}

// ParseCriterion resolves a convergence criterion name.
func ParseCriterion(name string) (Criterion, error) {
	switch v := Criterion(strings.ToLower(strings.TrimSpace(name))); v {
	case CriterionMedoids, CriterionMembers:
		return v, nil
	case "":
		return CriterionMedoids, nil
	default:
		return "", fmt.Errorf("kmedoids: unknown criterion %q: %w", name, sequence.ErrUnsupportedConfiguration)
	}
}

// Params configures Fit.
type Params struct {
	K         int
	MaxIter   int
	Init      Init
	Medoids   []int
	Criterion Criterion
	Seed      int64
}

// Result holds the outcome of Fit. Labels[i] is the ordinal of the medoid in
// Medoids that item i is assigned to.
type Result struct {
	Medoids    []int
	Labels     []int
	Iterations int
	Converged  bool
}
