// Package matrix builds and holds the symmetric pairwise distance matrix of a
// corpus. Cells are computed once per unordered pair, optionally fanned out
// across workers, and stored in a gonum SymDense.
package matrix
