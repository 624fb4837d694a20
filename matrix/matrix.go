package matrix

import (
	"fmt"

	"github.com/viant/seqmine/sequence"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable N×N symmetric distance matrix with a zero diagonal.
type Matrix struct {
	sym *mat.SymDense
}

// N returns the number of items.
func (m *Matrix) N() int {
	if m == nil || m.sym == nil {
		return 0
	}
	return m.sym.SymmetricDim()
}

// At returns the distance between items i and j.
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	n := m.N()
	row := make([]float64, n)
	for j := 0; j < n; j++ {
		row[j] = m.sym.At(i, j)
	}
	return row
}

// Raw exposes the underlying gonum matrix for read-only use.
func (m *Matrix) Raw() mat.Symmetric { return m.sym }

// Dense returns the matrix as a freshly allocated slice of rows.
func (m *Matrix) Dense() [][]float64 {
	n := m.N()
	out := make([][]float64, n)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// FromDense wraps a caller-precomputed matrix. It must be square, symmetric
// and have a zero diagonal.
func FromDense(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n < 2 {
		return nil, fmt.Errorf("matrix: need at least 2 rows, got %d: %w", n, sequence.ErrInvalidInput)
	}
	sym := mat.NewSymDense(n, nil)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("matrix: row %d has %d columns, want %d: %w", i, len(rows[i]), n, sequence.ErrInvalidInput)
		}
		if rows[i][i] != 0 {
			return nil, fmt.Errorf("matrix: non-zero diagonal at %d: %w", i, sequence.ErrInvalidInput)
		}
		for j := 0; j < i; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("matrix: asymmetric cell (%d,%d): %w", i, j, sequence.ErrInvalidInput)
			}
			sym.SetSym(i, j, rows[i][j])
		}
	}
	return &Matrix{sym: sym}, nil
}

// UniqueRows returns the items that have no other item at distance zero,
// i.e. whose sequence occurs exactly once in the corpus.
func (m *Matrix) UniqueRows() []int {
	n := m.N()
	var out []int
	for i := 0; i < n; i++ {
		zeros := 0
		for j := 0; j < n; j++ {
			if m.sym.At(i, j) == 0 {
				zeros++
			}
		}
		if zeros == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Without returns a new matrix with the given items removed, together with
// the original index of every kept row.
func (m *Matrix) Without(indices []int) (*Matrix, []int) {
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		drop[i] = struct{}{}
	}
	n := m.N()
	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if _, ok := drop[i]; !ok {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return &Matrix{}, kept
	}
	sym := mat.NewSymDense(len(kept), nil)
	for a, i := range kept {
		for b := 0; b < a; b++ {
			sym.SetSym(a, b, m.sym.At(i, kept[b]))
		}
	}
	return &Matrix{sym: sym}, kept
}
