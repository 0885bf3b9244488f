package matrix_test

import (
	"testing"

	"github.com/symatlab/symat/expr"
	"github.com/symatlab/symat/matrix"
)

// buildHilbert returns the n×n Hilbert matrix, a dense exact-rational input
// that stresses coefficient growth.
func buildHilbert(b *testing.B, n int) *matrix.Matrix {
	b.Helper()
	cells := make([]expr.Expr, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell, err := expr.Rat(1, int64(i+j+1))
			if err != nil {
				b.Fatal(err)
			}
			cells = append(cells, cell)
		}
	}
	m, err := matrix.New(n, n, cells)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkDeterminantHilbert5(b *testing.B) {
	m := buildHilbert(b, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Determinant(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRREFHilbert5(b *testing.B) {
	m := buildHilbert(b, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.RREF(m); err != nil {
			b.Fatal(err)
		}
	}
}
