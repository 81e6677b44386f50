// Package gauss fills the table of Gauss sums
//
//	S(theta, alpha) = sum over x in GF(q^2)^* of psi(Tr x) chi_theta(x) chi_alpha(N x)
//
// for theta in [0, q^2-2] and alpha in [0, q-2], with exact values.
package gauss

import (
	"github.com/jamwevan/MATH-440/cyclo"
)

// Table is the (q^2-1) x (q-1) matrix of Gauss sums, row major, theta
// indexing rows and alpha indexing columns. It is immutable once returned.
type Table struct {
	q          int
	rows, cols int
	ring       *cyclo.Ring
	cells      []cyclo.Number
}

func newTable(q int, ring *cyclo.Ring) *Table {
	rows, cols := q*q-1, q-1
	return &Table{
		q:     q,
		rows:  rows,
		cols:  cols,
		ring:  ring,
		cells: make([]cyclo.Number, rows*cols),
	}
}

func (t *Table) Q() int    { return t.q }
func (t *Table) Rows() int { return t.rows }
func (t *Table) Cols() int { return t.cols }

// Ring returns the cyclotomic ring holding every cell.
func (t *Table) Ring() *cyclo.Ring { return t.ring }

// At returns S(theta, alpha).
func (t *Table) At(theta, alpha int) cyclo.Number {
	return t.cells[theta*t.cols+alpha]
}

// Row returns the cells of row theta. Do not modify.
func (t *Table) Row(theta int) []cyclo.Number {
	return t.cells[theta*t.cols : (theta+1)*t.cols]
}

// RowKey returns a canonical encoding of row theta: two rows have the
// same key iff they are equal entry by entry.
func (t *Table) RowKey(theta int) string {
	var b []byte
	for _, x := range t.Row(theta) {
		b = x.AppendKey(b)
	}
	return string(b)
}

// Equal reports whether both tables hold the same values.
func (t *Table) Equal(o *Table) bool {
	if t.q != o.q || t.rows != o.rows || t.cols != o.cols {
		return false
	}
	for i := range t.cells {
		if t.cells[i].Key() != o.cells[i].Key() {
			return false
		}
	}
	return true
}

// Complex returns the floating point projection of every cell, row major.
func (t *Table) Complex() []complex128 {
	out := make([]complex128, len(t.cells))
	for i, x := range t.cells {
		out[i] = x.Complex()
	}
	return out
}
