// Package character evaluates the additive characters of GF(q) and the
// multiplicative characters of GF(q^2)^* as exact roots of unity.
package character

import (
	"github.com/jamwevan/MATH-440/cyclo"
)

// Evaluator holds the character orders for one q.
type Evaluator struct {
	q int
	m int // q^2 - 1
}

// New returns the evaluator for GF(q^2) over GF(q).
func New(q int) *Evaluator {
	return &Evaluator{q: q, m: q*q - 1}
}

// Psi is the canonical additive character t -> zeta_q^t.
func (e *Evaluator) Psi(t int) cyclo.Root {
	return cyclo.NewRoot(t, e.q)
}

// Chi is the multiplicative character of index k evaluated at the
// exponent n: zeta_(q^2-1)^(k*n). Both chi_theta and chi_alpha use it.
func (e *Evaluator) Chi(k, n int) cyclo.Root {
	return cyclo.NewRoot(k%e.m*(n%e.m), e.m)
}

// Ring returns the cyclotomic ring containing every product of the above.
func (e *Evaluator) Ring() (*cyclo.Ring, error) {
	return cyclo.NewRing(e.q, e.m)
}
