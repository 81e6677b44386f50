// Package cyclo implements exact arithmetic on sums of roots of unity.
//
// A Root is a rational fraction of a turn. Sums of roots live in a Ring,
// the cyclotomic field Q(zeta_p) (x) Q(zeta_m) for a prime p coprime to m,
// where every value has exactly one coefficient vector. Equality of Numbers
// is therefore equality of algebraic values, with no rounding involved.
package cyclo

import (
	"fmt"
	"math"
)

// Root is exp(2*pi*i*K/M), kept reduced with 0 <= K < M.
type Root struct {
	K, M int
}

// NewRoot returns exp(2*pi*i*k/m). It panics if m <= 0.
func NewRoot(k, m int) Root {
	if m <= 0 {
		panic(fmt.Sprintf("cyclo: root of unity with order %d", m))
	}
	k %= m
	if k < 0 {
		k += m
	}
	g := gcd(k, m)
	return Root{K: k / g, M: m / g}
}

// One is the trivial root.
func One() Root { return Root{K: 0, M: 1} }

// Mul adds the two fractions of a turn.
func (r Root) Mul(s Root) Root {
	m := lcm(r.M, s.M)
	return NewRoot(r.K*(m/r.M)+s.K*(m/s.M), m)
}

// Pow returns r^n for any integer n.
func (r Root) Pow(n int) Root {
	// reduce first so that K*n stays small
	n %= r.M
	return NewRoot(r.K*n, r.M)
}

// IsOne reports whether r is 1.
func (r Root) IsOne() bool { return r.K == 0 }

// Complex is the floating point projection, for display only.
func (r Root) Complex() complex128 {
	s, c := math.Sincos(2 * math.Pi * float64(r.K) / float64(r.M))
	return complex(c, s)
}

func (r Root) String() string {
	if r.K == 0 {
		return "1"
	}
	return fmt.Sprintf("e^(2pi*i*%d/%d)", r.K, r.M)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// modInverse returns a^-1 mod m, or false when gcd(a, m) != 1.
func modInverse(a, m int) (int, bool) {
	if m == 1 {
		return 0, true
	}
	t, newT := 0, 1
	r, newR := m, ((a%m)+m)%m
	for newR != 0 {
		quo := r / newR
		t, newT = newT, t-quo*newT
		r, newR = newR, r-quo*newR
	}
	if r != 1 {
		return 0, false
	}
	if t < 0 {
		t += m
	}
	return t, true
}
