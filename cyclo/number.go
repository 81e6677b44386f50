package cyclo

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Number is an exact element of a Ring. The zero value is not usable;
// obtain Numbers from a Ring or an Accumulator.
type Number struct {
	ring *Ring
	c    []int64 // (p-1) rows of phi(m) coefficients
}

// Accumulator sums roots of unity into a Ring. Not safe for concurrent use.
type Accumulator struct {
	ring *Ring
	c    []int64 // p rows; row p-1 is folded away by Number
}

// NewAccumulator returns an empty sum.
func (r *Ring) NewAccumulator() *Accumulator {
	return &Accumulator{ring: r, c: make([]int64, r.p*r.deg)}
}

// Add adds x to the sum.
func (acc *Accumulator) Add(x Root) {
	r := acc.ring
	a, b := r.split(x)
	row := acc.c[a*r.deg : (a+1)*r.deg]
	for t, v := range r.red[b] {
		row[t] += v
	}
}

// Reset empties the sum.
func (acc *Accumulator) Reset() {
	clear(acc.c)
}

// Number returns the canonical form of the sum, using
// zeta_p^(p-1) = -(1 + zeta_p + ... + zeta_p^(p-2)).
func (acc *Accumulator) Number() Number {
	r := acc.ring
	d := r.deg
	last := acc.c[(r.p-1)*d:]
	out := make([]int64, r.Dim())
	for a := 0; a < r.p-1; a++ {
		row := acc.c[a*d : (a+1)*d]
		for t := 0; t < d; t++ {
			out[a*d+t] = row[t] - last[t]
		}
	}
	return Number{ring: r, c: out}
}

// Ring returns the ring x belongs to.
func (x Number) Ring() *Ring { return x.ring }

// Coefficients returns a copy of the coordinates of x; the coefficient of
// zeta_p^a * zeta_m^j sits at a*phi(m) + j.
func (x Number) Coefficients() []int64 {
	return append([]int64(nil), x.c...)
}

// Equal reports exact equality.
func (x Number) Equal(y Number) bool {
	if x.ring != y.ring || len(x.c) != len(y.c) {
		return false
	}
	for i := range x.c {
		if x.c[i] != y.c[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether x is 0.
func (x Number) IsZero() bool {
	for _, v := range x.c {
		if v != 0 {
			return false
		}
	}
	return true
}

// Integer returns x as a rational integer when it is one.
func (x Number) Integer() (int64, bool) {
	for _, v := range x.c[1:] {
		if v != 0 {
			return 0, false
		}
	}
	return x.c[0], true
}

// Add returns x + y. Both must belong to the same ring.
func (x Number) Add(y Number) Number {
	if x.ring != y.ring {
		panic("cyclo: adding numbers of different rings")
	}
	out := make([]int64, len(x.c))
	for i := range out {
		out[i] = x.c[i] + y.c[i]
	}
	return Number{ring: x.ring, c: out}
}

// Neg returns -x.
func (x Number) Neg() Number {
	out := make([]int64, len(x.c))
	for i, v := range x.c {
		out[i] = -v
	}
	return Number{ring: x.ring, c: out}
}

// AppendKey appends a self-delimiting canonical encoding of x to b.
// Two Numbers of one ring have the same key iff they are equal.
func (x Number) AppendKey(b []byte) []byte {
	for _, v := range x.c {
		b = binary.AppendVarint(b, v)
	}
	return b
}

// Key returns AppendKey as a string, usable as a map key.
func (x Number) Key() string {
	return string(x.AppendKey(nil))
}

// Complex is the floating point projection, for display and numeric checks.
func (x Number) Complex() complex128 {
	r := x.ring
	var re, im float64
	for a := 0; a < r.p-1; a++ {
		for j := 0; j < r.deg; j++ {
			v := x.c[a*r.deg+j]
			if v == 0 {
				continue
			}
			turn := float64(a)/float64(r.p) + float64(j)/float64(r.m)
			s, c := math.Sincos(2 * math.Pi * turn)
			re += float64(v) * c
			im += float64(v) * s
		}
	}
	return complex(re, im)
}

// AbsSquared returns |x|^2 of the floating point projection.
func (x Number) AbsSquared() float64 {
	z := x.Complex()
	return real(z)*real(z) + imag(z)*imag(z)
}

type term struct {
	coef int64
	a, j int
}

func (x Number) terms() []term {
	var ts []term
	d := x.ring.deg
	for i, v := range x.c {
		if v != 0 {
			ts = append(ts, term{coef: v, a: i / d, j: i % d})
		}
	}
	return ts
}

// String renders x as a polynomial in z_p and z_m.
func (x Number) String() string {
	return x.format(func(sb *strings.Builder, base, exp int) {
		fmt.Fprintf(sb, "z%d", base)
		if exp != 1 {
			fmt.Fprintf(sb, "^%d", exp)
		}
	}, "*")
}

// LaTeX renders x as a polynomial in \zeta_p and \zeta_m.
func (x Number) LaTeX() string {
	return x.format(func(sb *strings.Builder, base, exp int) {
		fmt.Fprintf(sb, "\\zeta_{%d}", base)
		if exp != 1 {
			fmt.Fprintf(sb, "^{%d}", exp)
		}
	}, " ")
}

func (x Number) format(power func(sb *strings.Builder, base, exp int), sep string) string {
	ts := x.terms()
	if len(ts) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range ts {
		coef := t.coef
		switch {
		case i == 0 && coef < 0:
			sb.WriteString("-")
			coef = -coef
		case i > 0 && coef < 0:
			sb.WriteString(" - ")
			coef = -coef
		case i > 0:
			sb.WriteString(" + ")
		}
		unit := t.a == 0 && t.j == 0
		if coef != 1 || unit {
			fmt.Fprintf(&sb, "%d", coef)
			if !unit {
				sb.WriteString(sep)
			}
		}
		if t.a != 0 {
			power(&sb, x.ring.p, t.a)
			if t.j != 0 {
				sb.WriteString(sep)
			}
		}
		if t.j != 0 {
			power(&sb, x.ring.m, t.j)
		}
	}
	return sb.String()
}
