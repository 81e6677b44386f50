// Package field models GF(q^2) as GF(q)[w] / (w^2 + s*w + t) for a prime q.
//
// The modulus is the degree two Conway polynomial of q, so the generator w
// and every discrete logarithm agree with the usual computer algebra default.
package field

import (
	"fmt"
)

// Element is a + b*w with a, b in [0, q).
type Element struct {
	A, B int
}

// Field is an immutable GF(q^2). Build it once and share the pointer.
type Field struct {
	q    int
	s, t int // w^2 = -s*w - t

	gen      Element
	elements []Element
	units    []Element
}

// Build constructs GF(q^2) for a prime q together with its generator.
func Build(q int) (*Field, error) {
	if err := Validate(q); err != nil {
		return nil, err
	}
	f := &Field{q: q}
	if err := f.pickModulus(); err != nil {
		return nil, err
	}
	f.gen = Element{A: 0, B: 1}

	n := q * q
	f.elements = make([]Element, n)
	f.units = make([]Element, 0, n-1)
	for i := 0; i < n; i++ {
		x := f.FromIndex(i)
		f.elements[i] = x
		if !x.IsZero() {
			f.units = append(f.units, x)
		}
	}
	return f, nil
}

// pickModulus selects w^2 + s*w + t with t the least primitive root of q and
// -s minimal, subject to w being a generator of the multiplicative group.
func (f *Field) pickModulus() error {
	q := f.q
	f.t = PrimitiveRoot(q)
	for k := 0; k < q; k++ {
		f.s = (q - k) % q
		if !f.irreducible() {
			continue
		}
		if f.isGenerator(Element{A: 0, B: 1}) {
			return nil
		}
	}
	return fmt.Errorf("no primitive quadratic modulus for q = %d", q)
}

func (f *Field) irreducible() bool {
	for r := 0; r < f.q; r++ {
		if (r*r+f.s*r+f.t)%f.q == 0 {
			return false
		}
	}
	return true
}

func (f *Field) isGenerator(x Element) bool {
	if x.IsZero() {
		return false
	}
	order := f.Order()
	for _, p := range PrimeFactors(order) {
		if f.Pow(x, order/p).IsOne() {
			return false
		}
	}
	return true
}

// Q returns the characteristic.
func (f *Field) Q() int { return f.q }

// Size returns q^2.
func (f *Field) Size() int { return f.q * f.q }

// Order returns q^2 - 1, the order of the multiplicative group.
func (f *Field) Order() int { return f.q*f.q - 1 }

// Modulus returns (s, t) of w^2 + s*w + t.
func (f *Field) Modulus() (s, t int) { return f.s, f.t }

// Generator returns the fixed multiplicative generator w.
func (f *Field) Generator() Element { return f.gen }

// Elements lists all q^2 elements ordered by Index. Do not modify.
func (f *Field) Elements() []Element { return f.elements }

// Units lists the q^2 - 1 nonzero elements ordered by Index. Do not modify.
func (f *Field) Units() []Element { return f.units }

// Index maps x to a + b*q.
func (f *Field) Index(x Element) int { return x.A + x.B*f.q }

// FromIndex is the inverse of Index.
func (f *Field) FromIndex(i int) Element { return Element{A: i % f.q, B: i / f.q} }

// Scalar embeds c in GF(q) into GF(q^2).
func (f *Field) Scalar(c int) Element { return Element{A: f.mod(c)} }

func (f *Field) mod(v int) int {
	v %= f.q
	if v < 0 {
		v += f.q
	}
	return v
}

func (f *Field) Add(x, y Element) Element {
	return Element{A: f.mod(x.A + y.A), B: f.mod(x.B + y.B)}
}

func (f *Field) Sub(x, y Element) Element {
	return Element{A: f.mod(x.A - y.A), B: f.mod(x.B - y.B)}
}

func (f *Field) Neg(x Element) Element {
	return Element{A: f.mod(-x.A), B: f.mod(-x.B)}
}

// Mul uses (a+bw)(c+dw) = ac - t*bd + (ad + bc - s*bd)w.
func (f *Field) Mul(x, y Element) Element {
	bd := x.B * y.B % f.q
	return Element{
		A: f.mod(x.A*y.A - f.t*bd),
		B: f.mod(x.A*y.B + x.B*y.A - f.s*bd),
	}
}

// Pow returns x^e for e >= 0 by square and multiply.
func (f *Field) Pow(x Element, e int) Element {
	r := Element{A: 1}
	for e > 0 {
		if e&1 == 1 {
			r = f.Mul(r, x)
		}
		x = f.Mul(x, x)
		e >>= 1
	}
	return r
}

// Frobenius returns x^q. The conjugate of w is -s - w.
func (f *Field) Frobenius(x Element) Element {
	return Element{A: f.mod(x.A - x.B*f.s), B: f.mod(-x.B)}
}

// Trace returns x + x^q, which lies in GF(q).
func (f *Field) Trace(x Element) Element {
	return f.Add(x, f.Frobenius(x))
}

// Norm returns x * x^q, which lies in GF(q).
func (f *Field) Norm(x Element) Element {
	return f.Mul(x, f.Frobenius(x))
}

// Inv returns the multiplicative inverse of a nonzero x.
func (f *Field) Inv(x Element) (Element, error) {
	if x.IsZero() {
		return Element{}, fmt.Errorf("invert zero")
	}
	return f.Pow(x, f.Order()-1), nil
}

// IsScalar reports whether x lies in the prime subfield.
func (x Element) IsScalar() bool { return x.B == 0 }

func (x Element) IsZero() bool { return x.A == 0 && x.B == 0 }

func (x Element) IsOne() bool { return x.A == 1 && x.B == 0 }

func (x Element) String() string {
	switch {
	case x.B == 0:
		return fmt.Sprintf("%d", x.A)
	case x.A == 0:
		return fmt.Sprintf("%d*w", x.B)
	default:
		return fmt.Sprintf("%d+%d*w", x.A, x.B)
	}
}
