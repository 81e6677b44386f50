// Package dlog indexes GF(q^2)^* by discrete logarithm relative to the
// generator of a field.Field.
package dlog

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"

	"github.com/jamwevan/MATH-440/field"
	"github.com/jamwevan/MATH-440/utils"
)

// Index holds the exp/log tables of one field. It is read-only after
// construction and safe for concurrent use.
type Index struct {
	f   *field.Field
	exp []uint32 // exp[i] = Index(g^i), i < q^2-1
	log []uint32 // log[Index(x)]; log[0] holds q^2-1 and is never a valid exponent
}

// Generate computes the tables by walking the powers of the generator.
// Progress is drawn to progress when it is not nil.
func Generate(f *field.Field, progress io.Writer) (*Index, error) {
	m := f.Order()
	n := f.Size()

	exp := make([]uint32, m)
	lg := make([]uint32, n)

	x := field.Element{A: 1}
	g := f.Generator()
	bar := utils.NewBar(progress, m, fmt.Sprintf("log table GF(%d^2)", f.Q()))
	for i := 0; i < m; i++ {
		if x.IsOne() && i != 0 {
			return nil, fmt.Errorf("element %v is not a generator: order %d", g, i)
		}
		exp[i] = uint32(f.Index(x))
		lg[f.Index(x)] = uint32(i)
		x = f.Mul(x, g)
		bar.Add(1)
	}
	bar.Finish()
	lg[0] = uint32(m)
	log.Debug("Generated discrete log table", "q", f.Q(), "order", m)
	return &Index{f: f, exp: exp, log: lg}, nil
}

// Field returns the field the index was built for.
func (ix *Index) Field() *field.Field { return ix.f }

// Order returns q^2 - 1.
func (ix *Index) Order() int { return len(ix.exp) }

// Exp returns g^i for any integer i.
func (ix *Index) Exp(i int) field.Element {
	m := len(ix.exp)
	i %= m
	if i < 0 {
		i += m
	}
	return ix.f.FromIndex(int(ix.exp[i]))
}

// Log returns the exponent of x in [0, q^2-2]. x must be nonzero: the zero
// element has no logarithm and callers exclude it from the group up front.
func (ix *Index) Log(x field.Element) int {
	if x.IsZero() {
		panic("dlog: logarithm of zero")
	}
	return int(ix.log[ix.f.Index(x)])
}

// Trace returns x + x^q as an integer residue in [0, q).
func (ix *Index) Trace(x field.Element) int {
	tr := ix.f.Trace(x)
	if !tr.IsScalar() {
		panic(fmt.Sprintf("dlog: trace of %v left GF(q): %v", x, tr))
	}
	return tr.A
}

// NormLog returns (q+1)*log(x) mod (q^2-1), the logarithm of the norm of x.
func (ix *Index) NormLog(x field.Element) int {
	return (ix.f.Q() + 1) * ix.Log(x) % len(ix.exp)
}

// verify checks that loaded tables describe this field and generator.
func (ix *Index) verify() error {
	m, n := ix.f.Order(), ix.f.Size()
	if len(ix.exp) != m || len(ix.log) != n {
		return fmt.Errorf("table sizes %d/%d, want %d/%d", len(ix.exp), len(ix.log), m, n)
	}
	if ix.log[0] != uint32(m) {
		return fmt.Errorf("log[0] = %d, want %d", ix.log[0], m)
	}
	g := ix.f.Generator()
	x := field.Element{A: 1}
	for i := 0; i < m; i++ {
		if int(ix.exp[i]) != ix.f.Index(x) {
			return fmt.Errorf("exp[%d] = %d, want %d", i, ix.exp[i], ix.f.Index(x))
		}
		if int(ix.log[ix.exp[i]]) != i {
			return fmt.Errorf("log[%d] = %d, want %d", ix.exp[i], ix.log[ix.exp[i]], i)
		}
		x = ix.f.Mul(x, g)
	}
	return nil
}
