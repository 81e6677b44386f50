package field

import (
	"errors"
	"testing"
)

func TestBuildRejectsNonPrimes(t *testing.T) {
	for _, q := range []int{-3, 0, 1, 4, 6, 9, 15, 21} {
		_, err := Build(q)
		if err == nil {
			t.Fatalf("Build(%d) succeeded, want error", q)
		}
		var perr *InvalidParameterError
		if !errors.As(err, &perr) {
			t.Fatalf("Build(%d) error %T, want *InvalidParameterError", q, err)
		}
		if perr.Q != q {
			t.Errorf("error carries q = %d, want %d", perr.Q, q)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Build(%d) error does not match ErrInvalidParameter", q)
		}
	}
}

func TestConwayModulus(t *testing.T) {
	tests := []struct {
		q, s, t int
	}{
		{2, 1, 1},
		{3, 2, 2},
		{5, 4, 2},
		{7, 6, 3},
	}
	for _, tt := range tests {
		f, err := Build(tt.q)
		if err != nil {
			t.Fatalf("Build(%d): %s", tt.q, err)
		}
		s, c := f.Modulus()
		if s != tt.s || c != tt.t {
			t.Errorf("q=%d: modulus w^2 + %dw + %d, want w^2 + %dw + %d", tt.q, s, c, tt.s, tt.t)
		}
	}
}

func TestEnumeration(t *testing.T) {
	for _, q := range []int{2, 3, 5, 7, 11} {
		f, err := Build(q)
		if err != nil {
			t.Fatalf("Build(%d): %s", q, err)
		}
		if len(f.Elements()) != q*q {
			t.Errorf("q=%d: %d elements, want %d", q, len(f.Elements()), q*q)
		}
		if len(f.Units()) != q*q-1 {
			t.Errorf("q=%d: %d units, want %d", q, len(f.Units()), q*q-1)
		}
		for i, x := range f.Elements() {
			if f.Index(x) != i {
				t.Fatalf("q=%d: Index(%v) = %d, want %d", q, x, f.Index(x), i)
			}
		}
		for _, x := range f.Units() {
			if x.IsZero() {
				t.Fatalf("q=%d: zero listed among units", q)
			}
		}
	}
}

func TestGeneratorOrder(t *testing.T) {
	for _, q := range []int{2, 3, 5, 7, 11, 13} {
		f, err := Build(q)
		if err != nil {
			t.Fatalf("Build(%d): %s", q, err)
		}
		seen := make(map[Element]bool)
		x := Element{A: 1}
		for i := 0; i < f.Order(); i++ {
			if seen[x] {
				t.Fatalf("q=%d: generator repeats after %d steps", q, i)
			}
			seen[x] = true
			x = f.Mul(x, f.Generator())
		}
		if !x.IsOne() {
			t.Errorf("q=%d: g^(q^2-1) = %v, want 1", q, x)
		}
	}
}

func TestFrobeniusTraceNorm(t *testing.T) {
	for _, q := range []int{2, 3, 5, 7} {
		f, err := Build(q)
		if err != nil {
			t.Fatalf("Build(%d): %s", q, err)
		}
		for _, x := range f.Elements() {
			if got, want := f.Frobenius(x), f.Pow(x, q); got != want {
				t.Fatalf("q=%d: Frobenius(%v) = %v, want %v", q, x, got, want)
			}
			if tr := f.Trace(x); !tr.IsScalar() {
				t.Fatalf("q=%d: Trace(%v) = %v not in GF(q)", q, x, tr)
			}
			if n := f.Norm(x); !n.IsScalar() {
				t.Fatalf("q=%d: Norm(%v) = %v not in GF(q)", q, x, n)
			}
			if got, want := f.Norm(x), f.Pow(x, q+1); got != want {
				t.Fatalf("q=%d: Norm(%v) = %v, want %v", q, x, got, want)
			}
		}
	}
}

func TestTraceIsSurjectiveAndBalanced(t *testing.T) {
	f, err := Build(5)
	if err != nil {
		t.Fatalf("Build: %s", err)
	}
	counts := make(map[int]int)
	for _, x := range f.Elements() {
		counts[f.Trace(x).A]++
	}
	for c := 0; c < 5; c++ {
		if counts[c] != 5 {
			t.Errorf("trace %d hit %d times, want 5", c, counts[c])
		}
	}
}

func TestInverse(t *testing.T) {
	f, err := Build(7)
	if err != nil {
		t.Fatalf("Build: %s", err)
	}
	for _, x := range f.Units() {
		y, err := f.Inv(x)
		if err != nil {
			t.Fatalf("Inv(%v): %s", x, err)
		}
		if !f.Mul(x, y).IsOne() {
			t.Fatalf("%v * %v != 1", x, y)
		}
	}
	if _, err := f.Inv(Element{}); err == nil {
		t.Errorf("Inv(0) succeeded, want error")
	}
}

func TestPrimitiveRoot(t *testing.T) {
	tests := []struct{ q, want int }{{2, 1}, {3, 2}, {5, 2}, {7, 3}, {11, 2}, {13, 2}, {17, 3}, {23, 5}}
	for _, tt := range tests {
		if got := PrimitiveRoot(tt.q); got != tt.want {
			t.Errorf("PrimitiveRoot(%d) = %d, want %d", tt.q, got, tt.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true, 29: true}
	for n := -1; n < 30; n++ {
		if IsPrime(n) != primes[n] {
			t.Errorf("IsPrime(%d) = %v", n, IsPrime(n))
		}
	}
}
