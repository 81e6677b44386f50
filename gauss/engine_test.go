package gauss

import (
	"errors"
	"math"
	"testing"

	"github.com/jamwevan/MATH-440/field"
)

func mustCompute(t testing.TB, q int, opts Options) *Table {
	t.Helper()
	tab, err := Compute(q, opts)
	if err != nil {
		t.Fatalf("Compute(%d): %s", q, err)
	}
	return tab
}

func TestDimensions(t *testing.T) {
	for _, q := range []int{2, 3, 5, 7} {
		tab := mustCompute(t, q, Options{})
		if tab.Rows() != q*q-1 || tab.Cols() != q-1 {
			t.Errorf("q=%d: table %dx%d, want %dx%d", q, tab.Rows(), tab.Cols(), q*q-1, q-1)
		}
		if len(tab.Complex()) != tab.Rows()*tab.Cols() {
			t.Errorf("q=%d: %d projected cells", q, len(tab.Complex()))
		}
	}
}

func TestInvalidQ(t *testing.T) {
	for _, q := range []int{1, 4, 9} {
		tab, err := Compute(q, Options{})
		if err == nil || tab != nil {
			t.Fatalf("Compute(%d) = %v, %v; want error", q, tab, err)
		}
		if !errors.Is(err, field.ErrInvalidParameter) {
			t.Errorf("Compute(%d) error %q is not an invalid parameter error", q, err)
		}
	}
}

// The product chi_theta(x) chi_alpha(N x) is trivial exactly when
// theta + alpha(q+1) = 0 mod q^2-1; then the sum is -1, else |S|^2 = q^2.
func TestGaussSumModulus(t *testing.T) {
	for _, q := range []int{2, 3, 5, 7} {
		tab := mustCompute(t, q, Options{})
		m := q*q - 1
		minusOne := tab.Ring().Integer(-1)
		for theta := 0; theta < tab.Rows(); theta++ {
			for alpha := 0; alpha < tab.Cols(); alpha++ {
				s := tab.At(theta, alpha)
				if (theta+alpha*(q+1))%m == 0 {
					if !s.Equal(minusOne) {
						t.Fatalf("q=%d: trivial S(%d,%d) = %v, want -1", q, theta, alpha, s)
					}
					continue
				}
				if got := s.AbsSquared(); math.Abs(got-float64(q*q)) > 1e-6 {
					t.Fatalf("q=%d: |S(%d,%d)|^2 = %v, want %d", q, theta, alpha, got, q*q)
				}
			}
		}
	}
}

func TestQuadraticGaussSumQ3(t *testing.T) {
	tab := mustCompute(t, 3, Options{})
	if tab.Rows() != 8 || tab.Cols() != 2 {
		t.Fatalf("table %dx%d, want 8x2", tab.Rows(), tab.Cols())
	}
	want := []int64{-1, 3}
	for alpha, w := range want {
		v, ok := tab.At(0, alpha).Integer()
		if !ok || v != w {
			t.Errorf("S(0,%d) = %v, want %d", alpha, tab.At(0, alpha), w)
		}
	}
}

// For theta = 0 and alpha = (q-1)/2 the character is the quadratic character
// of GF(q^2), whose Gauss sum is -q for q = 1 mod 4 and q for q = 3 mod 4.
func TestQuadraticGaussSum(t *testing.T) {
	for _, q := range []int{3, 5, 7, 11} {
		tab := mustCompute(t, q, Options{})
		want := int64(q)
		if q%4 == 1 {
			want = -want
		}
		v, ok := tab.At(0, (q-1)/2).Integer()
		if !ok || v != want {
			t.Errorf("q=%d: S(0,%d) = %v, want %d", q, (q-1)/2, tab.At(0, (q-1)/2), want)
		}
	}
}

func TestCellsDependOnCombinedCharacter(t *testing.T) {
	q := 5
	m := q*q - 1
	tab := mustCompute(t, q, Options{})
	byExp := make(map[int]string)
	for theta := 0; theta < tab.Rows(); theta++ {
		for alpha := 0; alpha < tab.Cols(); alpha++ {
			e := (theta + alpha*(q+1)) % m
			key := tab.At(theta, alpha).Key()
			if prev, ok := byExp[e]; ok && prev != key {
				t.Fatalf("S(%d,%d) differs from another cell with exponent %d", theta, alpha, e)
			}
			byExp[e] = key
		}
	}
}

func TestIdempotentAcrossWorkers(t *testing.T) {
	a := mustCompute(t, 5, Options{Workers: 1})
	b := mustCompute(t, 5, Options{Workers: 8})
	c := mustCompute(t, 5, Options{})
	if !a.Equal(b) || !a.Equal(c) {
		t.Fatalf("tables differ between runs")
	}
	for theta := 0; theta < a.Rows(); theta++ {
		if a.RowKey(theta) != b.RowKey(theta) {
			t.Fatalf("row %d keys differ", theta)
		}
	}
}

func BenchmarkComputeQ7(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Compute(7, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
