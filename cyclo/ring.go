package cyclo

import (
	"fmt"
	"math/big"
)

// Ring is Q(zeta_n), n = p*m, with basis zeta_p^a * zeta_m^j for
// a < p-1 and j < phi(m). It is immutable and safe for concurrent use.
type Ring struct {
	p, m, n int
	deg     int       // phi(m)
	phi     []int64   // coefficients of the m-th cyclotomic polynomial, low to high
	red     [][]int64 // red[e] = x^e mod phi, e < m

	invMP int // m^-1 mod p
	invPM int // p^-1 mod m
}

// NewRing returns the ring holding every sum of n-th roots of unity, n = p*m.
// p must be prime and coprime to m.
func NewRing(p, m int) (*Ring, error) {
	if p < 2 || !big.NewInt(int64(p)).ProbablyPrime(0) {
		return nil, fmt.Errorf("cyclo: outer order %d is not prime", p)
	}
	if m < 1 {
		return nil, fmt.Errorf("cyclo: inner order %d must be positive", m)
	}
	invMP, ok := modInverse(m, p)
	if !ok {
		return nil, fmt.Errorf("cyclo: orders %d and %d are not coprime", p, m)
	}
	invPM, _ := modInverse(p, m)

	phi := Cyclotomic(m)
	r := &Ring{
		p: p, m: m, n: p * m,
		deg:   len(phi) - 1,
		phi:   phi,
		invMP: invMP,
		invPM: invPM,
	}
	r.red = make([][]int64, m)
	cur := make([]int64, r.deg)
	cur[0] = 1
	for e := 0; e < m; e++ {
		r.red[e] = cur
		next := make([]int64, r.deg)
		top := cur[r.deg-1]
		copy(next[1:], cur[:r.deg-1])
		if top != 0 {
			for t := 0; t < r.deg; t++ {
				next[t] -= top * phi[t]
			}
		}
		cur = next
	}
	return r, nil
}

// Orders returns (p, m).
func (r *Ring) Orders() (p, m int) { return r.p, r.m }

// Conductor returns n = p*m; every Root whose order divides n lies in r.
func (r *Ring) Conductor() int { return r.n }

// Dim returns the dimension (p-1)*phi(m) over Q.
func (r *Ring) Dim() int { return (r.p - 1) * r.deg }

// split writes x = zeta_p^a * zeta_m^b.
func (r *Ring) split(x Root) (a, b int) {
	if r.n%x.M != 0 {
		panic(fmt.Sprintf("cyclo: root of order %d outside ring of conductor %d", x.M, r.n))
	}
	k := x.K * (r.n / x.M)
	// a*m + b*p = k (mod p*m)
	a = k % r.p * r.invMP % r.p
	b = k % r.m * r.invPM % r.m
	return a, b
}

// Integer embeds v.
func (r *Ring) Integer(v int64) Number {
	c := make([]int64, r.Dim())
	c[0] = v
	return Number{ring: r, c: c}
}

// FromRoot embeds a single root of unity.
func (r *Ring) FromRoot(x Root) Number {
	acc := r.NewAccumulator()
	acc.Add(x)
	return acc.Number()
}

// Cyclotomic returns the coefficients of the m-th cyclotomic polynomial,
// computed as the product of (x^d - 1)^mu(m/d) over the divisors d of m.
func Cyclotomic(m int) []int64 {
	num := []int64{1}
	var dens []int
	for d := 1; d <= m; d++ {
		if m%d != 0 {
			continue
		}
		switch mobius(m / d) {
		case 1:
			num = mulBinomial(num, d)
		case -1:
			dens = append(dens, d)
		}
	}
	for _, d := range dens {
		num = divBinomial(num, d)
	}
	return num
}

// mulBinomial returns c * (x^d - 1).
func mulBinomial(c []int64, d int) []int64 {
	out := make([]int64, len(c)+d)
	for i, v := range c {
		out[i+d] += v
		out[i] -= v
	}
	return out
}

// divBinomial returns c / (x^d - 1); the division must be exact.
func divBinomial(c []int64, d int) []int64 {
	rem := append([]int64(nil), c...)
	quo := make([]int64, len(c)-d)
	for i := len(c) - 1; i >= d; i-- {
		v := rem[i]
		quo[i-d] = v
		rem[i] = 0
		rem[i-d] += v
	}
	for _, v := range rem[:d] {
		if v != 0 {
			panic("cyclo: inexact division by x^d - 1")
		}
	}
	return quo
}

func mobius(n int) int {
	mu := 1
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		n /= p
		if n%p == 0 {
			return 0
		}
		mu = -mu
	}
	if n > 1 {
		mu = -mu
	}
	return mu
}
