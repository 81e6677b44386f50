package field

import "math/big"

// IsPrime reports whether n is prime. ProbablyPrime(0) is exact below 2^64.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(int64(n)).ProbablyPrime(0)
}

// PrimeFactors returns the distinct prime factors of n in increasing order.
func PrimeFactors(n int) []int {
	var factors []int
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		factors = append(factors, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

func powMod(b, e, m int) int {
	r := 1 % m
	b %= m
	for e > 0 {
		if e&1 == 1 {
			r = r * b % m
		}
		b = b * b % m
		e >>= 1
	}
	return r
}

// PrimitiveRoot returns the least generator of (Z/qZ)^*.
func PrimitiveRoot(q int) int {
	factors := PrimeFactors(q - 1)
	for g := 1; g < q; g++ {
		ok := true
		for _, p := range factors {
			if powMod(g, (q-1)/p, q) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}
	return 0
}
