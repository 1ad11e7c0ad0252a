package gaussian

import (
	"math/big"
)

// probablyPrimeN is the number of Miller-Rabin rounds used for rational
// primality. ProbablyPrime is deterministic for inputs below 2^64; above
// that the error probability is at most 4^-64.
const probablyPrimeN = 64

// IsPrime reports whether z is a Gaussian prime. z is prime iff one of:
//
//   - N(z) == 2: z is an associate of 1+i, the prime lying over 2;
//   - one component is zero and the absolute value of the other is a
//     rational prime p with p = 3 (mod 4) (inert rational primes);
//   - N(z) is a rational prime with N(z) = 1 (mod 4) (split rational primes).
//
// Units and zero are not prime.
func (z *Int) IsPrime() bool {
	norm := z.Norm()
	if norm.Cmp(bigTwo) == 0 {
		return true
	}
	if z.re.Sign() == 0 || z.im.Sign() == 0 {
		// Associate of a rational integer (covers zero: 0 is not prime).
		p := new(big.Int).Abs(z.re)
		if z.re.Sign() == 0 {
			p.Abs(z.im)
		}
		return congruentMod4(p, 3) && p.ProbablyPrime(probablyPrimeN)
	}
	return congruentMod4(norm, 1) && norm.ProbablyPrime(probablyPrimeN)
}

func congruentMod4(n *big.Int, want uint) bool {
	return n.Bit(0) == want&1 && n.Bit(1) == (want>>1)&1
}
