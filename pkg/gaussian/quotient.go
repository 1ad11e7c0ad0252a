package gaussian

import (
	"math/big"
)

// Div returns the nearest Gaussian integer to the exact complex quotient
// z / other. Each component of the rational quotient
// z * conj(other) / N(other) is rounded to the nearest integer
// independently, with ties rounded away from zero, so that
// Div(-z, other) == -Div(z, other).
// Fails with ErrDivisionByZero when other is 0+0i.
func (z *Int) Div(other *Int) (*Int, error) {
	if other.IsZero() {
		return nil, errorf("Div", "%w", ErrDivisionByZero)
	}
	num := z.Mul(other.Conjugate())
	den := other.Norm() // always positive here
	return &Int{
		re: roundQuotient(num.re, den),
		im: roundQuotient(num.im, den),
	}, nil
}

// QuoRem returns q = Div(z, other) and the remainder r = z - other*q.
// The rounded quotient keeps the remainder small: N(r) <= N(other)/2.
func (z *Int) QuoRem(other *Int) (q, r *Int, err error) {
	q, err = z.Div(other)
	if err != nil {
		return nil, nil, &Error{Op: "QuoRem", Err: ErrDivisionByZero}
	}
	return q, z.Sub(other.Mul(q)), nil
}

// Mod returns the remainder z - other*Div(z, other).
func (z *Int) Mod(other *Int) (*Int, error) {
	_, r, err := z.QuoRem(other)
	if err != nil {
		return nil, &Error{Op: "Mod", Err: ErrDivisionByZero}
	}
	return r, nil
}

// Round returns the nearest Gaussian integer to the rational complex point
// re + im*i, using the same tie convention as Div (away from zero).
// Nil components fail with ErrInvalidArgument.
func Round(re, im *big.Rat) (*Int, error) {
	if re == nil || im == nil {
		return nil, errorf("Round", "%w: nil component", ErrInvalidArgument)
	}
	return &Int{
		re: roundQuotient(re.Num(), re.Denom()),
		im: roundQuotient(im.Num(), im.Denom()),
	}, nil
}

// Distance returns the Euclidean distance between x and y on the complex
// plane, sqrt(N(x-y)), as an arbitrary-precision float.
func Distance(x, y *Int) *big.Float {
	n := x.Sub(y).Norm()
	f := new(big.Float).SetInt(n)
	return f.Sqrt(f)
}

// roundQuotient returns the nearest integer to n/d, ties away from zero.
// d must be positive.
func roundQuotient(n, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	// Truncated division leaves |r| < d with r carrying the sign of n.
	// Step q one away from zero when |r|/d reaches one half.
	r.Abs(r)
	r.Lsh(r, 1)
	if r.Cmp(d) >= 0 {
		if n.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q
}
