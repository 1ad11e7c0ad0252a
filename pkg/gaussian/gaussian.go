package gaussian

import (
	"hash"
	"hash/fnv"
	"math/big"
)

// Int represents a Gaussian integer a+bi with arbitrary-precision components.
// Ints are immutable - all operations return new Ints - so values may be
// shared freely, including across goroutines.
type Int struct {
	re, im *big.Int
}

// New creates an Int from the given real and imaginary components.
// The inputs are copied to ensure immutability. A nil component cannot be
// interpreted as an integer and fails with ErrInvalidArgument.
func New(re, im *big.Int) (*Int, error) {
	if re == nil || im == nil {
		return nil, errorf("New", "%w: nil component", ErrInvalidArgument)
	}
	return &Int{
		re: new(big.Int).Set(re),
		im: new(big.Int).Set(im),
	}, nil
}

// NewInt64 creates an Int from two int64 components.
// This is a convenience function for small constants.
func NewInt64(re, im int64) *Int {
	return &Int{
		re: big.NewInt(re),
		im: big.NewInt(im),
	}
}

// Zero returns 0+0i.
func Zero() *Int {
	return NewInt64(0, 0)
}

// One returns 1+0i, the multiplicative identity.
func One() *Int {
	return NewInt64(1, 0)
}

// I returns 0+1i, the imaginary unit.
func I() *Int {
	return NewInt64(0, 1)
}

// Units returns the four units of the Gaussian integers: 1, -1, i, -i.
func Units() [4]*Int {
	return [4]*Int{
		NewInt64(1, 0),
		NewInt64(-1, 0),
		NewInt64(0, 1),
		NewInt64(0, -1),
	}
}

// Real returns the real component. The result is a copy.
func (z *Int) Real() *big.Int {
	return new(big.Int).Set(z.re)
}

// Imag returns the imaginary component. The result is a copy.
func (z *Int) Imag() *big.Int {
	return new(big.Int).Set(z.im)
}

// Add returns z + other.
func (z *Int) Add(other *Int) *Int {
	return &Int{
		re: new(big.Int).Add(z.re, other.re),
		im: new(big.Int).Add(z.im, other.im),
	}
}

// Sub returns z - other.
func (z *Int) Sub(other *Int) *Int {
	return &Int{
		re: new(big.Int).Sub(z.re, other.re),
		im: new(big.Int).Sub(z.im, other.im),
	}
}

// Mul returns z * other: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z *Int) Mul(other *Int) *Int {
	ac := new(big.Int).Mul(z.re, other.re)
	bd := new(big.Int).Mul(z.im, other.im)
	ad := new(big.Int).Mul(z.re, other.im)
	bc := new(big.Int).Mul(z.im, other.re)
	return &Int{
		re: ac.Sub(ac, bd),
		im: ad.Add(ad, bc),
	}
}

// Neg returns -z.
func (z *Int) Neg() *Int {
	return &Int{
		re: new(big.Int).Neg(z.re),
		im: new(big.Int).Neg(z.im),
	}
}

// Conjugate returns a - bi.
func (z *Int) Conjugate() *Int {
	return &Int{
		re: new(big.Int).Set(z.re),
		im: new(big.Int).Neg(z.im),
	}
}

// Norm returns N(z) = a^2 + b^2, always a non-negative integer.
// The norm is multiplicative: N(x*y) == N(x)*N(y).
func (z *Int) Norm() *big.Int {
	n := new(big.Int).Mul(z.re, z.re)
	return n.Add(n, new(big.Int).Mul(z.im, z.im))
}

// Pow returns z raised to the exponent k, with z^0 == 1.
// Computed by square-and-multiply.
func (z *Int) Pow(k uint) *Int {
	result := One()
	base := z
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return result
}

// Associates returns the three associates of z other than z itself:
// -z, i*z and -i*z.
func (z *Int) Associates() [3]*Int {
	return [3]*Int{
		z.Neg(),
		z.Mul(I()),
		z.Mul(NewInt64(0, -1)),
	}
}

// Equal returns true if both components match exactly.
func (z *Int) Equal(other *Int) bool {
	return z.re.Cmp(other.re) == 0 && z.im.Cmp(other.im) == 0
}

// IsZero returns true if z is 0+0i.
func (z *Int) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// IsUnit returns true if z is one of 1, -1, i, -i.
func (z *Int) IsUnit() bool {
	return z.Norm().Cmp(bigOne) == 0
}

// Hash returns a 64-bit hash of z, equal for equal values. Computed as
// FNV-1a over the sign and magnitude bytes of both components.
func (z *Int) Hash() uint64 {
	h := fnv.New64a()
	hashComponent(h, z.re)
	hashComponent(h, z.im)
	return h.Sum64()
}

func hashComponent(h hash.Hash64, v *big.Int) {
	// Sign byte first so that e.g. 1-1i and -1+1i hash differently.
	_, _ = h.Write([]byte{byte(v.Sign() + 1)})
	_, _ = h.Write(v.Bytes())
	// Terminator keeps component boundaries unambiguous.
	_, _ = h.Write([]byte{0xFF})
}

// Complex128 returns z as a complex128 together with a flag reporting
// whether the conversion was exact. Components beyond float64 range come
// back as infinities with exact == false.
func (z *Int) Complex128() (complex128, bool) {
	re, reAcc := new(big.Float).SetInt(z.re).Float64()
	im, imAcc := new(big.Float).SetInt(z.im).Float64()
	return complex(re, im), reAcc == big.Exact && imAcc == big.Exact
}

// String returns the canonical form of z: "a+bi" or "a-bi", a plain integer
// when b == 0, and "bi" when a == 0. Unit imaginary coefficients render as
// "i" and "-i". Parse accepts every form String produces.
func (z *Int) String() string {
	if z.im.Sign() == 0 {
		return z.re.String()
	}
	imag := imagString(z.im)
	if z.re.Sign() == 0 {
		return imag
	}
	if z.im.Sign() > 0 {
		return z.re.String() + "+" + imag
	}
	return z.re.String() + imag
}

func imagString(b *big.Int) string {
	if b.CmpAbs(bigOne) == 0 {
		if b.Sign() < 0 {
			return "-i"
		}
		return "i"
	}
	return b.String() + "i"
}

// Shared small constants. Never mutated.
var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)
