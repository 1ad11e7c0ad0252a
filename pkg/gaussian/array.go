package gaussian

import (
	"math/big"
	"math/rand"
)

// Array is an ordered sequence of Gaussian integers with elementwise
// arithmetic. The container itself is immutable apart from Set; elements
// are immutable Ints and may be shared between arrays.
type Array struct {
	elems []*Int
}

// NewArray creates an Array from the given values. The slice is copied.
// A nil element fails with ErrInvalidArgument.
func NewArray(values ...*Int) (*Array, error) {
	for i, v := range values {
		if v == nil {
			return nil, errorf("NewArray", "%w: nil element at index %d", ErrInvalidArgument, i)
		}
	}
	elems := make([]*Int, len(values))
	copy(elems, values)
	return &Array{elems: elems}, nil
}

// Zeros returns an Array of n zero values.
func Zeros(n int) *Array {
	elems := make([]*Int, n)
	for i := range elems {
		elems[i] = Zero()
	}
	return &Array{elems: elems}
}

// RandomArray returns an Array of n values drawn by Random from the same
// source and inclusive range.
func RandomArray(rng *rand.Rand, n int, lo, hi *big.Int) (*Array, error) {
	if n < 0 {
		return nil, errorf("RandomArray", "%w: negative length %d", ErrInvalidArgument, n)
	}
	elems := make([]*Int, n)
	for i := range elems {
		z, err := Random(rng, lo, hi)
		if err != nil {
			return nil, err
		}
		elems[i] = z
	}
	return &Array{elems: elems}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the element at index i.
// Fails with ErrIndexOutOfRange when i is outside [0, Len).
func (a *Array) At(i int) (*Int, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, errorf("At", "%w: %d", ErrIndexOutOfRange, i)
	}
	return a.elems[i], nil
}

// Set replaces the element at index i.
func (a *Array) Set(i int, v *Int) error {
	if v == nil {
		return errorf("Set", "%w: nil element", ErrInvalidArgument)
	}
	if i < 0 || i >= len(a.elems) {
		return errorf("Set", "%w: %d", ErrIndexOutOfRange, i)
	}
	a.elems[i] = v
	return nil
}

// Contains reports whether v occurs in the array.
func (a *Array) Contains(v *Int) bool {
	return a.Index(v) >= 0
}

// Count returns the number of elements equal to v.
func (a *Array) Count(v *Int) int {
	n := 0
	for _, e := range a.elems {
		if e.Equal(v) {
			n++
		}
	}
	return n
}

// Index returns the first index of v, or -1 when absent.
func (a *Array) Index(v *Int) int {
	for i, e := range a.elems {
		if e.Equal(v) {
			return i
		}
	}
	return -1
}

// ToSlice returns the elements as a slice. The slice is a copy; the
// elements are shared (they are immutable).
func (a *Array) ToSlice() []*Int {
	out := make([]*Int, len(a.elems))
	copy(out, a.elems)
	return out
}

// binary applies f pairwise. Fails with ErrLengthMismatch when the arrays
// have different lengths.
func (a *Array) binary(op string, other *Array, f func(x, y *Int) (*Int, error)) (*Array, error) {
	if len(a.elems) != len(other.elems) {
		return nil, errorf(op, "%w: %d vs %d", ErrLengthMismatch, len(a.elems), len(other.elems))
	}
	elems := make([]*Int, len(a.elems))
	for i := range a.elems {
		v, err := f(a.elems[i], other.elems[i])
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &Array{elems: elems}, nil
}

// Add returns the elementwise sum.
func (a *Array) Add(other *Array) (*Array, error) {
	return a.binary("Add", other, func(x, y *Int) (*Int, error) { return x.Add(y), nil })
}

// Sub returns the elementwise difference.
func (a *Array) Sub(other *Array) (*Array, error) {
	return a.binary("Sub", other, func(x, y *Int) (*Int, error) { return x.Sub(y), nil })
}

// Mul returns the elementwise product.
func (a *Array) Mul(other *Array) (*Array, error) {
	return a.binary("Mul", other, func(x, y *Int) (*Int, error) { return x.Mul(y), nil })
}

// Div returns the elementwise rounded quotient. Any zero divisor fails the
// whole operation with ErrDivisionByZero.
func (a *Array) Div(other *Array) (*Array, error) {
	return a.binary("Div", other, (*Int).Div)
}

// Mod returns the elementwise remainder.
func (a *Array) Mod(other *Array) (*Array, error) {
	return a.binary("Mod", other, (*Int).Mod)
}

// Neg returns the elementwise negation.
func (a *Array) Neg() *Array {
	return a.unary((*Int).Neg)
}

// Conjugate returns the elementwise conjugate.
func (a *Array) Conjugate() *Array {
	return a.unary((*Int).Conjugate)
}

// Pow raises every element to the exponent k.
func (a *Array) Pow(k uint) *Array {
	return a.unary(func(z *Int) *Int { return z.Pow(k) })
}

func (a *Array) unary(f func(*Int) *Int) *Array {
	elems := make([]*Int, len(a.elems))
	for i, e := range a.elems {
		elems[i] = f(e)
	}
	return &Array{elems: elems}
}

// Norms returns the norm of every element.
func (a *Array) Norms() []*big.Int {
	out := make([]*big.Int, len(a.elems))
	for i, e := range a.elems {
		out[i] = e.Norm()
	}
	return out
}
