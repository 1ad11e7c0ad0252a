package gaussian_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intgauss/intgauss-go/pkg/gaussian"
)

func mustArray(t *testing.T, values ...*gaussian.Int) *gaussian.Array {
	t.Helper()
	a, err := gaussian.NewArray(values...)
	require.NoError(t, err)
	return a
}

func TestNewArray(t *testing.T) {
	a := mustArray(t, gaussian.NewInt64(1, 1), gaussian.NewInt64(2, -2))
	assert.Equal(t, 2, a.Len())

	_, err := gaussian.NewArray(gaussian.One(), nil)
	require.ErrorIs(t, err, gaussian.ErrInvalidArgument)
}

func TestArrayAccess(t *testing.T) {
	a := mustArray(t, gaussian.NewInt64(1, 0), gaussian.NewInt64(0, 1))

	v, err := a.At(1)
	require.NoError(t, err)
	assert.True(t, v.Equal(gaussian.I()))

	_, err = a.At(-1)
	require.ErrorIs(t, err, gaussian.ErrIndexOutOfRange)
	_, err = a.At(2)
	require.ErrorIs(t, err, gaussian.ErrIndexOutOfRange)

	require.NoError(t, a.Set(0, gaussian.NewInt64(9, 9)))
	v, err = a.At(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(gaussian.NewInt64(9, 9)))

	require.ErrorIs(t, a.Set(5, gaussian.One()), gaussian.ErrIndexOutOfRange)
	require.ErrorIs(t, a.Set(0, nil), gaussian.ErrInvalidArgument)
}

func TestArraySearch(t *testing.T) {
	z := gaussian.NewInt64(2, 1)
	a := mustArray(t, gaussian.One(), z, gaussian.NewInt64(2, 1), gaussian.Zero())

	assert.True(t, a.Contains(z))
	assert.False(t, a.Contains(gaussian.NewInt64(-2, -1)))
	assert.Equal(t, 2, a.Count(z))
	assert.Equal(t, 1, a.Index(z))
	assert.Equal(t, -1, a.Index(gaussian.NewInt64(7, 7)))
}

func TestArrayElementwise(t *testing.T) {
	x := mustArray(t, gaussian.NewInt64(1, 2), gaussian.NewInt64(3, -4))
	y := mustArray(t, gaussian.NewInt64(5, -6), gaussian.NewInt64(-7, 8))

	sum, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, "6-4i", mustAt(t, sum, 0).String())
	assert.Equal(t, "-4+4i", mustAt(t, sum, 1).String())

	diff, err := x.Sub(y)
	require.NoError(t, err)
	assert.Equal(t, "-4+8i", mustAt(t, diff, 0).String())

	prod, err := x.Mul(y)
	require.NoError(t, err)
	// (1+2i)(5-6i) = 5-6i+10i+12 = 17+4i
	assert.Equal(t, "17+4i", mustAt(t, prod, 0).String())

	neg := x.Neg()
	assert.Equal(t, "-1-2i", mustAt(t, neg, 0).String())

	conj := x.Conjugate()
	assert.Equal(t, "1-2i", mustAt(t, conj, 0).String())

	sq := x.Pow(2)
	// (1+2i)^2 = -3+4i
	assert.Equal(t, "-3+4i", mustAt(t, sq, 0).String())

	norms := x.Norms()
	assert.Equal(t, int64(5), norms[0].Int64())
	assert.Equal(t, int64(25), norms[1].Int64())
}

func mustAt(t *testing.T, a *gaussian.Array, i int) *gaussian.Int {
	t.Helper()
	v, err := a.At(i)
	require.NoError(t, err)
	return v
}

func TestArrayLengthMismatch(t *testing.T) {
	x := mustArray(t, gaussian.One())
	y := mustArray(t, gaussian.One(), gaussian.One())

	_, err := x.Add(y)
	require.ErrorIs(t, err, gaussian.ErrLengthMismatch)
	_, err = x.Mul(y)
	require.ErrorIs(t, err, gaussian.ErrLengthMismatch)
	_, err = x.Div(y)
	require.ErrorIs(t, err, gaussian.ErrLengthMismatch)
}

func TestArrayDivMod(t *testing.T) {
	x := mustArray(t, gaussian.NewInt64(4, 2), gaussian.NewInt64(7, 0))
	y := mustArray(t, gaussian.NewInt64(1, 1), gaussian.NewInt64(2, 0))

	q, err := x.Div(y)
	require.NoError(t, err)
	assert.Equal(t, "3-i", mustAt(t, q, 0).String())
	assert.Equal(t, "4", mustAt(t, q, 1).String())

	r, err := x.Mod(y)
	require.NoError(t, err)
	assert.Equal(t, "0", mustAt(t, r, 0).String())
	assert.Equal(t, "-1", mustAt(t, r, 1).String())

	withZero := mustArray(t, gaussian.One(), gaussian.Zero())
	_, err = x.Div(withZero)
	require.ErrorIs(t, err, gaussian.ErrDivisionByZero)
	_, err = x.Mod(withZero)
	require.ErrorIs(t, err, gaussian.ErrDivisionByZero)
}

func TestZeros(t *testing.T) {
	a := gaussian.Zeros(4)
	assert.Equal(t, 4, a.Len())
	for _, z := range a.ToSlice() {
		assert.True(t, z.IsZero())
	}
	assert.Equal(t, 0, gaussian.Zeros(0).Len())
}

func TestToSliceIsACopy(t *testing.T) {
	a := mustArray(t, gaussian.One(), gaussian.I())
	s := a.ToSlice()
	s[0] = gaussian.NewInt64(42, 42)

	v, err := a.At(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(gaussian.One()), "mutating the slice leaked into the array")
}

func TestRandomArray(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	lo, hi := big.NewInt(-5), big.NewInt(5)

	a, err := gaussian.RandomArray(rng, 32, lo, hi)
	require.NoError(t, err)
	require.Equal(t, 32, a.Len())
	for _, z := range a.ToSlice() {
		assert.True(t, z.Real().Cmp(lo) >= 0 && z.Real().Cmp(hi) <= 0, "real %v out of range", z.Real())
		assert.True(t, z.Imag().Cmp(lo) >= 0 && z.Imag().Cmp(hi) <= 0, "imag %v out of range", z.Imag())
	}

	_, err = gaussian.RandomArray(rng, -1, lo, hi)
	require.ErrorIs(t, err, gaussian.ErrInvalidArgument)
}
