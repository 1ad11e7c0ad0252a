// Package gaussian implements arithmetic over the Gaussian integers, the
// complex numbers a+bi whose real and imaginary parts are both integers.
// Components are arbitrary-precision (math/big), so no operation overflows.
//
// The central type is Int. Values are immutable - every operation returns a
// new Int - which makes them safe to share across goroutines without
// synchronization.
//
//	x := gaussian.NewInt64(2, 1)
//	y := gaussian.NewInt64(1, 1)
//	p := x.Mul(y)          // 1+3i
//	n := p.Norm()          // 10
//	x.IsPrime()            // true: norm 5 is a rational prime = 1 (mod 4)
//
// Division is not exact in the Gaussian integers. Div returns the nearest
// Gaussian integer to the exact complex quotient, rounding each component
// independently with ties away from zero; QuoRem additionally returns the
// remainder x - y*q.
//
// Array provides elementwise arithmetic over sequences of Gaussian integers,
// and Random draws values with both components uniform in a caller-supplied
// inclusive range from a caller-supplied *rand.Rand, so generation is
// reproducible under a fixed seed.
package gaussian
