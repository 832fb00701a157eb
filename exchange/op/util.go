package op

import (
	"math/big"
)

// Rounding mode for integer division.
type Rounding uint8

const (
	RoundDown Rounding = iota
	RoundUp
)

// MultiplyInt64 multiplies two int64 values without overflow.
func MultiplyInt64(lhs int64, rhs int64) *big.Int {
	l := big.NewInt(lhs)
	r := big.NewInt(rhs)
	return l.Mul(l, r)
}

// DivideBigInt divides a big.Int value by an int64 divisor with the
// supplied rounding mode and returns the int64 result.
func DivideBigInt(value *big.Int, divisor int64, rounding Rounding) int64 {
	quo := new(big.Int)
	rem := new(big.Int)
	quo.QuoRem(value, big.NewInt(divisor), rem)
	if rounding == RoundUp && rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo.Int64()
}
