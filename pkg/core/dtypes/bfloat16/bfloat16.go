// Package bfloat16 is a minimal implementation of the bfloat16 type, the
// 16-bit truncation of IEEE 754 binary32: same sign and exponent bits, the
// mantissa cut to 7 bits.
//
// It complements github.com/x448/float16, which covers the IEEE half format
// but not bfloat16 (see https://github.com/x448/float16/issues/22).
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 holds the raw bits of a bfloat16 value.
type BFloat16 uint16

// FromFloat32 truncates a float32 to a BFloat16 by dropping the low 16
// mantissa bits.
func FromFloat32(x float32) BFloat16 {
	return BFloat16(math.Float32bits(x) >> 16)
}

// FromFloat64 converts a float64 to a BFloat16.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// Float32 returns the value widened back to float32. The conversion is exact.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// Bits returns the raw bit representation.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// String implements fmt.Stringer.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) BFloat16 {
	return FromFloat32(float32(math.Inf(sign)))
}

// SmallestNonzero is the smallest denormal bfloat16 (about 9.18e-41), the
// bfloat16 counterpart of math.SmallestNonzeroFloat32.
const SmallestNonzero = BFloat16(0x0001)
