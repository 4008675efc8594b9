// Package dtypes defines the DType enum of element types known to the
// dispatcher, with converters to/from Go native types and predicates over
// type families (float, complex, quantized, ...).
//
// The quantized and complex entries matter to dispatch: they select the
// quantized/complex backend variant keys instead of the plain backend key for
// a device.
package dtypes

import (
	"maps"
	"slices"
	"strings"
)

// DType enumerates the supported element types.
type DType int32

//go:generate go tool enumer -type=DType -output=gen_dtype_enumer.go dtype.go

const (
	// InvalidDType is the zero value and serves as "no dtype".
	InvalidDType DType = iota

	Bool

	// Signed integers of fixed width.
	Int8
	Int16
	Int32
	Int64

	// Unsigned integers of fixed width.
	Uint8
	Uint16
	Uint32
	Uint64

	// Float16 is the IEEE 754 half-precision format.
	Float16

	// BFloat16 is the truncated 16-bit version of float32: 8 exponent bits,
	// 7 mantissa bits.
	BFloat16

	Float32
	Float64

	// Complex64 pairs two float32 (real, imag); Complex128 pairs two float64.
	Complex64
	Complex128

	// Quantized integer types: an integer payload plus scale/zero-point
	// quantization parameters kept alongside the data.
	QInt8
	QUInt8
	QInt32
)

// Short aliases, following the usual accelerator naming.
const (
	F16  = Float16
	BF16 = BFloat16
	F32  = Float32
	F64  = Float64
	C64  = Complex64
	C128 = Complex128
)

// MapOfNames maps names and aliases to their DType. The init below extends it
// with the lower-case version of every name.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"Bool":         Bool,
	"Int8":         Int8,
	"Int16":        Int16,
	"Int32":        Int32,
	"Int64":        Int64,
	"Uint8":        Uint8,
	"Uint16":       Uint16,
	"Uint32":       Uint32,
	"Uint64":       Uint64,
	"Float16":      Float16,
	"F16":          Float16,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
	"Complex64":    Complex64,
	"C64":          Complex64,
	"Complex128":   Complex128,
	"C128":         Complex128,
	"QInt8":        QInt8,
	"QUInt8":       QUInt8,
	"QInt32":       QInt32,
}

func init() {
	// Add a mapping to the lower-case version of the names.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}
