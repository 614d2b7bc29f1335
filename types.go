package fmath

import (
	"github.com/tphakala/go-fmath/internal/platform"
)

// Float is the type constraint for supported floating-point types.
type Float = platform.Float

// Integer is the type constraint for the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the type constraint for the built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Number is satisfied by every built-in integer and float type.
type Number interface {
	Integer | Float
}
