// Package numerics provides overflow-aware arithmetic and power-of-two
// helpers for unsigned integer types. Invalid inputs are reported
// through typed errors rather than silent wraparound.
package numerics

import (
	"fmt"
	"math/bits"
)

// Unsigned constrains the integer types these helpers operate on.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// OverflowError reports an operation whose result does not fit the
// operand type.
type OverflowError struct {
	Op string
	A  uint64
	B  uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("numerics: %s(%d, %d) overflows", e.Op, e.A, e.B)
}

// AlignmentError reports an alignment that is not a power of two.
type AlignmentError struct {
	Align uint64
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("numerics: alignment must be a power of 2, got %d", e.Align)
}

// bitWidth returns the number of value bits in T.
func bitWidth[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// IsPowerOfTwo reports whether v is a power of two. Zero is not.
func IsPowerOfTwo[T Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= v. Values 0 and 1
// both yield 1. Fails when the result does not fit T.
func NextPowerOfTwo[T Unsigned](v T) (T, error) {
	if v <= 1 {
		return 1, nil
	}
	n := bits.Len64(uint64(v - 1))
	if n >= bitWidth[T]() {
		return 0, &OverflowError{Op: "NextPowerOfTwo", A: uint64(v)}
	}
	return T(1) << n, nil
}

// PrevPowerOfTwo returns the largest power of two <= v. Fails for zero,
// which no power of two satisfies.
func PrevPowerOfTwo[T Unsigned](v T) (T, error) {
	if v == 0 {
		return 0, &OverflowError{Op: "PrevPowerOfTwo"}
	}
	return T(1) << (bits.Len64(uint64(v)) - 1), nil
}

// AlignUp rounds v up to the nearest multiple of align, which must be a
// power of two. Fails when the rounded value does not fit T.
func AlignUp[T Unsigned](v, align T) (T, error) {
	if !IsPowerOfTwo(align) {
		return 0, &AlignmentError{Align: uint64(align)}
	}
	if v > ^T(0)-(align-1) {
		return 0, &OverflowError{Op: "AlignUp", A: uint64(v), B: uint64(align)}
	}
	return (v + (align - 1)) &^ (align - 1), nil
}

// AlignDown rounds v down to the nearest multiple of align, which must
// be a power of two.
func AlignDown[T Unsigned](v, align T) (T, error) {
	if !IsPowerOfTwo(align) {
		return 0, &AlignmentError{Align: uint64(align)}
	}
	return v &^ (align - 1), nil
}

// IsAligned reports whether v is a multiple of align, which must be a
// power of two.
func IsAligned[T Unsigned](v, align T) (bool, error) {
	if !IsPowerOfTwo(align) {
		return false, &AlignmentError{Align: uint64(align)}
	}
	return v&(align-1) == 0, nil
}

// CheckedAdd returns a+b, failing instead of wrapping on overflow.
func CheckedAdd[T Unsigned](a, b T) (T, error) {
	if a > ^T(0)-b {
		return 0, &OverflowError{Op: "CheckedAdd", A: uint64(a), B: uint64(b)}
	}
	return a + b, nil
}

// CheckedMul returns a*b, failing instead of wrapping on overflow.
func CheckedMul[T Unsigned](a, b T) (T, error) {
	if a != 0 && b > ^T(0)/a {
		return 0, &OverflowError{Op: "CheckedMul", A: uint64(a), B: uint64(b)}
	}
	return a * b, nil
}
