package extensions

import (
	"fmt"
	"math"
	"math/bits"

	"fortio.org/safecast"
	"microforth.io/microforth/object"
)

//go:generate go run ../mfgen -o generated_int.go

// Support code for the generated integer builtins (generated_int.go): argument
// popping, result pushing, and the operations the table refers to.

// popIntegers pops n Integers, deepest first. All n are consumed before checking.
func popIntegers(e object.Engine, n int) ([]uint64, error) {
	args, err := object.PopN(e, n)
	if err != nil {
		return nil, err
	}
	res := make([]uint64, n)
	for i, v := range args {
		iv, ok := v.(object.Integer)
		if !ok {
			return nil, object.NewWrongTypeError(v.Type(), object.INTEGER)
		}
		res[i] = iv.Value
	}
	return res, nil
}

func toU32(v uint64) (uint32, error) {
	r, err := safecast.Convert[uint32](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %d doesn't fit u32", object.ErrIntegerOverflow, v)
	}
	return r, nil
}

func pushInt(e object.Engine, v int) error {
	r, err := safecast.Convert[uint64](v)
	if err != nil {
		return err
	}
	e.Push(object.Integer{Value: r})
	return nil
}

// Value only when ok, then the ok flag.
func pushOption(e object.Engine, v uint64, ok bool) {
	if ok {
		e.Push(object.Integer{Value: v})
	}
	e.Push(object.NativeBoolToBooleanObject(ok))
}

// Overflow flag first then the (wrapped) value, so the value is on top.
func pushCarry(e object.Engine, v uint64, overflow bool) {
	e.Push(object.NativeBoolToBooleanObject(overflow))
	e.Push(object.Integer{Value: v})
}

func countOnes(a uint64) int     { return bits.OnesCount64(a) }
func countZeros(a uint64) int    { return 64 - bits.OnesCount64(a) }
func leadingZeros(a uint64) int  { return bits.LeadingZeros64(a) }
func trailingZeros(a uint64) int { return bits.TrailingZeros64(a) }

func rotateLeft(a uint64, n uint32) uint64 {
	return bits.RotateLeft64(a, int(n%64))
}

func rotateRight(a uint64, n uint32) uint64 {
	return bits.RotateLeft64(a, -int(n%64))
}

func swapBytes(a uint64) uint64   { return bits.ReverseBytes64(a) }
func reverseBits(a uint64) uint64 { return bits.Reverse64(a) }

func isPowerOfTwo(a uint64) bool {
	return a != 0 && a&(a-1) == 0
}

// 0 and 1 both give 1.
func checkedNextPowerOfTwo(a uint64) (uint64, bool) {
	if a <= 1 {
		return 1, true
	}
	n := bits.Len64(a - 1)
	if n == 64 {
		return 0, false
	}
	return 1 << n, true
}

func overflowingAdd(a, b uint64) (uint64, bool) {
	r, carry := bits.Add64(a, b, 0)
	return r, carry != 0
}

func overflowingSub(a, b uint64) (uint64, bool) {
	r, borrow := bits.Sub64(a, b, 0)
	return r, borrow != 0
}

func overflowingMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

// Square and multiply, wrapping; overflow is set if any step overflowed.
func overflowingPow(a uint64, n uint32) (uint64, bool) {
	r := uint64(1)
	overflow := false
	for n > 0 {
		var o bool
		if n&1 == 1 {
			r, o = overflowingMul(r, a)
			overflow = overflow || o
		}
		n >>= 1
		if n > 0 {
			a, o = overflowingMul(a, a)
			overflow = overflow || o
		}
	}
	return r, overflow
}

func checkedAdd(a, b uint64) (uint64, bool) {
	r, o := overflowingAdd(a, b)
	return r, !o
}

func checkedSub(a, b uint64) (uint64, bool) {
	r, o := overflowingSub(a, b)
	return r, !o
}

func checkedMul(a, b uint64) (uint64, bool) {
	r, o := overflowingMul(a, b)
	return r, !o
}

func checkedDiv(a, b uint64) (uint64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func checkedRem(a, b uint64) (uint64, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

func checkedPow(a uint64, n uint32) (uint64, bool) {
	r, o := overflowingPow(a, n)
	return r, !o
}

func wrappingAdd(a, b uint64) uint64 { return a + b }
func wrappingSub(a, b uint64) uint64 { return a - b }
func wrappingMul(a, b uint64) uint64 { return a * b }

func wrappingPow(a uint64, n uint32) uint64 {
	r, _ := overflowingPow(a, n)
	return r
}

func saturatingAdd(a, b uint64) uint64 {
	return saturate(overflowingAdd(a, b))
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingMul(a, b uint64) uint64 {
	return saturate(overflowingMul(a, b))
}

func saturatingPow(a uint64, n uint32) uint64 {
	return saturate(overflowingPow(a, n))
}

func saturate(r uint64, overflow bool) uint64 {
	if overflow {
		return math.MaxUint64
	}
	return r
}
