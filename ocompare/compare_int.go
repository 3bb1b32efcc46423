//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ocompare

import "github.com/markkurossi/oblivious/cmov"

// oltInt dispatches to a width- and signedness-specific branch-free
// less-than kernel. The dispatch itself is on the operand's static
// type, not its value, so it does not leak anything a compiler
// couldn't already infer from the call site's instantiation.
func oltInt[T Ordered](x, y T) cmov.Predicate {
	switch v := any(x).(type) {
	case int16:
		return oltWide(int64(v), int64(any(y).(int16)))
	case int32:
		return oltWide(int64(v), int64(any(y).(int32)))
	case uint16:
		return oltWide(int64(v), int64(any(y).(uint16)))
	case uint32:
		return oltWide(int64(v), int64(any(y).(uint32)))
	case int64:
		return oltI64(v, any(y).(int64))
	case uint64:
		return oltU64(v, any(y).(uint64))
	}
	panic("ocompare: unsupported type")
}

// oltWide handles every width that fits losslessly in an int64
// (16- and 32-bit, signed or unsigned): the true mathematical
// difference never overflows int64, so its sign bit alone decides the
// comparison.
func oltWide(x, y int64) cmov.Predicate {
	diff := x - y
	return cmov.Predicate(uint64(diff) >> 63)
}

// oltI64 compares two int64 values without relying on a wider integer
// type. When x and y have the same sign, x-y cannot overflow and its
// top bit decides the comparison directly; when they differ, the sign
// of x alone decides it. Both candidate results are computed
// unconditionally and cmov.SelectU8 picks the right one.
func oltI64(x, y int64) cmov.Predicate {
	ux, uy := uint64(x), uint64(y)
	diff := ux - uy

	signX := byte(ux >> 63)
	signY := byte(uy >> 63)
	sameSign := cmov.Not(cmov.Predicate(signX ^ signY))

	diffSignLt := signX
	sameSignLt := byte(diff >> 63)

	return cmov.SelectU8(sameSign, sameSignLt, diffSignLt)
}

// oltU64 is the unsigned analogue of oltI64: when the top bits of x
// and y differ, the comparison is decided by which operand has the
// clear top bit (that one is unsigned-smaller); when they agree, the
// wrapping difference's top bit decides it, since the two top bits
// cancel.
func oltU64(x, y uint64) cmov.Predicate {
	diff := x - y

	msbX := byte(x >> 63)
	msbY := byte(y >> 63)
	sameMSB := cmov.Not(cmov.Predicate(msbX ^ msbY))

	diffMSBLt := cmov.Not(cmov.Predicate(msbX))
	sameMSBLt := byte(diff >> 63)

	return cmov.SelectU8(sameMSB, sameMSBLt, diffMSBLt)
}
