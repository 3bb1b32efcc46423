//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ocompare implements the branch-free comparison kernel: Ogt,
// Oge, Oeq, Olt, Ole, and One, each returning a {0,1}-valued
// predicate, for signed and unsigned 16/32/64-bit integers and
// float64. Go offers no source-level access to the flags register
// outside assembly, so the integer path is bitmask arithmetic over
// the operand difference, and the float64 path relies on Go's native
// comparison operators, which the gc compiler lowers unconditionally
// to UCOMISD/COMISD plus a flags read — no branch on the operand
// value either way.
package ocompare

import "github.com/markkurossi/oblivious/cmov"

// Ordered is the set of scalar types the comparison kernel supports:
// every supported integer width, signed and unsigned, plus float64.
type Ordered interface {
	int16 | int32 | int64 | uint16 | uint32 | uint64 | float64
}

// Ogt returns 1 if x > y, 0 otherwise.
func Ogt[T Ordered](x, y T) cmov.Predicate {
	if isFloat(x) {
		return boolPred(any(x).(float64) > any(y).(float64))
	}
	return oltInt(y, x)
}

// Oge returns 1 if x >= y, 0 otherwise.
func Oge[T Ordered](x, y T) cmov.Predicate {
	if isFloat(x) {
		return boolPred(any(x).(float64) >= any(y).(float64))
	}
	return cmov.Not(oltInt(x, y))
}

// Ole returns 1 if x <= y, 0 otherwise.
func Ole[T Ordered](x, y T) cmov.Predicate {
	if isFloat(x) {
		return boolPred(any(x).(float64) <= any(y).(float64))
	}
	return cmov.Not(oltInt(y, x))
}

// Oeq returns 1 if x == y, 0 otherwise.
func Oeq[T Ordered](x, y T) cmov.Predicate {
	if isFloat(x) {
		return boolPred(any(x).(float64) == any(y).(float64))
	}
	return cmov.And(cmov.Not(oltInt(x, y)), cmov.Not(oltInt(y, x)))
}

// One returns 1 if x != y, 0 otherwise.
func One[T Ordered](x, y T) cmov.Predicate {
	return cmov.Not(Oeq(x, y))
}

// Olt returns 1 if x < y, 0 otherwise.
//
// NaN handling: float64 comparisons have unordered-false semantics —
// any ordered comparison against NaN, including equality, yields 0;
// only One yields 1. This is the behavior of x86's COMISD/UCOMISD
// family. Callers who cannot tolerate it must filter NaN before
// calling.
func Olt[T Ordered](x, y T) cmov.Predicate {
	if isFloat(x) {
		return boolPred(any(x).(float64) < any(y).(float64))
	}
	return oltInt(x, y)
}

// isFloat dispatches on T's static type, not on any operand value, so
// the branch in each comparison above is resolved per instantiation,
// never per call.
func isFloat[T Ordered](_ T) bool {
	var zero T
	_, ok := any(zero).(float64)
	return ok
}

func boolPred(b bool) cmov.Predicate {
	return cmov.Bool(b)
}
