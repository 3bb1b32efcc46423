//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package oblivious is a single-import facade over the layered
// oblivious-primitives library: cmov (conditional move), ocompare
// (branch-free comparison), ochoose (oblivious selection), oarray
// (oblivious array read/write), and obitonic (the bitonic sorting
// network). Each layer is independently usable; this package just
// re-exports their public surface under a single import
// (Ogt/Oge/Oeq/Olt/Ole, Ochoose, Oread/Owrite, Omerge, Osort).
//
// The library's threat model is a branch-predictor- and
// cache-line-observing adversary — not a DRAM-row or power-analysis
// adversary, and not a compromised compiler that reintroduces
// branches after the fact. Every operation here is total,
// synchronous, and allocation-free beyond the caller's own buffers;
// none of it validates secret-derived error conditions, since doing
// so would itself be a side channel.
//
// Example:
//
//	v := []float64{2.123, 3.123, 1.123, -2.123, -1.123}
//	oblivious.Osort(v, 0, len(v), true)
//	// v is now [-2.123, -1.123, 1.123, 2.123, 3.123]
//
//	x := oblivious.Oread(v, 2)
//	oblivious.Owrite(v, 2, 42.0)
package oblivious

import (
	"github.com/markkurossi/oblivious/cmov"
	"github.com/markkurossi/oblivious/oarray"
	"github.com/markkurossi/oblivious/obitonic"
	"github.com/markkurossi/oblivious/ochoose"
	"github.com/markkurossi/oblivious/ocompare"
)

// Predicate is a logical 0/1 bit, the return type of every comparison
// and the control input of every selection in this package.
type Predicate = cmov.Predicate

// Ordered is the set of scalar types the comparison, sort, and merge
// operations support directly.
type Ordered = ocompare.Ordered

// Greater is a caller-supplied, must-be-oblivious comparator for the
// POD sort/merge paths (OsortBy/OmergeBy).
type Greater[T any] = obitonic.Greater[T]

// Ogt returns 1 if x > y, 0 otherwise.
func Ogt[T Ordered](x, y T) Predicate { return ocompare.Ogt(x, y) }

// Oge returns 1 if x >= y, 0 otherwise.
func Oge[T Ordered](x, y T) Predicate { return ocompare.Oge(x, y) }

// Oeq returns 1 if x == y, 0 otherwise.
func Oeq[T Ordered](x, y T) Predicate { return ocompare.Oeq(x, y) }

// Olt returns 1 if x < y, 0 otherwise.
func Olt[T Ordered](x, y T) Predicate { return ocompare.Olt(x, y) }

// Ole returns 1 if x <= y, 0 otherwise.
func Ole[T Ordered](x, y T) Predicate { return ocompare.Ole(x, y) }

// Ochoose returns t if pred == 1, f if pred == 0, for any POD T.
func Ochoose[T any](pred Predicate, t, f T) T { return ochoose.Select(pred, t, f) }

// Oread returns arr[i] while touching a sequence of cache lines in
// arr that depends only on len(arr) and sizeof(T).
func Oread[T any](arr []T, i int) T { return oarray.Read(arr, i) }

// Owrite sets arr[i] = v with the same cache-line-touch guarantee as
// Oread.
func Owrite[T any](arr []T, i int, v T) { oarray.Write(arr, i, v) }

// Osort sorts arr[low : low+length] in place using the bitonic
// sorting network. ascending selects non-decreasing order; Osort is
// not stable.
func Osort[T Ordered](arr []T, low, length int, ascending bool) {
	obitonic.Sort(arr, low, length, ascending)
}

// Omerge runs the oblivious bitonic merge over arr[low : low+length],
// assuming that range is already bitonic.
func Omerge[T Ordered](arr []T, low, length int, ascending bool) {
	obitonic.Merge(arr, low, length, ascending)
}

// OsortBy is the POD variant of Osort: greater must be an oblivious
// comparator, a documented precondition the library cannot enforce.
func OsortBy[T any](arr []T, low, length int, ascending bool, greater Greater[T]) {
	obitonic.SortBy(arr, low, length, ascending, greater)
}

// OmergeBy is the POD variant of Omerge.
func OmergeBy[T any](arr []T, low, length int, ascending bool, greater Greater[T]) {
	obitonic.MergeBy(arr, low, length, ascending, greater)
}
