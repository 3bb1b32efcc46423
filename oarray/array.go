//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package oarray implements oblivious array read and write: accessing
// arr[i] while touching the same sequence of cache lines regardless
// of i. Obliviousness is bought by sweeping the whole array on every
// call; the cache-line stride keeps the constant factor down to one
// touch per cache line rather than one touch per element.
package oarray

import (
	"unsafe"

	"github.com/markkurossi/oblivious/cmov"
	"github.com/markkurossi/oblivious/ochoose"
	"github.com/markkurossi/oblivious/ocompare"
)

// CacheLineSize is the assumed host cache line size in bytes, used to
// compute the sweep stride in Read and Write. It is a public,
// non-secret configuration value.
var CacheLineSize = 64

// SetCacheLineSize overrides CacheLineSize. It must only ever be
// called with a public, non-secret value (e.g. from test setup or
// host detection), never with anything derived from private data.
func SetCacheLineSize(n int) {
	if n < 1 {
		panic("oarray: cache line size must be positive")
	}
	CacheLineSize = n
}

// traceHook, when non-nil, receives the cache-line group index of
// every element access Read and Write perform. It exists for the
// tests that assert the group trace is identical for every target
// index; the nil check is on public test configuration, never on
// secret data.
var traceHook func(group int)

func trace(group int) {
	if traceHook != nil {
		traceHook(group)
	}
}

func stride[T any]() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz >= CacheLineSize {
		return 1
	}
	return CacheLineSize / sz
}

// Read returns arr[i]. The sequence of cache-line-aligned addresses it
// touches in arr depends only on len(arr) and sizeof(T), never on i.
//
// Panics if i is out of [0, len(arr)). For every valid call the check
// resolves the same way, so its branch trace is constant; it exists
// to turn a programmer error into a panic instead of a wrong answer.
func Read[T any](arr []T, i int) T {
	n := len(arr)
	if i < 0 || i >= n {
		panic("oarray: index out of range")
	}
	step := stride[T]()

	result := arr[0]
	for j := 0; j < n; j += step {
		cond := ocompare.Oeq(int64(j/step), int64(i/step))
		pos := choose64(cond, int64(i), int64(j))
		trace(pos / step)
		result = selectElem(cond, arr[pos], result)
	}
	return result
}

// Write sets arr[i] = v. It touches the same sequence of cache lines
// in arr, in the same order, regardless of i.
func Write[T any](arr []T, i int, v T) {
	n := len(arr)
	if i < 0 || i >= n {
		panic("oarray: index out of range")
	}
	step := stride[T]()

	for j := 0; j < n; j += step {
		cond := ocompare.Oeq(int64(j/step), int64(i/step))
		pos := choose64(cond, int64(i), int64(j))
		trace(pos / step)
		arr[pos] = selectElem(cond, v, arr[pos])
	}
}

func choose64(pred cmov.Predicate, t, f int64) int {
	return int(cmov.Select64(pred, t, f))
}

func selectElem[T any](pred cmov.Predicate, t, f T) T {
	return ochoose.Select(pred, t, f)
}
