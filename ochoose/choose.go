//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ochoose implements oblivious ternary selection over
// arbitrary plain-old-data values: Select(pred, t, f) returns t when
// pred == 1 and f when pred == 0, touching the same bytes of t, f,
// and the result in the same order regardless of pred's value.
package ochoose

import (
	"unsafe"

	"github.com/markkurossi/oblivious/cmov"
)

// Select returns t if pred == 1, f if pred == 0, for any fixed-size
// value T. The byte layouts of t, f, and the result are identical by
// construction since all three are values of the same type.
//
// T's size is decomposed into 8-, 4-, 2-, and 1-byte chunks, greedily
// from the largest down, with a single 1-byte chunk at most — the
// decomposition depends only on sizeof(T), so the chunk sequence is
// identical for every call with the same T. A trailing odd byte is
// selected with a dedicated one-byte kernel; no chunk ever reads past
// the operand's own bytes.
func Select[T any](pred cmov.Predicate, t, f T) T {
	var result T
	size := unsafe.Sizeof(result)

	tp := unsafe.Pointer(&t)
	fp := unsafe.Pointer(&f)
	rp := unsafe.Pointer(&result)

	var off uintptr
	for size-off >= 8 {
		selectChunk8(pred, tp, fp, rp, off)
		off += 8
	}
	if size-off >= 4 {
		selectChunk4(pred, tp, fp, rp, off)
		off += 4
	}
	if size-off >= 2 {
		selectChunk2(pred, tp, fp, rp, off)
		off += 2
	}
	if size-off == 1 {
		selectChunk1(pred, tp, fp, rp, off)
	}

	return result
}

func selectChunk8(pred cmov.Predicate, tp, fp, rp unsafe.Pointer, off uintptr) {
	tv := *(*int64)(unsafe.Add(tp, off))
	fv := *(*int64)(unsafe.Add(fp, off))
	*(*int64)(unsafe.Add(rp, off)) = cmov.Select64(pred, tv, fv)
}

func selectChunk4(pred cmov.Predicate, tp, fp, rp unsafe.Pointer, off uintptr) {
	tv := *(*int32)(unsafe.Add(tp, off))
	fv := *(*int32)(unsafe.Add(fp, off))
	*(*int32)(unsafe.Add(rp, off)) = cmov.Select32(pred, tv, fv)
}

func selectChunk2(pred cmov.Predicate, tp, fp, rp unsafe.Pointer, off uintptr) {
	tv := *(*int16)(unsafe.Add(tp, off))
	fv := *(*int16)(unsafe.Add(fp, off))
	*(*int16)(unsafe.Add(rp, off)) = cmov.Select16(pred, tv, fv)
}

func selectChunk1(pred cmov.Predicate, tp, fp, rp unsafe.Pointer, off uintptr) {
	tv := *(*byte)(unsafe.Add(tp, off))
	fv := *(*byte)(unsafe.Add(fp, off))
	*(*byte)(unsafe.Add(rp, off)) = cmov.SelectU8(pred, tv, fv)
}
