//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ochoose

import "testing"

type generic struct {
	X float64
	Y int16
	Z float64
}

type generic16B struct {
	X float64
	Y uint64
}

// odd7 is 7 bytes with no padding: one 4-chunk, one 2-chunk, one
// 1-chunk. A struct of uint32+uint16+byte would not do here, since
// alignment pads it to 8 bytes and the 1-byte path never runs.
type odd7 [7]byte

type generic12B struct {
	A uint32
	B uint32
	C uint32
}

func TestSelectScalars(t *testing.T) {
	if got := Select(1, 4, 5); got != 4 {
		t.Errorf("Select(1, 4, 5) = %d, want 4", got)
	}
	if got := Select(0, 4, 5); got != 5 {
		t.Errorf("Select(0, 4, 5) = %d, want 5", got)
	}
	if got := Select(byte(1), -4.2, 5.4); got != -4.2 {
		t.Errorf("Select(1, -4.2, 5.4) = %v, want -4.2", got)
	}
	if got := Select(byte(0), 4.23, 5.34); got != 5.34 {
		t.Errorf("Select(0, 4.23, 5.34) = %v, want 5.34", got)
	}
}

func TestSelectGeneric(t *testing.T) {
	a := generic{X: -1.35, Y: 2, Z: 3.21}
	b := generic{X: 4.123, Y: 5, Z: 6.432}

	got := Select(1, a, b)
	if got != a {
		t.Errorf("Select(1, a, b) = %+v, want %+v", got, a)
	}
	got = Select(0, a, b)
	if got != b {
		t.Errorf("Select(0, a, b) = %+v, want %+v", got, b)
	}
}

func TestSelect16ByteStruct(t *testing.T) {
	a := generic16B{X: 1.5, Y: 10}
	b := generic16B{X: 2.5, Y: 20}

	if got := Select(1, a, b); got != a {
		t.Errorf("Select(1, a, b) = %+v, want %+v", got, a)
	}
	if got := Select(0, a, b); got != b {
		t.Errorf("Select(0, a, b) = %+v, want %+v", got, b)
	}
}

func TestSelectOddSized(t *testing.T) {
	a := odd7{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x11}
	b := odd7{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66}

	if got := Select(1, a, b); got != a {
		t.Errorf("Select(1, a, b) = %+v, want %+v", got, a)
	}
	if got := Select(0, a, b); got != b {
		t.Errorf("Select(0, a, b) = %+v, want %+v", got, b)
	}

	c := [3]byte{1, 2, 3}
	d := [3]byte{4, 5, 6}
	if got := Select(1, c, d); got != c {
		t.Errorf("Select(1, c, d) = %+v, want %+v", got, c)
	}
	if got := Select(0, c, d); got != d {
		t.Errorf("Select(0, c, d) = %+v, want %+v", got, d)
	}
}

func TestSelectSmallWidths(t *testing.T) {
	if got := Select[int16](1, -7, 7); got != -7 {
		t.Errorf("Select int16 (1) = %d, want -7", got)
	}
	if got := Select[int16](0, -7, 7); got != 7 {
		t.Errorf("Select int16 (0) = %d, want 7", got)
	}
	if got := Select[uint32](1, 0xDEADBEEF, 1); got != 0xDEADBEEF {
		t.Errorf("Select uint32 (1) = %x, want deadbeef", got)
	}
	a := generic12B{A: 1, B: 2, C: 3}
	b := generic12B{A: 4, B: 5, C: 6}
	if got := Select(1, a, b); got != a {
		t.Errorf("Select(1, a, b) = %+v, want %+v", got, a)
	}
	if got := Select(0, a, b); got != b {
		t.Errorf("Select(0, a, b) = %+v, want %+v", got, b)
	}
}

func TestSelectByteAndBool(t *testing.T) {
	if got := Select[byte](1, 0xAB, 0xCD); got != 0xAB {
		t.Errorf("Select byte (1) = %x, want ab", got)
	}
	if got := Select[bool](0, true, false); got != false {
		t.Errorf("Select bool (0) = %v, want false", got)
	}
}
