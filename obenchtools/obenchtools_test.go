//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package obenchtools

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPRGDeterministic(t *testing.T) {
	a := NewPRG(SeedKey(7))
	b := NewPRG(SeedKey(7))
	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("streams diverged at %d: %d != %d", i, x, y)
		}
	}
	c := NewPRG(SeedKey(8))
	if a.Uint64() == c.Uint64() {
		t.Error("different seeds produced the same next value")
	}
}

func TestPRGRanges(t *testing.T) {
	prg := NewPRG(SeedKey(1))
	for i := 0; i < 1000; i++ {
		if f := prg.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", f)
		}
		if n := prg.Int63n(10); n < 0 || n >= 10 {
			t.Fatalf("Int63n(10) = %d, want [0, 10)", n)
		}
		if s := prg.SignedFloat64(5); s < -5 || s > 5 {
			t.Fatalf("SignedFloat64(5) = %v, want [-5, 5]", s)
		}
	}
	for _, v := range prg.Int32s(100, 500) {
		if v < -500 || v > 500 {
			t.Fatalf("Int32s value %d out of [-500, 500]", v)
		}
	}
}

func TestRoundLabel(t *testing.T) {
	got := RoundLabel(1024)
	if !strings.Contains(got, "N=1024") || !strings.HasSuffix(got, "=10") {
		t.Errorf("RoundLabel(1024) = %q", got)
	}
	if got := RoundLabel(1); !strings.HasSuffix(got, "=0") {
		t.Errorf("RoundLabel(1) = %q", got)
	}
	if got := RoundLabel(100); !strings.HasSuffix(got, "=7") {
		t.Errorf("RoundLabel(100) = %q", got)
	}
}

func TestReportRenders(t *testing.T) {
	a := TimingClass{
		Label:   "pred=0",
		Samples: []time.Duration{100, 200, 300, 400, 500},
	}
	b := TimingClass{
		Label:   "pred=1",
		Samples: []time.Duration{150, 250, 350, 450, 550},
	}
	var buf bytes.Buffer
	Report(&buf, a, b)
	out := buf.String()
	for _, want := range []string{"pred=0", "pred=1", "Median", "CPU"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
