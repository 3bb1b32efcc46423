//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package obenchtools

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/markkurossi/tabulate"
	"golang.org/x/sys/cpu"
)

// TimingClass partitions a batch of timing samples by the predicate
// value that was in effect when each sample was taken, for
// dudect-style differential tests: a selection kernel's running time
// must be statistically indistinguishable between pred=0 and pred=1.
type TimingClass struct {
	Label   string
	Samples []time.Duration
}

// Report renders a side-by-side comparison of two TimingClasses —
// typically pred=0 vs pred=1 — as a table, with the host CPU's
// relevant feature flags appended so an anomaly can be
// cross-referenced against the microarchitecture it ran on.
func Report(w io.Writer, a, b TimingClass) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Class").SetAlign(tabulate.ML)
	tab.Header("N").SetAlign(tabulate.MR)
	tab.Header("Median").SetAlign(tabulate.MR)
	tab.Header("P10").SetAlign(tabulate.MR)
	tab.Header("P90").SetAlign(tabulate.MR)

	for _, class := range []TimingClass{a, b} {
		row := tab.Row()
		row.Column(class.Label)
		row.Column(fmt.Sprintf("%d", len(class.Samples)))
		med, p10, p90 := quantiles(class.Samples)
		row.Column(med.String())
		row.Column(p10.String())
		row.Column(p90.String())
	}

	row := tab.Row()
	row.Column("CPU").SetFormat(tabulate.FmtItalic)
	row.Column(cpuFeatures()).SetFormat(tabulate.FmtItalic)

	tab.Print(w)
}

func quantiles(samples []time.Duration) (median, p10, p90 time.Duration) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	median = sorted[len(sorted)/2]
	p10 = sorted[len(sorted)*10/100]
	p90 = sorted[len(sorted)*90/100]
	return
}

// cpuFeatures summarizes the host CPU features most relevant to
// explaining a cmov/ochoose timing anomaly (a "constant-time" claim
// that actually depends on whether the toolchain picked a
// vector-width-sensitive code path).
func cpuFeatures() string {
	if cpu.X86.HasAVX2 {
		return fmt.Sprintf("amd64 avx2=%v avx512=%v", cpu.X86.HasAVX2, cpu.X86.HasAVX512)
	}
	if cpu.ARM64.HasASIMD {
		return fmt.Sprintf("arm64 asimd=%v sve=%v", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	}
	return "unknown"
}
