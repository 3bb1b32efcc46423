//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package obenchtools

import (
	"fmt"

	"github.com/markkurossi/text/superscript"
)

// RoundLabel names a bitonic-sort benchmark case by its element count
// and ceil(log2(n)), with the base of the log written as a
// superscript, e.g. RoundLabel(1024) == "N=1024/log²N=10".
func RoundLabel(n int) string {
	return fmt.Sprintf("N=%d/log%sN=%d", n, superscript.Itoa(2), log2Ceil(n))
}

// log2Ceil returns ceil(log2(n)) for n > 0. The sorter itself drives
// its comparator sweep from bit-shifted loop counters; this exists
// only to size benchmark labels.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	k := 0
	orig := n
	for n > 1 {
		k++
		n /= 2
	}
	if (1 << k) < orig {
		k++
	}
	return k
}
