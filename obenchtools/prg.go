//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package obenchtools is test-only support for the oblivious
// primitives library: a seeded, reproducible pseudorandom generator
// for property-based test vectors, and a differential-timing harness
// for checking that selection timing does not depend on the
// predicate. Nothing here is imported by cmov, ocompare, ochoose,
// oarray, obitonic, or oblivious — it exists purely for _test.go
// files.
package obenchtools

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

// PRG is a seeded, deterministic byte stream built on ChaCha20, used
// in place of an unseedable source like testing/quick's default
// rand.Rand so that a failing property-based test prints a seed that
// reproduces it exactly.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a PRG from a 32-byte key. Tests typically derive the
// key from a small integer seed with SeedKey.
func NewPRG(key [32]byte) *PRG {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// Only possible if key/nonce sizes are wrong, which SeedKey
		// and the key array type both make impossible.
		panic(err)
	}
	return &PRG{cipher: c}
}

// SeedKey expands a small integer seed into a 32-byte ChaCha20 key, so
// that test failures can be reported and replayed by a single int.
func SeedKey(seed int64) [32]byte {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return key
}

func (p *PRG) fill(buf []byte) {
	zeros := make([]byte, len(buf))
	p.cipher.XORKeyStream(buf, zeros)
}

// Uint64 returns the next pseudorandom uint64 in the stream.
func (p *PRG) Uint64() uint64 {
	var buf [8]byte
	p.fill(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Int63n returns a pseudorandom value in [0, n).
func (p *PRG) Int63n(n int64) int64 {
	if n <= 0 {
		panic("obenchtools: Int63n requires n > 0")
	}
	return int64(p.Uint64()>>1) % n
}

// Float64 returns a pseudorandom value in [0, 1).
func (p *PRG) Float64() float64 {
	return float64(p.Uint64()>>11) / (1 << 53)
}

// SignedFloat64 returns a pseudorandom value in roughly [-scale, scale],
// useful for generating sort test vectors with both signs.
func (p *PRG) SignedFloat64(scale float64) float64 {
	return (p.Float64()*2 - 1) * scale
}

// Int32s returns n pseudorandom int32 values in [-bound, bound].
func (p *PRG) Int32s(n int, bound int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(p.Int63n(int64(bound)*2+1)) - bound
	}
	return out
}

// Float64s returns n pseudorandom float64 values in [-scale, scale],
// with a few NaN/Inf sentinels mixed in when withSpecials is true so
// comparison-kernel tests can exercise the unordered-compare path.
func (p *PRG) Float64s(n int, scale float64, withSpecials bool) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.SignedFloat64(scale)
	}
	if withSpecials && n >= 2 {
		out[0] = math.NaN()
		out[1] = math.Inf(1)
	}
	return out
}
