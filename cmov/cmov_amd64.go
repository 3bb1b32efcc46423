//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build amd64 && gc && !noasm

package cmov

//go:noescape
func select8(pred Predicate, t, f byte, out *byte)

//go:noescape
func select16(pred Predicate, t, f int16, out *int16)

//go:noescape
func select32(pred Predicate, t, f int32, out *int32)

//go:noescape
func select64(pred Predicate, t, f int64, out *int64)
