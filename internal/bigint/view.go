package bigint

import "math/big"

// view adapts a static buffer to a backend-compatible read-only handle for
// the generic fallback path (spec §4.7): "a view yields a backend-
// compatible descriptor that points at the inline limbs without copying".
//
// math/big.Int.SetBits takes literal ownership of the []big.Word slice
// passed to it with no further copy once built (its doc: "the result and
// z may share the same underlying array"), the same technique
// internal/fibonacci/memory/arena.go uses to hand out *big.Int values
// backed by slices of a shared arena. Building that slice from our
// [64]uint64 array still costs one flat word-for-word copy (Go gives no
// safe way to reinterpret a fixed uint64 array as a []big.Word without
// unsafe, and this package does not use unsafe); what it avoids is any
// multiprecision work, matching the C7 promise that a view costs O(limb
// count), not O(one full arithmetic pass). gmpEngine's cgo-opaque mpz_t
// cannot accept a borrowed Go slice at all, so building a view over it
// goes through one big-endian byte conversion (see
// gmpEngine.SetSignMagnitude) — still read-only from the caller's
// perspective, just with a slightly higher constant. Both satisfy the C7
// contract ("views are read-only; the aliased limbs must not be mutated
// through the view").
type view struct {
	eng Engine
}

// newView builds a read-only Engine handle over s's current value, using
// the requested factory. The returned Engine must not be mutated through
// any method that writes into operand slots the caller still owns: it is
// always passed as an x/y argument, never as a receiver, by the kernels
// that call it.
func newView(s *staticBuf, factory EngineFactory) Engine {
	e := factory()
	if mb, ok := e.(*mathBigEngine); ok {
		// One word-for-word copy into a slice math/big's nat representation
		// then takes ownership of via SetBits; see the doc comment above.
		n := int(s.asize())
		words := make([]big.Word, n)
		for i := 0; i < n; i++ {
			words[i] = big.Word(s.limbs[i])
		}
		mb.v.SetBits(words)
		if s.size < 0 {
			mb.v.Neg(&mb.v)
		}
		return e
	}
	e.SetSignMagnitude(s.size < 0, s.limbs[:s.asize()])
	return e
}

// newViewDefault builds a view using the process default backend.
func newViewDefault(s *staticBuf) Engine {
	return newView(s, currentEngineFactory)
}
