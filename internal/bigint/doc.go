// Package bigint implements a small-value-optimized, arbitrary-precision
// signed integer. Most values live entirely inline in a fixed-capacity limb
// buffer (the "static" storage); values whose magnitude outgrows that
// buffer are transparently promoted to a heap-backed descriptor managed by
// a pluggable backend Engine (the "dynamic" storage).
//
// The configured inline capacity ("SSize" in the design notes) is chosen
// per Int at construction time via NewAt/FromInt64At/etc, 1..64 limbs.
// Arithmetic between two Ints of different configured capacity is an
// InvalidArgumentError.
package bigint
