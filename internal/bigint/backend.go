package bigint

// Engine is the multiprecision backend the dynamic storage variant (C3)
// delegates to once a value's magnitude outgrows its static buffer. Spec
// §6.2 deliberately does not prescribe a concrete backend ("any engine
// providing the operations... can be used"); Engine is the Go seam for
// that, selected per-process with UseEngine the same way
// fibonacci.CalculatorFactory in the teacher repo selects a coreCalculator.
//
// Every method mutates the receiver and, where natural, returns it, in the
// same shape math/big.Int and github.com/ncw/gmp.Int already share (both
// of which implement Engine here). Implementations may assume all Engine
// arguments passed to a method are the same concrete type as the receiver;
// bigint never mixes concrete engines within one arithmetic call.
type Engine interface {
	// New returns a freshly zeroed Engine of the same concrete backend.
	New() Engine

	// Reset zeroes the receiver for reuse from the pool.
	Reset()

	SetInt64(x int64)
	SetUint64(x uint64)
	// SetFloat64 sets the receiver to the truncated value of x. It reports
	// false if x is not finite.
	SetFloat64(x float64) bool
	// SetString parses s in the given base (2..62) and reports whether it
	// succeeded.
	SetString(s string, base int) bool
	// SetSignMagnitude sets the receiver from an explicit sign and a
	// little-endian, non-negative magnitude limb slice (no leading-zero
	// requirement; the engine normalizes). neg is ignored when the
	// magnitude is zero.
	SetSignMagnitude(neg bool, limbs []uint64)
	Set(x Engine)

	Add(x, y Engine)
	Sub(x, y Engine)
	Mul(x, y Engine)
	// AddMul performs z += x*y.
	AddMul(x, y Engine)
	// QuoRem sets the receiver to x/y truncated toward zero and r to the
	// remainder, with sign(r) == sign(x) or r == 0. y must be nonzero and r
	// must not alias the receiver.
	QuoRem(x, y Engine, r Engine)
	// Lsh sets the receiver to x << n.
	Lsh(x Engine, n uint)
	Neg(x Engine)

	Sign() int
	CmpAbs(x Engine) int
	Cmp(x Engine) int
	BitLen() int
	IsZero() bool

	Int64() (int64, bool)
	Uint64() (uint64, bool)
	Float64() float64
	Text(base int) string

	// SignMagnitude returns the sign and the little-endian, non-negative
	// magnitude limbs of the value with no leading zero limb. The returned
	// slice must be treated as read-only and is only valid until the next
	// mutation of the receiver.
	SignMagnitude() (neg bool, limbs []uint64)
}

// EngineFactory produces zero-valued Engine instances of one concrete
// backend. It is the unit the backend pool (C4) and UseEngine operate on.
type EngineFactory func() Engine

var currentEngineFactory = GMPEngine

// UseEngine sets the process-wide default backend factory used by
// package-level convenience constructors and by promotion when no more
// specific engine is already in play. It mirrors the teacher's
// CalculatorFactory-driven strategy selection. It is the only backend
// selection point: the *At constructors and Promote take no engine
// argument, and values that are already dynamic keep the engine they were
// promoted with.
func UseEngine(factory EngineFactory) {
	currentEngineFactory = factory
}

// DefaultEngine returns the currently configured process-wide default
// backend factory.
func DefaultEngine() EngineFactory {
	return currentEngineFactory
}
