package bigint

// Int is the tagged union of spec §3.1: either a static buffer of inline
// limbs or a dynamic backend-owned descriptor. There is no pointer-prefix
// tag trick (spec §9 sanctions dropping it in a safe language); dynamic is
// the discriminant, and IsStatic projects it.
//
// Go passes everything by value or by explicit pointer, so there is no
// separate "move" operation distinct from a guarded assignment: Set(x)
// below copies x's value and storage class and leaves x unchanged. No
// exported operation resets a dynamic x to static-zero and hands its
// descriptor to another value, and bigint registers no finalizer: the
// descriptor of a dynamic Int that is simply dropped goes to the garbage
// collector, not back to the pool.
type Int struct {
	ssize   int8
	dynamic bool
	st      staticBuf
	eng     Engine
}

// NewAt returns a static zero value with the given inline capacity
// (1..64). It panics if ssize is out of range, the same way a misuse of a
// compile-time template parameter would fail to compile in the original.
func NewAt(ssize int) *Int {
	if ssize < 1 || ssize > maxStatic {
		panic("bigint: ssize out of range [1, 64]")
	}
	return &Int{ssize: int8(ssize)}
}

// New returns a static zero value using the configured default capacity
// (BIGNUM_DEFAULT_SSIZE, or 2).
func New() *Int { return NewAt(defaultSSize()) }

// Zero returns a static zero value at the configured default capacity, the
// additive-identity-named counterpart to New for callers that want their
// construction sites to read that way.
func Zero() *Int { return NewAt(defaultSSize()) }

// SSize returns z's configured inline capacity.
func (z *Int) SSize() int { return int(z.ssize) }

// IsStatic reports whether z is currently using inline (static) storage.
func (z *Int) IsStatic() bool { return !z.dynamic }

// IsDynamic reports whether z is currently using backend-owned (dynamic)
// storage.
func (z *Int) IsDynamic() bool { return z.dynamic }

func sameCapacity(op string, zs ...*Int) error {
	if len(zs) == 0 {
		return nil
	}
	want := zs[0].ssize
	for _, z := range zs[1:] {
		if z.ssize != want {
			return newInvalidArgumentError(op, "operands have mismatched capacity (%d vs %d)", want, z.ssize)
		}
	}
	return nil
}

// releaseDynamic returns z's backend descriptor to the pool and resets z
// to static-zero. It is the Go analogue of spec §4.3's "Destroy: if
// dynamic, return D to P."
func (z *Int) releaseDynamic() {
	if !z.dynamic {
		return
	}
	defaultPool.release(z.eng)
	z.eng = nil
	z.dynamic = false
	z.st.setZero(z.ssize)
}

// Set copies x's value into z, preserving x's storage class (spec §4.3
// copy-construct/assign). Self-assignment is a no-op.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	z.ssize = x.ssize
	if x.dynamic {
		if !z.dynamic {
			z.eng = defaultPool.acquire(limbsFor(x.eng.BitLen()))
		}
		z.eng.Set(x.eng)
		z.dynamic = true
		z.st.setZero(z.ssize)
	} else {
		z.releaseDynamic()
		z.st = x.st
	}
	return z
}

// Clone returns a fresh copy of z.
func (z *Int) Clone() *Int {
	c := NewAt(int(z.ssize))
	return c.Set(z)
}

func limbsFor(bitLen int) int {
	if bitLen == 0 {
		return 1
	}
	return (bitLen + bitsPerLimb - 1) / bitsPerLimb
}

// promote moves z from static to dynamic storage (spec §4.3 promote).
// hint is an upper bound on the needed limb count (0 means size exactly
// the current value). It is an InvalidArgumentError to promote an
// already-dynamic value, matching spec §7.
func (z *Int) promote(hint int) error {
	if z.dynamic {
		return newInvalidArgumentError("Promote", "value is already dynamic")
	}
	need := int(z.st.asize())
	if hint > need {
		need = hint
	}
	if need < 1 {
		need = 1
	}
	eng := defaultPool.acquire(need)
	eng.SetSignMagnitude(z.st.size < 0, z.st.limbs[:z.st.asize()])
	z.eng = eng
	z.dynamic = true
	z.st.setZero(z.ssize)
	statPromotions.add(1)
	pkgLogger.Debug().Int("ssize", int(z.ssize)).Int("need", need).Msg("bigint: promoted to dynamic storage")
	return nil
}

// Promote forces z to dynamic storage, for callers that want to opt out
// of the static fast path ahead of a known-large sequence of operations.
func (z *Int) Promote() error { return z.promote(0) }

// Demote shrinks z from dynamic to static storage if its value fits in
// z's configured capacity (spec §4.3 demote). It reports whether the
// shrink happened; a false result leaves z unchanged.
func (z *Int) Demote() bool {
	if !z.dynamic {
		return true
	}
	neg, limbs := z.eng.SignMagnitude()
	if len(limbs) > int(z.ssize) {
		return false
	}
	var st staticBuf
	copy(st.limbs[:], limbs)
	st.normalize(neg, int32(len(limbs)))
	defaultPool.release(z.eng)
	z.eng = nil
	z.dynamic = false
	z.st = st
	z.st.zeroUnusedLimbs(z.ssize)
	statDemotions.add(1)
	pkgLogger.Debug().Int("ssize", int(z.ssize)).Msg("bigint: demoted to static storage")
	return true
}

// Sign returns -1, 0, or +1 according to z's sign.
func (z *Int) Sign() int {
	if z.dynamic {
		return z.eng.Sign()
	}
	return z.st.sign()
}

// Size returns z's active limb count (asize): 0 for zero, matching the
// static path's asize() regardless of which storage class z is in.
func (z *Int) Size() int {
	if z.dynamic {
		if z.eng.Sign() == 0 {
			return 0
		}
		return limbsFor(z.eng.BitLen())
	}
	return int(z.st.asize())
}

// BitLen returns the number of bits in z's magnitude (spec §4.6 nbits).
func (z *Int) BitLen() int {
	if z.dynamic {
		return z.eng.BitLen()
	}
	n := z.st.asize()
	if n == 0 {
		return 0
	}
	top := z.st.limbs[n-1]
	bl := 0
	for top != 0 {
		bl++
		top >>= 1
	}
	return int(n-1)*bitsPerLimb + bl
}

// Negate flips z's sign in place; zero is unaffected.
func (z *Int) Negate() {
	if z.dynamic {
		z.eng.Neg(z.eng)
		return
	}
	z.st.size = -z.st.size
}

// equalStatic compares two static buffers by sign-magnitude size and
// numbMask-masked limb values (spec §9 open question: mask with
// numbMask, never a bit-width constant).
func equalStatic(a, b *staticBuf) bool {
	if a.size != b.size {
		return false
	}
	n := a.asize()
	for i := int32(0); i < n; i++ {
		if a.limbs[i]&numbMask != b.limbs[i]&numbMask {
			return false
		}
	}
	return true
}

// Equal reports whether z and x have the same value. Mixed-storage
// comparison constructs a view on the static side and compares through
// the backend (spec §4.6).
func (z *Int) Equal(x *Int) bool {
	switch {
	case !z.dynamic && !x.dynamic:
		return equalStatic(&z.st, &x.st)
	case z.dynamic && x.dynamic:
		return z.eng.Cmp(x.eng) == 0
	case z.dynamic:
		v := newView(&x.st, currentEngineFactory)
		return z.eng.Cmp(v) == 0
	default:
		v := newView(&z.st, currentEngineFactory)
		return x.eng.Cmp(v) == 0
	}
}
