package bigint

import "math/bits"

// kernelDiv implements spec §4.5.4 (Divide) for two static operands.
// Division of static-by-static always fits in the static buffers (the
// quotient and remainder are bounded by the dividend's own size), so this
// never signals failure; its only job is picking the right technique.
// Preconditions (divisor nonzero, q and r distinct) are enforced by the
// caller (Div in int.go) before this is reached.
func kernelDiv(ssize int8, q, r, a, b *staticBuf) {
	aSign, bSign := a.sign(), b.sign()
	if aSign == 0 {
		q.setZero(ssize)
		r.setZero(ssize)
		return
	}
	if b.asize() > a.asize() {
		// |divisor| > |dividend|: q = 0, r = dividend (spec §4.5.4). a is
		// read into dividend before q is touched: a may alias q (spec §8
		// overlap safety), and q.setZero would otherwise stomp the shared
		// buffer before it's copied into r.
		dividend := *a
		q.setZero(ssize)
		*r = dividend
		return
	}
	if b.asize() == 1 {
		divBySingleLimb(ssize, q, r, a, b, aSign, bSign)
		return
	}
	// Multi-limb divisor: spec §4.5.4's generic path dispatches to the
	// backend's tdiv_qr. SSize==2's own wide-divide (div_2by2) primitive
	// is permanently unavailable in Go (see limb.go), so this is also
	// where the SSize==2 kernel lands whenever both operands don't fit in
	// a single limb, exactly per the spec's documented fallback.
	divViaBackend(ssize, q, r, a, b)
}

// divBySingleLimb is the SSize==1 path (spec §4.5.4: "direct native / and
// % after masking"), generalized here to any capacity: it is also the
// degenerate case the SSize==2 kernel reduces to when both operands fit in
// one limb. Each step divides (remainder:nextDigit) by the single-limb
// divisor using bits.Div64, which is always in-range because a remainder
// is by definition smaller than the divisor.
func divBySingleLimb(ssize int8, q, r, a, b *staticBuf, aSign, bSign int) {
	d := b.limbs[0] & numbMask
	asize := a.asize()
	var quot [maxStatic]limb
	var rem limb
	for i := asize - 1; i >= 0; i-- {
		qd, rd := bits.Div64(rem, a.limbs[i]&numbMask, d)
		quot[i] = qd
		rem = rd
	}
	n := asize
	for n > 0 && quot[n-1]&numbMask == 0 {
		n--
	}
	q.limbs = [maxStatic]limb{}
	copy(q.limbs[:], quot[:n])
	q.normalize(aSign*bSign < 0, n)

	r.limbs = [maxStatic]limb{}
	if rem == 0 {
		r.size = 0
	} else {
		r.limbs[0] = rem
		r.size = int32(aSign) // sign of remainder == sign of dividend
	}
	_ = ssize
}

// divViaBackend builds read-only views (C7) of a and b and performs the
// division through the configured backend Engine, then unpacks the result
// back into the static q/r buffers. It never promotes q or r: spec
// guarantees the quotient and remainder of a static/static division always
// fit in the dividend's own capacity.
func divViaBackend(ssize int8, q, r, a, b *staticBuf) {
	av := newView(a, currentEngineFactory)
	bv := newView(b, currentEngineFactory)
	qe := defaultPool.acquire(int(ssize))
	re := defaultPool.acquire(int(ssize))
	defer defaultPool.release(qe)
	defer defaultPool.release(re)

	qe.QuoRem(av, bv, re)

	qNeg, qLimbs := qe.SignMagnitude()
	q.limbs = [maxStatic]limb{}
	copy(q.limbs[:], qLimbs)
	q.normalize(qNeg, int32(len(qLimbs)))

	rNeg, rLimbs := re.SignMagnitude()
	r.limbs = [maxStatic]limb{}
	copy(r.limbs[:], rLimbs)
	r.normalize(rNeg, int32(len(rLimbs)))
}
