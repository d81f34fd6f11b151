package bigint

// kernelMul implements spec §4.5.2 (Multiply). Return convention: 0 means
// success (the product is already written into rop); any positive value
// is an upper-bound size hint used by promote() to size the dynamic
// descriptor before retrying through the backend.
func kernelMul(ssize int8, rop, a, b *staticBuf) int {
	aSign, bSign := a.sign(), b.sign()
	if aSign == 0 || bSign == 0 {
		rop.setZero(ssize)
		return 0
	}
	switch ssize {
	case 1:
		return mul1(rop, a, b, aSign, bSign)
	case 2:
		return mul2(rop, a, b, aSign, bSign)
	default:
		return mulGeneric(ssize, rop, a, b, aSign, bSign)
	}
}

// mul1 is the SSize==1, wide-multiply specialization of spec §4.5.2: a
// single mul2x1, success iff the high half is zero.
func mul1(rop, a, b *staticBuf, aSign, bSign int) int {
	lo, hi := mul2x1(a.limbs[0], b.limbs[0])
	if hi != 0 {
		return 2
	}
	rop.limbs[0] = lo
	if lo == 0 {
		rop.size = 0
	} else {
		rop.size = int32(aSign * bSign)
	}
	return 0
}

// mul2 is the SSize==2, wide-multiply specialization of spec §4.5.2.
func mul2(rop, a, b *staticBuf, aSign, bSign int) int {
	asize, bsize := a.asize(), b.asize()
	sign := aSign * bSign

	if asize == 1 && bsize == 1 {
		lo, hi := mul2x1(a.limbs[0], b.limbs[0])
		rop.limbs[0], rop.limbs[1] = lo, hi
		setSize2(rop, sign, lo, hi)
		return 0
	}
	if asize == 2 && bsize == 2 {
		return 4
	}

	// One operand is single-limb, the other two-limb (either order):
	// three limbs from two mul2x1s and one add-with-carry.
	var x0, x1, y0 limb
	if asize == 1 {
		x0, x1, y0 = b.limbs[0], b.limbs[1], a.limbs[0]
	} else {
		x0, x1, y0 = a.limbs[0], a.limbs[1], b.limbs[0]
	}
	lo0, hi0 := mul2x1(x0, y0)
	lo1, hi1 := mul2x1(x1, y0)
	r0 := lo0
	r1, c := addOverflow(lo1, hi0)
	r2 := hi1 + c
	if r2 != 0 {
		return 4
	}
	rop.limbs[0], rop.limbs[1] = r0, r1
	setSize2(rop, sign, r0, r1)
	return 0
}

// addCarryAt ripples val into dst starting at idx, propagating as far as
// needed (schoolbook multiply's column carry can, in principle, ripple
// more than one limb when accumulating prior rows).
func addCarryAt(dst []limb, idx int, val limb) {
	for val != 0 && idx < len(dst) {
		s, c := addOverflow(dst[idx], val)
		dst[idx] = s
		val = c
		idx++
	}
}

// mulMag computes the unsigned schoolbook product x*y into dst (which must
// be zeroed and at least len(x)+len(y) limbs long).
func mulMag(dst, x, y []limb) {
	for i := range y {
		yi := y[i]
		if yi == 0 {
			continue
		}
		var carry limb
		for j := range x {
			pLo, pHi := mul2x1(x[j], yi)
			s0, c1 := addOverflow(pLo, dst[i+j])
			s0, c2 := addOverflow(s0, carry)
			dst[i+j] = s0
			carry = pHi + c1 + c2
		}
		addCarryAt(dst, i+len(x), carry)
	}
}

// mulGeneric is the SSize>=3 path of spec §4.5.2. The product is always
// computed into a 2*SSize scratch buffer rather than rop directly, which
// trivially satisfies the overlap rule (spec §4.3) regardless of whether
// rop aliases a or b.
func mulGeneric(ssize int8, rop, a, b *staticBuf, aSign, bSign int) int {
	asize, bsize := int(a.asize()), int(b.asize())
	var scratch [2 * maxStatic]limb
	mulMag(scratch[:asize+bsize], a.limbs[:asize], b.limbs[:bsize])

	n := int32(asize + bsize)
	for n > 0 && scratch[n-1]&numbMask == 0 {
		n--
	}
	if n > int32(ssize) {
		return int(n)
	}
	rop.limbs = [maxStatic]limb{}
	copy(rop.limbs[:], scratch[:n])
	rop.normalize(aSign*bSign < 0, n)
	return 0
}

// kernelAddMul implements spec §4.5.3 (fused multiply-add into rop: rop +=
// a*b). Same return convention as kernelMul. Aliasing rop with a and/or b
// (addmul(a,a,b), addmul(a,b,a), addmul(a,a,a)) is specified (spec §9
// open question) to match the unfused mul-then-add equivalent; the
// dedicated 1-limb/2-limb paths stage the product in a local staticBuf
// before ever writing through rop, so they're safe by construction, the
// same way the unfused path (mul into scratch, then add) trivially is.
func kernelAddMul(ssize int8, rop, a, b *staticBuf) int {
	aSign, bSign := a.sign(), b.sign()
	if aSign == 0 || bSign == 0 {
		return 0
	}
	switch ssize {
	case 1:
		return addMul1(rop, a, b, aSign, bSign)
	case 2:
		return addMul2(rop, a, b, aSign, bSign)
	default:
		return addMulGeneric(ssize, rop, a, b, aSign, bSign)
	}
}

func addMul1(rop, a, b *staticBuf, aSign, bSign int) int {
	lo, hi := mul2x1(a.limbs[0], b.limbs[0])
	if hi != 0 {
		return 2
	}
	var prod staticBuf
	prod.limbs[0] = lo
	if lo != 0 {
		prod.size = int32(aSign * bSign)
	}
	if !kernelAddSub(1, rop, rop, &prod, false) {
		return 2
	}
	return 0
}

func addMul2(rop, a, b *staticBuf, aSign, bSign int) int {
	var prod staticBuf
	if hint := mul2(&prod, a, b, aSign, bSign); hint != 0 {
		return hint
	}
	if !kernelAddSub(2, rop, rop, &prod, false) {
		return 3
	}
	return 0
}

func addMulGeneric(ssize int8, rop, a, b *staticBuf, aSign, bSign int) int {
	var prod staticBuf
	if hint := mulGeneric(ssize, &prod, a, b, aSign, bSign); hint != 0 {
		return hint
	}
	if !addSubGeneric(ssize, rop, rop, &prod, false) {
		return int(ssize) + 1
	}
	return 0
}
