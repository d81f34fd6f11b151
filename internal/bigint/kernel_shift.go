package bigint

// kernelShiftLeft implements spec §4.5.5 (mul_2exp: shift left by s bits).
// Same return convention as kernelAddSub: true on success, false means the
// result overflowed rop's capacity and the caller must promote and retry.
func kernelShiftLeft(ssize int8, rop, a *staticBuf, s uint) bool {
	sign := a.sign()
	if sign == 0 || s == 0 {
		*rop = *a
		return true
	}
	switch ssize {
	case 1:
		return shiftLeft1(rop, a, sign, s)
	case 2:
		return shiftLeft2(rop, a, sign, s)
	default:
		return shiftLeftGeneric(ssize, rop, a, sign, s)
	}
}

// shiftLeft1 is the SSize==1 specialization: fails whenever s would shift
// any set bit past the single limb's top.
func shiftLeft1(rop, a *staticBuf, sign int, s uint) bool {
	if s >= bitsPerLimb {
		return false
	}
	v := a.limbs[0]
	if v>>(bitsPerLimb-s) != 0 {
		return false
	}
	rop.limbs[0] = v << s
	rop.size = int32(sign)
	return true
}

// shiftLeft2 is the SSize==2 specialization (spec §4.5.1 wording reused for
// shift): when s spans a whole limb or more, lo is promoted into the hi
// position first; otherwise hi' = (hi<<s)|(lo>>(bitsPerLimb-s)).
func shiftLeft2(rop, a *staticBuf, sign int, s uint) bool {
	lo, hi := a.limbs[0], a.limbs[1]
	if s >= bitsPerLimb {
		if hi != 0 {
			return false
		}
		sh := s - bitsPerLimb
		if sh >= bitsPerLimb {
			if lo != 0 {
				return false
			}
			rop.limbs[0], rop.limbs[1] = 0, 0
			rop.size = 0
			return true
		}
		if sh > 0 && lo>>(bitsPerLimb-sh) != 0 {
			return false
		}
		rop.limbs[0] = 0
		rop.limbs[1] = lo << sh
		setSize2(rop, sign, rop.limbs[0], rop.limbs[1])
		return true
	}
	if hi>>(bitsPerLimb-s) != 0 {
		return false
	}
	newHi := (hi << s) | (lo >> (bitsPerLimb - s))
	newLo := lo << s
	rop.limbs[0], rop.limbs[1] = newLo, newHi
	setSize2(rop, sign, newLo, newHi)
	return true
}

// shiftLeftGeneric is the SSize>=3 path: split s into a whole-limb shift ls
// and a sub-limb shift rs, then either shift in place (scratch-staged, so
// rop may alias a) or bail if the result needs more than ssize limbs.
func shiftLeftGeneric(ssize int8, rop, a *staticBuf, sign int, s uint) bool {
	asize := a.asize()
	// Bail before touching scratch if the whole-limb shift alone already
	// pushes past the fixed scratch capacity: the result cannot fit in
	// ssize (<= maxStatic) limbs either way, so this is just an earlier
	// exit from the same failure the size check below would reach.
	if s/bitsPerLimb > uint(maxStatic) {
		return false
	}
	ls := int32(s / bitsPerLimb)
	rs := s % bitsPerLimb

	if ls+asize > maxStatic {
		return false
	}
	var scratch [maxStatic + 1]limb
	var carry limb
	if rs == 0 {
		copy(scratch[ls:ls+asize], a.limbs[:asize])
	} else {
		for i := int32(0); i < asize; i++ {
			v := a.limbs[i]
			scratch[ls+i] = (v << rs) | carry
			carry = v >> (bitsPerLimb - rs)
		}
		if carry != 0 {
			scratch[ls+asize] = carry
		}
	}

	n := ls + asize
	if rs != 0 && carry != 0 {
		n++
	}
	for n > 0 && scratch[n-1]&numbMask == 0 {
		n--
	}
	if n > int32(ssize) {
		return false
	}
	rop.limbs = [maxStatic]limb{}
	copy(rop.limbs[:], scratch[:n])
	rop.normalize(sign < 0, n)
	return true
}
