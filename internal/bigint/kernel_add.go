package bigint

// kernelAddSub implements spec §4.5.1 (Add/Sub) across the SSize==1,
// SSize==2, and generic paths. Subtraction is "negating op2's sign and
// running the addition logic" (spec §4.5.1), expressed here as bNeg.
//
// Return convention (spec §4.5): true if the result fit in rop's static
// buffer; false means failure, rop untouched, and the caller must promote
// and retry through the backend.
func kernelAddSub(ssize int8, rop, a, b *staticBuf, bNeg bool) bool {
	switch ssize {
	case 1:
		return addSub1(rop, a, b, bNeg)
	case 2:
		return addSub2(rop, a, b, bNeg)
	default:
		return addSubGeneric(ssize, rop, a, b, bNeg)
	}
}

func topBitSet(l limb) bool { return l&(1<<(bitsPerLimb-1)) != 0 }

// copyWithSign copies src's magnitude into rop with the given explicit
// sign (used for the "one operand is zero" shortcut shared by every size).
func copyWithSign(rop, src *staticBuf, sign int) {
	rop.limbs = src.limbs
	if sign == 0 {
		rop.size = 0
		return
	}
	mag := src.asize()
	if sign < 0 {
		rop.size = -mag
	} else {
		rop.size = mag
	}
}

// addSub1 is the SSize==1 specialization: a single add_overflow or single
// borrow, sign decided by inspection (spec §4.5.1).
func addSub1(rop, a, b *staticBuf, bNeg bool) bool {
	aSign := a.sign()
	bSign := b.sign()
	if bNeg {
		bSign = -bSign
	}
	if aSign == 0 {
		copyWithSign(rop, b, bSign)
		return true
	}
	if bSign == 0 {
		copyWithSign(rop, a, aSign)
		return true
	}
	a0, b0 := a.limbs[0], b.limbs[0]
	if aSign == bSign {
		sum, carry := addOverflow(a0, b0)
		if carry != 0 {
			return false
		}
		rop.limbs[0] = sum
		if sum == 0 {
			rop.size = 0
		} else {
			rop.size = int32(aSign)
		}
		return true
	}
	switch {
	case a0 == b0:
		rop.setZero(1)
	case a0 > b0:
		rop.limbs[0] = a0 - b0
		rop.size = int32(aSign)
	default:
		rop.limbs[0] = b0 - a0
		rop.size = int32(bSign)
	}
	return true
}

// addSub2 is the SSize==2 specialization (spec §4.5.1): both limbs are
// always processed regardless of asize, since the zero-tail invariant
// guarantees unused high limbs are zero.
func addSub2(rop, a, b *staticBuf, bNeg bool) bool {
	aSign := a.sign()
	bSign := b.sign()
	if bNeg {
		bSign = -bSign
	}
	if aSign == 0 {
		copyWithSign(rop, b, bSign)
		return true
	}
	if bSign == 0 {
		copyWithSign(rop, a, aSign)
		return true
	}

	a0, a1 := a.limbs[0], a.limbs[1]
	b0, b1 := b.limbs[0], b.limbs[1]

	if aSign == bSign {
		lo, cyLo := addOverflow(a0, b0)
		hi1, cyHi1 := addOverflow(a1, b1)
		hi2, cyHi2 := addOverflow(hi1, cyLo)
		if cyHi1|cyHi2 != 0 {
			return false
		}
		rop.limbs[0], rop.limbs[1] = lo, hi2
		setSize2(rop, aSign, lo, hi2)
		return true
	}

	// Opposite effective sign: subtract the smaller magnitude from the
	// larger, decided by a two-limb compare.
	aGE := a1 > b1 || (a1 == b1 && a0 >= b0)
	if a1 == b1 && a0 == b0 {
		rop.setZero(2)
		return true
	}
	var lo, hi limb
	var resultSign int
	if aGE {
		d0, borrow := subBorrow(a0, b0)
		d1, _ := subBorrowB(a1, b1, borrow)
		lo, hi, resultSign = d0, d1, aSign
	} else {
		d0, borrow := subBorrow(b0, a0)
		d1, _ := subBorrowB(b1, a1, borrow)
		lo, hi, resultSign = d0, d1, bSign
	}
	rop.limbs[0], rop.limbs[1] = lo, hi
	setSize2(rop, resultSign, lo, hi)
	return true
}

func setSize2(rop *staticBuf, sign int, lo, hi limb) {
	switch {
	case hi != 0:
		rop.size = int32(sign) * 2
	case lo != 0:
		rop.size = int32(sign) * 1
	default:
		rop.size = 0
	}
}

// addMagInto computes x+y (as unsigned magnitudes, x and y need not be the
// same length) into dst.limbs, returning the (unnormalized) limb count and
// any carry out of the top limb.
func addMagInto(dst *staticBuf, x, y []limb) (n int32, carryOut limb) {
	if len(x) < len(y) {
		x, y = y, x
	}
	var c limb
	i := 0
	for ; i < len(y); i++ {
		s, c1 := addOverflowC(x[i], y[i], c)
		dst.limbs[i] = s
		c = c1
	}
	for ; i < len(x); i++ {
		s, c1 := addOverflowC(x[i], 0, c)
		dst.limbs[i] = s
		c = c1
	}
	return int32(len(x)), c
}

// cmpMag compares two normalized (no leading-zero-limb) magnitudes.
func cmpMag(x, y []limb) int {
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// subMagInto computes x-y (x magnitude >= y magnitude, both normalized)
// into dst.limbs, scans down to find the true size, and returns it.
func subMagInto(dst *staticBuf, x, y []limb) int32 {
	var borrow limb
	i := 0
	for ; i < len(y); i++ {
		d, b1 := subBorrowB(x[i], y[i], borrow)
		dst.limbs[i] = d
		borrow = b1
	}
	for ; i < len(x); i++ {
		d, b1 := subBorrowB(x[i], 0, borrow)
		dst.limbs[i] = d
		borrow = b1
	}
	n := int32(len(x))
	for n > 0 && dst.limbs[n-1]&numbMask == 0 {
		n--
	}
	return n
}

// addSubGeneric is the SSize>=3 (or nails-present) path of spec §4.5.1.
// Go has no separate mpn-equivalent library to delegate the limb-add/sub
// helpers to (neither math/big nor github.com/ncw/gmp expose one
// publicly); the loops below over limb.go's addOverflow/subBorrow are the
// direct local reimplementation of that contract.
func addSubGeneric(ssize int8, rop, a, b *staticBuf, bNeg bool) bool {
	aSign := a.sign()
	bSign := b.sign()
	if bNeg {
		bSign = -bSign
	}
	if aSign == 0 {
		copyWithSign(rop, b, bSign)
		return true
	}
	if bSign == 0 {
		copyWithSign(rop, a, aSign)
		return true
	}

	asize, bsize := a.asize(), b.asize()

	if aSign == bSign {
		// Overflow pre-check (spec §4.5.1): bail before writing anything if
		// either full-width operand's top bit is set, since a partial write
		// into an aliased destination would otherwise corrupt the inputs.
		// This only applies to true addition: subtracting two magnitudes
		// never grows past the larger operand's own width, so a full-width
		// opposite-sign operand must not trip this check (spec §8 boundary
		// behaviour: "must not falsely fail").
		if (asize == int32(ssize) && topBitSet(a.limbs[asize-1])) ||
			(bsize == int32(ssize) && topBitSet(b.limbs[bsize-1])) {
			return false
		}
		var sum staticBuf
		n, carry := addMagInto(&sum, a.limbs[:asize], b.limbs[:bsize])
		if carry != 0 {
			if n >= int32(ssize) {
				return false
			}
			sum.limbs[n] = carry
			n++
		}
		if n > int32(ssize) {
			return false
		}
		*rop = sum
		rop.normalize(aSign < 0, n)
		return true
	}

	cmp := cmpMag(a.limbs[:asize], b.limbs[:bsize])
	if cmp == 0 {
		rop.setZero(ssize)
		return true
	}
	var diff staticBuf
	var n int32
	var resultNeg bool
	if cmp > 0 {
		n = subMagInto(&diff, a.limbs[:asize], b.limbs[:bsize])
		resultNeg = aSign < 0
	} else {
		n = subMagInto(&diff, b.limbs[:bsize], a.limbs[:asize])
		resultNeg = bSign < 0
	}
	*rop = diff
	rop.normalize(resultNeg, n)
	return true
}
