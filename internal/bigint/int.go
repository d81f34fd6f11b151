package bigint

import "fmt"

// FromInt64At returns a static zero of the given capacity set to n.
func FromInt64At(ssize int, n int64) *Int {
	z := NewAt(ssize)
	z.st.setInt64(z.ssize, n)
	return z
}

// FromUint64At returns a static zero of the given capacity set to n.
func FromUint64At(ssize int, n uint64) *Int {
	z := NewAt(ssize)
	z.st.setUint64(z.ssize, n)
	return z
}

// FromFloat64At returns a static zero of the given capacity set to the
// truncated value of x, promoting to dynamic storage if x's magnitude
// outgrows ssize limbs. It returns an error if x is not finite.
func FromFloat64At(ssize int, x float64) (*Int, error) {
	z := NewAt(ssize)
	fits, err := z.st.setFloat64(z.ssize, x)
	if err != nil {
		return nil, err
	}
	if fits {
		return z, nil
	}
	eng := defaultPool.acquire(limbsFor(64))
	if !eng.SetFloat64(x) {
		defaultPool.release(eng)
		return nil, newInvalidArgumentError("FromFloat64", "non-finite value %v", x)
	}
	z.eng = eng
	z.dynamic = true
	return z, nil
}

// FromStringAt returns a static zero of the given capacity parsed from str
// in the given base (2..62), promoting to dynamic storage if the value
// needs more than ssize limbs. Parsing always goes through static.go's own
// digit logic, even for values that end up promoted: the backend engines'
// SetString disagrees with spec §6.3's digit convention for bases 11..36
// (see setString's doc comment), so the already-parsed magnitude is handed
// to the backend directly via SetSignMagnitude instead of being reparsed.
func FromStringAt(ssize int, str string, base int) (*Int, error) {
	z := NewAt(ssize)
	_, fits, err := z.st.setString(z.ssize, str, base)
	if err != nil {
		return nil, err
	}
	if fits {
		return z, nil
	}
	eng := defaultPool.acquire(int(z.st.asize()))
	eng.SetSignMagnitude(z.st.size < 0, z.st.limbs[:z.st.asize()])
	z.st.setZero(z.ssize)
	z.eng = eng
	z.dynamic = true
	return z, nil
}

// FromInt64, FromUint64, FromFloat64 and FromString are convenience
// constructors at the configured default capacity (spec's default SSize).
func FromInt64(n int64) *Int   { return FromInt64At(defaultSSize(), n) }
func FromUint64(n uint64) *Int { return FromUint64At(defaultSSize(), n) }
func FromFloat64(x float64) (*Int, error) {
	return FromFloat64At(defaultSSize(), x)
}
func FromString(str string, base int) (*Int, error) {
	return FromStringAt(defaultSSize(), str, base)
}

// Int64 returns z's value as an int64, reporting an OverflowError if z does
// not fit.
func (z *Int) Int64() (int64, error) {
	if z.dynamic {
		v, ok := z.eng.Int64()
		if !ok {
			return 0, newOverflowError("Int64", "value does not fit in int64")
		}
		return v, nil
	}
	v := newViewDefault(&z.st)
	n, ok := v.Int64()
	if !ok {
		return 0, newOverflowError("Int64", "value does not fit in int64")
	}
	return n, nil
}

// Uint64 returns z's value as a uint64, reporting an OverflowError if z
// does not fit (including when z is negative).
func (z *Int) Uint64() (uint64, error) {
	if z.dynamic {
		v, ok := z.eng.Uint64()
		if !ok {
			return 0, newOverflowError("Uint64", "value does not fit in uint64")
		}
		return v, nil
	}
	v := newViewDefault(&z.st)
	n, ok := v.Uint64()
	if !ok {
		return 0, newOverflowError("Uint64", "value does not fit in uint64")
	}
	return n, nil
}

// Float64 returns the closest float64 approximation of z's value.
func (z *Int) Float64() float64 {
	if z.dynamic {
		return z.eng.Float64()
	}
	return newViewDefault(&z.st).Float64()
}

// Text renders z in the given base (2..62), per spec §6.3. Rendering always
// goes through formatMagnitude rather than the backend engine's own Text,
// for the same digit-convention reason FromStringAt avoids the backend's
// SetString: see static.go's setString doc comment.
func (z *Int) Text(base int) string {
	if z.dynamic {
		neg, limbs := z.eng.SignMagnitude()
		return formatMagnitude(neg, limbs, base)
	}
	return z.st.toString(base)
}

// String renders z in base 10, satisfying fmt.Stringer.
func (z *Int) String() string { return z.Text(10) }

// Format satisfies fmt.Formatter for %s, %v, %d, %x, %o and %b, matching
// math/big.Int's own verb set (spec's "Supplemented features": Int should
// behave naturally with the fmt package the way every other numeric type in
// the ecosystem does).
func (z *Int) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'v', 'd':
		s = z.Text(10)
	case 'x':
		s = z.Text(16)
	case 'o':
		s = z.Text(8)
	case 'b':
		s = z.Text(2)
	default:
		fmt.Fprintf(f, "%%!%c(bigint.Int=%s)", verb, z.Text(10))
		return
	}
	fmt.Fprint(f, s)
}

// dispatchBinary runs a static kernel, promoting rop and falling through to the
// backend if the kernel reports the result doesn't fit. hint is the kernel's
// own size hint when it failed (0 if the kernel signals failure without
// one, in which case promote sizes from rop's current value alone).
func dispatchBinary(op string, rop, a, b *Int, kernel func(ssize int8, rop, a, b *staticBuf) (ok bool, hint int), backend func(re, ae, be Engine)) error {
	if err := sameCapacity(op, rop, a, b); err != nil {
		return err
	}
	if !rop.dynamic && !a.dynamic && !b.dynamic {
		if ok, hint := kernel(rop.ssize, &rop.st, &a.st, &b.st); ok {
			return nil
		} else if hint > 0 {
			if err := rop.promote(hint); err != nil {
				return err
			}
		} else if !rop.dynamic {
			if err := rop.promote(0); err != nil {
				return err
			}
		}
	} else if !rop.dynamic {
		if err := rop.promote(0); err != nil {
			return err
		}
	}
	ae := engineOf(a)
	be := engineOf(b)
	backend(rop.eng, ae, be)
	return nil
}

// engineOf returns an Engine view over x: the real dynamic descriptor if x
// is already dynamic, or a throwaway read-only view (C7) over its static
// buffer otherwise.
func engineOf(x *Int) Engine {
	if x.dynamic {
		return x.eng
	}
	return newViewDefault(&x.st)
}

// Add sets rop = a + b (spec §4.5.1), promoting rop to dynamic storage if
// the static kernel cannot hold the result.
func Add(rop, a, b *Int) error {
	return dispatchBinary("Add", rop, a, b,
		func(ssize int8, rop, a, b *staticBuf) (bool, int) {
			return kernelAddSub(ssize, rop, a, b, false), 0
		},
		func(re, ae, be Engine) { re.Add(ae, be) })
}

// Sub sets rop = a - b (spec §4.5.1).
func Sub(rop, a, b *Int) error {
	return dispatchBinary("Sub", rop, a, b,
		func(ssize int8, rop, a, b *staticBuf) (bool, int) {
			return kernelAddSub(ssize, rop, a, b, true), 0
		},
		func(re, ae, be Engine) { re.Sub(ae, be) })
}

// Mul sets rop = a * b (spec §4.5.2).
func Mul(rop, a, b *Int) error {
	return dispatchBinary("Mul", rop, a, b,
		func(ssize int8, rop, a, b *staticBuf) (bool, int) {
			hint := kernelMul(ssize, rop, a, b)
			return hint == 0, hint
		},
		func(re, ae, be Engine) { re.Mul(ae, be) })
}

// AddMul sets rop += a * b (spec §4.5.3).
func AddMul(rop, a, b *Int) error {
	return dispatchBinary("AddMul", rop, a, b,
		func(ssize int8, rop, a, b *staticBuf) (bool, int) {
			hint := kernelAddMul(ssize, rop, a, b)
			return hint == 0, hint
		},
		func(re, ae, be Engine) { re.AddMul(ae, be) })
}

// Div sets q = a/b truncated toward zero and r = a - q*b (spec §4.5.4).
// Div reports a DomainError if b is zero and an InvalidArgumentError if q
// and r are the same *Int.
func Div(q, r, a, b *Int) error {
	if q == r {
		return newInvalidArgumentError("Div", "quotient and remainder must be distinct")
	}
	if err := sameCapacity("Div", q, r, a, b); err != nil {
		return err
	}
	if b.Sign() == 0 {
		return newDomainError("Div", "division by zero")
	}
	if !q.dynamic && !r.dynamic && !a.dynamic && !b.dynamic {
		kernelDiv(q.ssize, &q.st, &r.st, &a.st, &b.st)
		return nil
	}
	if !q.dynamic {
		if err := q.promote(0); err != nil {
			return err
		}
	}
	if !r.dynamic {
		if err := r.promote(0); err != nil {
			return err
		}
	}
	ae, be := engineOf(a), engineOf(b)
	q.eng.QuoRem(ae, be, r.eng)
	return nil
}

// MulExp sets rop = a * 2^s (spec §4.5.5, mul_2exp).
func MulExp(rop, a *Int, s uint) error {
	if err := sameCapacity("MulExp", rop, a); err != nil {
		return err
	}
	if !rop.dynamic && !a.dynamic {
		if kernelShiftLeft(rop.ssize, &rop.st, &a.st, s) {
			return nil
		}
		if err := rop.promote(limbsFor(a.BitLen() + int(s))); err != nil {
			return err
		}
	} else if !rop.dynamic {
		if err := rop.promote(0); err != nil {
			return err
		}
	}
	rop.eng.Lsh(engineOf(a), s)
	return nil
}
