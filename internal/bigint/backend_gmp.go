package bigint

import (
	"encoding/binary"
	"strconv"

	"github.com/ncw/gmp"
)

// gmpEngine implements Engine on top of github.com/ncw/gmp, a cgo binding
// to the real GMP mpz_t that mirrors math/big.Int's method set closely
// enough to be usable as a drop-in replacement. This is the process
// default backend (UseEngine(bigint.GMPEngine), BIGNUM_BACKEND=gmp): it is
// the teacher's own declared dependency and the literal "e.g., GMP's mpz"
// backend spec §6.2 names.
type gmpEngine struct {
	v gmp.Int
}

// GMPEngine is an EngineFactory backed by github.com/ncw/gmp.Int.
func GMPEngine() Engine { return &gmpEngine{} }

func asGMP(e Engine) *gmp.Int { return &e.(*gmpEngine).v }

func (e *gmpEngine) New() Engine { return &gmpEngine{} }

func (e *gmpEngine) Reset() { e.v.SetInt64(0) }

func (e *gmpEngine) SetInt64(x int64)   { e.v.SetInt64(x) }
func (e *gmpEngine) SetUint64(x uint64) { e.v.SetUint64(x) }

func (e *gmpEngine) SetFloat64(x float64) bool {
	// ncw/gmp has no direct float constructor; route the truncation
	// through the math/big engine (stdlib-only concern, not a
	// multiprecision arithmetic one) and hand GMP the resulting digits.
	var m mathBigEngine
	if !m.SetFloat64(x) {
		return false
	}
	neg, limbs := m.SignMagnitude()
	e.SetSignMagnitude(neg, limbs)
	return true
}

func (e *gmpEngine) SetString(s string, base int) bool {
	_, ok := e.v.SetString(s, base)
	return ok
}

func limbsToBigEndianBytes(limbs []uint64) []byte {
	buf := make([]byte, len(limbs)*8)
	for i, l := range limbs {
		off := (len(limbs) - 1 - i) * 8
		binary.BigEndian.PutUint64(buf[off:off+8], l)
	}
	return buf
}

func bigEndianBytesToLimbs(bs []byte) []uint64 {
	if len(bs) == 0 {
		return nil
	}
	n := (len(bs) + 7) / 8
	padded := make([]byte, n*8)
	copy(padded[n*8-len(bs):], bs)
	limbs := make([]uint64, n)
	for i := 0; i < n; i++ {
		off := (n - 1 - i) * 8
		limbs[i] = binary.BigEndian.Uint64(padded[off : off+8])
	}
	return limbs
}

func (e *gmpEngine) SetSignMagnitude(neg bool, limbs []uint64) {
	e.v.SetBytes(limbsToBigEndianBytes(limbs))
	if neg && e.v.Sign() != 0 {
		e.v.Neg(&e.v)
	}
}

func (e *gmpEngine) Set(x Engine) { e.v.Set(asGMP(x)) }

func (e *gmpEngine) Add(x, y Engine) { e.v.Add(asGMP(x), asGMP(y)) }
func (e *gmpEngine) Sub(x, y Engine) { e.v.Sub(asGMP(x), asGMP(y)) }
func (e *gmpEngine) Mul(x, y Engine) { e.v.Mul(asGMP(x), asGMP(y)) }

func (e *gmpEngine) AddMul(x, y Engine) {
	var t gmp.Int
	t.Mul(asGMP(x), asGMP(y))
	e.v.Add(&e.v, &t)
}

func (e *gmpEngine) QuoRem(x, y, r Engine) {
	e.v.QuoRem(asGMP(x), asGMP(y), asGMP(r))
}

func (e *gmpEngine) Lsh(x Engine, n uint) { e.v.Lsh(asGMP(x), n) }
func (e *gmpEngine) Neg(x Engine)         { e.v.Neg(asGMP(x)) }

func (e *gmpEngine) Sign() int { return e.v.Sign() }

func (e *gmpEngine) CmpAbs(x Engine) int {
	var a, b gmp.Int
	a.Abs(&e.v)
	b.Abs(asGMP(x))
	return a.Cmp(&b)
}

func (e *gmpEngine) Cmp(x Engine) int { return e.v.Cmp(asGMP(x)) }
func (e *gmpEngine) BitLen() int      { return e.v.BitLen() }
func (e *gmpEngine) IsZero() bool     { return e.v.Sign() == 0 }

func (e *gmpEngine) Int64() (int64, bool) {
	n, err := strconv.ParseInt(e.v.Text(10), 10, 64)
	return n, err == nil
}

func (e *gmpEngine) Uint64() (uint64, bool) {
	if e.v.Sign() < 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(e.v.Text(10), 10, 64)
	return n, err == nil
}

func (e *gmpEngine) Float64() float64 {
	f, _ := strconv.ParseFloat(e.v.Text(10), 64)
	return f
}

func (e *gmpEngine) Text(base int) string { return e.v.Text(base) }

func (e *gmpEngine) SignMagnitude() (neg bool, limbs []uint64) {
	return e.v.Sign() < 0, bigEndianBytesToLimbs(e.v.Bytes())
}
