package bigint

import (
	"math"
	"math/big"
)

// mathBigEngine implements Engine on top of the standard library's
// math/big, the same backend internal/bigfft and
// internal/fibonacci/memory/arena.go use throughout the teacher repo. It
// is selectable via UseEngine(bigint.MathBigEngine) or
// BIGNUM_BACKEND=mathbig, for environments without cgo/GMP available.
//
// math/big's high-radix (base 37..62) digit convention is the mirror
// image of GMP's (spec §6.3: digits run 0-9, A-Z, a-z; math/big instead
// assigns a-z to 10..35 and A-Z to 36..61 for those bases). SetString and
// Text therefore only support bases 2..36 here. Int's own parsing and
// rendering (FromStringAt, Int.Text) never call these two methods, for
// static and dynamic values alike, so Int text in every base 2..62 is the
// same whichever engine is selected.
type mathBigEngine struct {
	v big.Int
}

// MathBigEngine is an EngineFactory backed by math/big.Int.
func MathBigEngine() Engine { return &mathBigEngine{} }

func asMathBig(e Engine) *big.Int { return &e.(*mathBigEngine).v }

func (e *mathBigEngine) New() Engine { return &mathBigEngine{} }

func (e *mathBigEngine) Reset() { e.v.SetInt64(0) }

func (e *mathBigEngine) SetInt64(x int64)   { e.v.SetInt64(x) }
func (e *mathBigEngine) SetUint64(x uint64) { e.v.SetUint64(x) }

func (e *mathBigEngine) SetFloat64(x float64) bool {
	if math.IsNaN(x) {
		return false // big.Float.SetFloat64 panics on NaN
	}
	f := new(big.Float).SetFloat64(x)
	if f.IsInf() {
		return false
	}
	f.Int(&e.v) // truncates toward zero
	return true
}

func (e *mathBigEngine) SetString(s string, base int) bool {
	if base > 36 {
		return false
	}
	_, ok := e.v.SetString(s, base)
	return ok
}

func (e *mathBigEngine) SetSignMagnitude(neg bool, limbs []uint64) {
	words := make([]big.Word, len(limbs))
	for i, l := range limbs {
		words[i] = big.Word(l)
	}
	e.v.SetBits(words)
	if neg && e.v.Sign() != 0 {
		e.v.Neg(&e.v)
	}
}

func (e *mathBigEngine) Set(x Engine) { e.v.Set(asMathBig(x)) }

func (e *mathBigEngine) Add(x, y Engine) { e.v.Add(asMathBig(x), asMathBig(y)) }
func (e *mathBigEngine) Sub(x, y Engine) { e.v.Sub(asMathBig(x), asMathBig(y)) }
func (e *mathBigEngine) Mul(x, y Engine) { e.v.Mul(asMathBig(x), asMathBig(y)) }

func (e *mathBigEngine) AddMul(x, y Engine) {
	var t big.Int
	t.Mul(asMathBig(x), asMathBig(y))
	e.v.Add(&e.v, &t)
}

func (e *mathBigEngine) QuoRem(x, y, r Engine) {
	e.v.QuoRem(asMathBig(x), asMathBig(y), asMathBig(r))
}

func (e *mathBigEngine) Lsh(x Engine, n uint) { e.v.Lsh(asMathBig(x), n) }
func (e *mathBigEngine) Neg(x Engine)         { e.v.Neg(asMathBig(x)) }

func (e *mathBigEngine) Sign() int { return e.v.Sign() }

func (e *mathBigEngine) CmpAbs(x Engine) int {
	var a, b big.Int
	a.Abs(&e.v)
	b.Abs(asMathBig(x))
	return a.Cmp(&b)
}

func (e *mathBigEngine) Cmp(x Engine) int { return e.v.Cmp(asMathBig(x)) }
func (e *mathBigEngine) BitLen() int      { return e.v.BitLen() }
func (e *mathBigEngine) IsZero() bool     { return e.v.Sign() == 0 }

func (e *mathBigEngine) Int64() (int64, bool) {
	if !e.v.IsInt64() {
		return 0, false
	}
	return e.v.Int64(), true
}

func (e *mathBigEngine) Uint64() (uint64, bool) {
	if !e.v.IsUint64() {
		return 0, false
	}
	return e.v.Uint64(), true
}

func (e *mathBigEngine) Float64() float64 {
	f := new(big.Float).SetInt(&e.v)
	r, _ := f.Float64()
	return r
}

func (e *mathBigEngine) Text(base int) string {
	if base > 36 {
		return ""
	}
	return e.v.Text(base)
}

func (e *mathBigEngine) SignMagnitude() (neg bool, limbs []uint64) {
	words := e.v.Bits()
	limbs = make([]uint64, len(words))
	for i, w := range words {
		limbs[i] = uint64(w)
	}
	return e.v.Sign() < 0, limbs
}
