package bigint

import "testing"

func TestMulExpBasic(t *testing.T) {
	t.Parallel()
	for _, ssize := range []int{1, 2, 3, 6, 10} {
		t.Run(sizeName(ssize), func(t *testing.T) {
			t.Parallel()
			a := FromInt64At(ssize, 5)
			r := NewAt(ssize)
			if err := MulExp(r, a, 3); err != nil {
				t.Fatalf("MulExp: %v", err)
			}
			if got, _ := r.Int64(); got != 40 {
				t.Errorf("5<<3 = %d, want 40", got)
			}
		})
	}
}

func TestMulExpZeroShiftOrZeroOperand(t *testing.T) {
	t.Parallel()
	a := FromInt64At(2, 0)
	r := NewAt(2)
	if err := MulExp(r, a, 50); err != nil {
		t.Fatalf("MulExp: %v", err)
	}
	if r.Sign() != 0 {
		t.Errorf("0 * 2^50 = %s, want 0", r)
	}

	b := FromInt64At(2, 123)
	if err := MulExp(r, b, 0); err != nil {
		t.Fatalf("MulExp: %v", err)
	}
	if got, _ := r.Int64(); got != 123 {
		t.Errorf("123 * 2^0 = %d, want 123", got)
	}
}

func TestMulExpScenario6(t *testing.T) {
	t.Parallel()
	// Scenario 6: mul_2exp(r, -5, 130) with SSize=2 must fail-then-promote;
	// r = -5*2^130.
	a := FromInt64At(2, -5)
	r := NewAt(2)
	if err := MulExp(r, a, 130); err != nil {
		t.Fatalf("MulExp: %v", err)
	}
	if !r.IsDynamic() {
		t.Fatal("scenario 6: result should have promoted")
	}
	want := mustFromString(t, 2, "-5", 10)
	if err := MulExp(want, want, 130); err != nil {
		t.Fatalf("MulExp on want: %v", err)
	}
	if !r.Equal(want) {
		t.Errorf("scenario 6: MulExp = %s, want %s", r, want)
	}
}

func TestMulExpShiftBoundaries(t *testing.T) {
	t.Parallel()
	// Shift by exactly BITS_PER_LIMB, 2*BITS_PER_LIMB-1, 2*BITS_PER_LIMB
	// (last must fail for nonzero) on SSize==2 (spec §8 boundary behaviours).
	a := FromInt64At(2, 1)

	r := NewAt(2)
	if err := MulExp(r, a, bitsPerLimb); err != nil {
		t.Fatalf("shift by BITS_PER_LIMB: %v", err)
	}
	if !r.IsStatic() {
		t.Errorf("1 << BITS_PER_LIMB should fit statically in SSize=2, got dynamic")
	}

	r2 := NewAt(2)
	if err := MulExp(r2, a, 2*bitsPerLimb-1); err != nil {
		t.Fatalf("shift by 2*BITS_PER_LIMB-1: %v", err)
	}
	if !r2.IsStatic() {
		t.Errorf("1 << (2*BITS_PER_LIMB-1) should fit statically in SSize=2, got dynamic")
	}

	r3 := NewAt(2)
	if err := MulExp(r3, a, 2*bitsPerLimb); err != nil {
		t.Fatalf("shift by 2*BITS_PER_LIMB: %v", err)
	}
	if !r3.IsDynamic() {
		t.Errorf("1 << (2*BITS_PER_LIMB) must not fit in SSize=2")
	}
}

func TestMulExpOverlapSafety(t *testing.T) {
	t.Parallel()
	for _, ssize := range []int{1, 2, 3, 6} {
		a := mustFromString(t, ssize, "123457", 10)
		want := NewAt(ssize)
		MulExp(want, a, 4)
		if err := MulExp(a, a, 4); err != nil {
			t.Fatalf("ssize=%d: MulExp(a,a,s): %v", ssize, err)
		}
		if !a.Equal(want) {
			t.Errorf("ssize=%d: MulExp(a,a,4) = %s, want %s", ssize, a, want)
		}
	}
}
