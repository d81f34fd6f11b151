package bigint

import "testing"

func TestAddOverflow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		a, b        limb
		wantSum     limb
		wantCarry   limb
	}{
		{"no carry", 1, 2, 3, 0},
		{"exact max, no carry", numbMask, 0, numbMask, 0},
		{"carries", numbMask, 1, 0, 1},
		{"both max", numbMask, numbMask, numbMask - 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sum, carry := addOverflow(tt.a, tt.b)
			if sum != tt.wantSum || carry != tt.wantCarry {
				t.Errorf("addOverflow(%d,%d) = (%d,%d), want (%d,%d)", tt.a, tt.b, sum, carry, tt.wantSum, tt.wantCarry)
			}
		})
	}
}

func TestSubBorrow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		a, b       limb
		wantDiff   limb
		wantBorrow limb
	}{
		{"no borrow", 5, 3, 2, 0},
		{"equal", 7, 7, 0, 0},
		{"borrows", 0, 1, numbMask, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			diff, borrow := subBorrow(tt.a, tt.b)
			if diff != tt.wantDiff || borrow != tt.wantBorrow {
				t.Errorf("subBorrow(%d,%d) = (%d,%d), want (%d,%d)", tt.a, tt.b, diff, borrow, tt.wantDiff, tt.wantBorrow)
			}
		})
	}
}

func TestMul2x1(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     limb
		wantLo   limb
		wantHi   limb
	}{
		{"zero", 0, numbMask, 0, 0},
		{"one", 1, 12345, 12345, 0},
		{"max squared", numbMask, numbMask, 1, numbMask - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lo, hi := mul2x1(tt.a, tt.b)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("mul2x1(%d,%d) = (%d,%d), want (%d,%d)", tt.a, tt.b, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestDiv2by2Unavailable(t *testing.T) {
	t.Parallel()
	if div2by2Available {
		t.Fatal("div2by2Available must be false on every Go target (no native 128-bit type)")
	}
}
