package bigint

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func engineFactories() map[string]EngineFactory {
	return map[string]EngineFactory{
		"gmp":     GMPEngine,
		"mathbig": MathBigEngine,
	}
}

func TestEngineArithmetic(t *testing.T) {
	t.Parallel()
	for name, factory := range engineFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x, y, z := factory(), factory(), factory()
			x.SetInt64(40)
			y.SetInt64(2)
			z.Add(x, y)
			if got, ok := z.Int64(); !ok || got != 42 {
				t.Errorf("Add(40,2) = (%d, %v), want (42, true)", got, ok)
			}
			z.Sub(x, y)
			if got, ok := z.Int64(); !ok || got != 38 {
				t.Errorf("Sub(40,2) = (%d, %v), want (38, true)", got, ok)
			}
			z.Mul(x, y)
			if got, ok := z.Int64(); !ok || got != 80 {
				t.Errorf("Mul(40,2) = (%d, %v), want (80, true)", got, ok)
			}
		})
	}
}

func TestEngineQuoRem(t *testing.T) {
	t.Parallel()
	for name, factory := range engineFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x, y, q, r := factory(), factory(), factory(), factory()
			x.SetInt64(17)
			y.SetInt64(5)
			q.QuoRem(x, y, r)
			if got, ok := q.Int64(); !ok || got != 3 {
				t.Errorf("quotient = (%d, %v), want (3, true)", got, ok)
			}
			if got, ok := r.Int64(); !ok || got != 2 {
				t.Errorf("remainder = (%d, %v), want (2, true)", got, ok)
			}
		})
	}
}

func TestEngineSignMagnitudeRoundTrip(t *testing.T) {
	t.Parallel()
	for name, factory := range engineFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x := factory()
			x.SetSignMagnitude(true, []uint64{5, 7})
			neg, limbs := x.SignMagnitude()
			if !neg || len(limbs) != 2 || limbs[0] != 5 || limbs[1] != 7 {
				t.Errorf("SignMagnitude() = (%v, %v), want (true, [5 7])", neg, limbs)
			}
		})
	}
}

func TestEngineSetStringText(t *testing.T) {
	t.Parallel()
	for name, factory := range engineFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x := factory()
			if !x.SetString("123456789012345678901234567890", 10) {
				t.Fatal("SetString failed")
			}
			if got := x.Text(10); got != "123456789012345678901234567890" {
				t.Errorf("Text(10) = %q, want %q", got, "123456789012345678901234567890")
			}
		})
	}
}

func TestEngineLsh(t *testing.T) {
	t.Parallel()
	for name, factory := range engineFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x, z := factory(), factory()
			x.SetInt64(3)
			z.Lsh(x, 4)
			if got, ok := z.Int64(); !ok || got != 48 {
				t.Errorf("Lsh(3,4) = (%d, %v), want (48, true)", got, ok)
			}
		})
	}
}

func TestEngineCmpAbs(t *testing.T) {
	t.Parallel()
	for name, factory := range engineFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x, y := factory(), factory()
			x.SetInt64(-10)
			y.SetInt64(5)
			if got := x.CmpAbs(y); got <= 0 {
				t.Errorf("CmpAbs(-10, 5) = %d, want > 0", got)
			}
		})
	}
}

func TestUseEngineAndDefaultEngine(t *testing.T) {
	orig := DefaultEngine()
	defer UseEngine(orig)

	UseEngine(MathBigEngine)
	z := New()
	if _, ok := DefaultEngine()().(*mathBigEngine); !ok {
		t.Fatal("UseEngine(MathBigEngine) did not change the process default")
	}
	z.Promote()
	if _, ok := z.eng.(*mathBigEngine); !ok {
		t.Error("Promote should have used the newly configured default engine")
	}
}

func TestSetLoggerEmitsOnPromoteAndDemote(t *testing.T) {
	defer SetLogger(zerolog.Nop())

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	z := FromInt64At(2, 7)
	if err := z.Promote(); err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("promoted to dynamic storage")) {
		t.Errorf("expected a promotion log line, got %q", buf.String())
	}

	buf.Reset()
	z.Demote()
	if !bytes.Contains(buf.Bytes(), []byte("demoted to static storage")) {
		t.Errorf("expected a demotion log line, got %q", buf.String())
	}
}
