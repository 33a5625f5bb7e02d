package xshift_test

import (
	"errors"
	"math"
	"testing"

	"github.com/omeyang/xshift/pkg/random/xshift"
)

func FuzzNext(f *testing.F) {
	f.Add(uint32(4094795843), uint32(75119171), uint32(1064088777), uint32(3185678737))
	f.Add(uint32(0), uint32(0), uint32(0), uint32(0))
	f.Add(uint32(math.MaxUint32), uint32(math.MaxUint32), uint32(math.MaxUint32), uint32(math.MaxUint32))

	f.Fuzz(func(t *testing.T, x, y, z, w uint32) {
		seed := xshift.Seed{x, y, z, w}
		v, next := xshift.Next(seed)
		if v != xshift.Generate(seed) {
			t.Fatalf("Next value %d != Generate %d", v, xshift.Generate(seed))
		}
		if next != (xshift.Seed{y, z, w, v}) {
			t.Fatalf("Next seed = %v, want [%d %d %d %d]", next, y, z, w, v)
		}
	})
}

func FuzzEvaluate(f *testing.F) {
	f.Add(int64(4094795843), int64(75119171), int64(1064088777), int64(3185678737), 0.0, 1.0, false)
	f.Add(int64(0), int64(123), int64(-1), int64(2), 1.0, 21.0, true)
	f.Add(int64(1), int64(2), int64(3), int64(4), 1.0, 1.0, true)
	f.Add(int64(1), int64(2), int64(3), int64(4), -1e308, 1e308, false)

	f.Fuzz(func(t *testing.T, x, y, z, w int64, lo, hi float64, integer bool) {
		mode := xshift.ModeFloat
		if integer {
			mode = xshift.ModeInt
		}

		v, err := xshift.Evaluate([]int64{x, y, z, w}, lo, hi, mode)
		if err != nil {
			switch {
			case errors.Is(err, xshift.ErrInvalidSeed),
				errors.Is(err, xshift.ErrInvalidMin),
				errors.Is(err, xshift.ErrInvalidMax),
				errors.Is(err, xshift.ErrInvalidRange):
			default:
				t.Fatalf("unexpected error: %v", err)
			}
			if v != 0 {
				t.Fatalf("value %v returned with error", v)
			}
			return
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite result %v for [%v, %v]", v, lo, hi)
		}
		if mode == xshift.ModeFloat && (v < lo || v > hi) {
			t.Fatalf("result %v outside [%v, %v]", v, lo, hi)
		}
		if mode == xshift.ModeInt && v != math.Trunc(v) {
			t.Fatalf("integer mode returned %v", v)
		}
	})
}
