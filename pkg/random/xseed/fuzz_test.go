package xseed_test

import (
	"errors"
	"testing"

	"github.com/omeyang/xshift/pkg/random/xseed"
	"github.com/omeyang/xshift/pkg/random/xshift"
)

func FuzzParseHex(f *testing.F) {
	f.Add("f411a043047a3a433f6cb4c9bde19991")
	f.Add("0x00000000000000000000000000000000")
	f.Add("zz")

	f.Fuzz(func(t *testing.T, s string) {
		seed, err := xseed.ParseHex(s)
		if err != nil {
			if !errors.Is(err, xshift.ErrInvalidSeed) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		back, err := xseed.ParseHex(xseed.Hex(seed))
		if err != nil || back != seed {
			t.Fatalf("round trip of %q: %v, %v", s, back, err)
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("4094795843", "75119171", "1064088777", "3185678737")
	f.Add("0", "123", "-1", "2")
	f.Add("0x10", "010", "0b1", "x")

	f.Fuzz(func(t *testing.T, a, b, c, d string) {
		_, err := xseed.Parse([]string{a, b, c, d})
		if err != nil && !errors.Is(err, xshift.ErrInvalidSeed) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func FuzzFromKey(f *testing.F) {
	f.Add("")
	f.Add("user-42")

	f.Fuzz(func(t *testing.T, key string) {
		s := xseed.FromKey(key)
		if s.IsZero() {
			t.Fatalf("FromKey(%q) returned zero seed", key)
		}
		if s != xseed.FromKey(key) {
			t.Fatalf("FromKey(%q) not deterministic", key)
		}
	})
}
