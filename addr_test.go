package linhash

import "testing"

// identityHash is used throughout these tests so that the literal bucket
// indices and split pointers in spec.md §8's scenarios can be reproduced
// exactly; linear hashing's correctness never depends on hash quality.
func identityHash(k int) uint64 { return uint64(k) }

func TestAddrPreSplitFallsBackToLowBits(t *testing.T) {
	// depth 0, splitPtr 0: every bucket still addressed by the low bit.
	for h := uint64(0); h < 8; h++ {
		got := addr(h, 2, 0, 0)
		want := h & 1
		if got != want {
			t.Errorf("addr(%d,2,0,0) = %d, want %d", h, got, want)
		}
	}
}

func TestAddrUsesExtraBitBelowSplitPtr(t *testing.T) {
	// depth 0, splitPtr 1: bucket 0 has already split at depth 1, so
	// hashes that land below splitPtr need the extra bit; bucket 1 has
	// not split yet and is still addressed by the single low bit.
	cases := []struct {
		h    uint64
		want uint64
	}{
		{0, 0}, // 0&1=0 < splitPtr(1) -> extra bit: 0&3=0
		{2, 2}, // 2&1=0 < splitPtr(1) -> extra bit: 2&3=2
		{1, 1}, // 1&1=1, not < splitPtr(1) -> i0=1
		{3, 1}, // 3&1=1, not < splitPtr(1) -> i0=1
	}
	for _, c := range cases {
		if got := addr(c.h, 2, 0, 1); got != c.want {
			t.Errorf("addr(%d,2,0,1) = %d, want %d", c.h, got, c.want)
		}
	}
}

func TestAddrIsPureAndDeterministic(t *testing.T) {
	for h := uint64(0); h < 1000; h++ {
		a := addr(h, 4, 2, 3)
		b := addr(h, 4, 2, 3)
		if a != b {
			t.Fatalf("addr not deterministic for h=%d: %d vs %d", h, a, b)
		}
	}
}
