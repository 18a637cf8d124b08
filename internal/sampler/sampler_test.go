package sampler

import "testing"

func TestDrawIntStaysInRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.DrawInt(-5, 15)
		if v < -5 || v >= 15 {
			t.Fatalf("DrawInt out of range: %d", v)
		}
	}
}

func TestDrawSeqLengthAndRange(t *testing.T) {
	s := New(2)
	for i := 0; i < 200; i++ {
		xs := s.DrawSeq(0, 20, 7)
		if len(xs) != 7 {
			t.Fatalf("DrawSeq: got length %d, want 7", len(xs))
		}
		for _, x := range xs {
			if x < 0 || x >= 20 {
				t.Fatalf("DrawSeq out of range: %d", x)
			}
		}
	}
}

func TestDrawIntDegenerateRangeReturnsLo(t *testing.T) {
	s := New(3)
	if v := s.DrawInt(5, 5); v != 5 {
		t.Errorf("degenerate range: got %d, want 5", v)
	}
}

// Biased draws over [lo, hi) with BiasAmount=0.98 and BiasMax=10 should
// place the bulk of their mass in [lo, 11) whenever lo<10<hi (spec §8).
func TestDrawIntBiasedMassBelowBiasMax(t *testing.T) {
	s := New(42)
	const n = 20000
	below := 0
	for i := 0; i < n; i++ {
		v := s.DrawInt(0, 100)
		if v < 11 {
			below++
		}
	}
	frac := float64(below) / float64(n)
	if frac < 0.8 {
		t.Errorf("biased mass below BiasMax+1: got %.3f, want >= 0.80", frac)
	}
}

func TestDrawIntBypassesBiasOutsideBiasMaxWindow(t *testing.T) {
	s := New(7)
	// hi <= BiasMax: entirely uniform, no bias branch taken.
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[s.DrawInt(0, 10)] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected a spread of values under the uniform bypass, got %v", seen)
	}
}

func TestDrawLenWithinBounds(t *testing.T) {
	s := New(9)
	for i := 0; i < 200; i++ {
		n := s.DrawLen(2, 8)
		if n < 2 || n >= 8 {
			t.Fatalf("DrawLen out of range: %d", n)
		}
	}
}

func TestDrawLenDegenerateReturnsMin(t *testing.T) {
	s := New(11)
	if n := s.DrawLen(4, 4); n != 4 {
		t.Errorf("degenerate DrawLen: got %d, want 4", n)
	}
}
