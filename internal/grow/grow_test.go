package grow

import (
	"math"
	"testing"
)

func TestAddOverflow(t *testing.T) {
	if sum, ok := AddOverflow(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflow(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflow(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflow(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflow(t *testing.T) {
	if p, ok := MulOverflow(6, 7); !ok || p != 42 {
		t.Fatalf("MulOverflow(6,7)=%d,%v want 42,true", p, ok)
	}
	if p, ok := MulOverflow(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("MulOverflow(0,MaxInt)=%d,%v want 0,true", p, ok)
	}
	if _, ok := MulOverflow(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow for MaxInt/2+1 * 2")
	}
}

func TestNextCap(t *testing.T) {
	if got := NextCap(0, 1); got != 8 {
		t.Fatalf("NextCap(0,1)=%d want 8", got)
	}
	if got := NextCap(8, 9); got != 16 {
		t.Fatalf("NextCap(8,9)=%d want 16", got)
	}
	if got := NextCap(16, 10); got != 16 {
		t.Fatalf("NextCap should not shrink: got %d", got)
	}
	// Beyond the doubling limit growth slows to 1.25x.
	if got := NextCap(2048, 2049); got != 2560 {
		t.Fatalf("NextCap(2048,2049)=%d want 2560", got)
	}
	// Suggestions always cover need.
	for _, need := range []int{1, 7, 100, 5000, 1 << 20} {
		if got := NextCap(0, need); got < need {
			t.Fatalf("NextCap(0,%d)=%d below need", need, got)
		}
	}
}
