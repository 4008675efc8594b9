package bfloat16

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	// Values exactly representable in bfloat16 survive the round trip.
	for _, v := range []float32{0, 1, -2, 0.5, 256, -1024} {
		if got := FromFloat32(v).Float32(); got != v {
			t.Fatalf("expected FromFloat32(%v).Float32() to be %v, got %v", v, v, got)
		}
	}
}

func TestInf(t *testing.T) {
	if !math.IsInf(float64(Inf(1).Float32()), 1) {
		t.Fatal("expected Inf(1) to be +Inf")
	}
	if !math.IsInf(float64(Inf(-1).Float32()), -1) {
		t.Fatal("expected Inf(-1) to be -Inf")
	}
}

func TestString(t *testing.T) {
	if got := FromFloat32(1.5).String(); got != "1.5" {
		t.Fatalf("expected \"1.5\", got %q", got)
	}
}

func TestSmallestNonzero(t *testing.T) {
	if SmallestNonzero.Float32() <= 0 {
		t.Fatal("expected SmallestNonzero to be positive")
	}
	if FromFloat32(SmallestNonzero.Float32()/2) != 0 {
		t.Fatal("expected half of SmallestNonzero to underflow to zero")
	}
}
