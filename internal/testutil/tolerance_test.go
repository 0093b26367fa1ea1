package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]int32{3, -7, 5}); got != 7 {
		t.Fatalf("MaxAbs = %d, want 7", got)
	}
	if got := MaxAbs([]int32{math.MinInt32}); got != -math.MinInt32 {
		t.Fatalf("MaxAbs(MinInt32) = %d", got)
	}
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) = %d, want 0", got)
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireAllZero(t, []int32{0, 0, 0})
	RequireEqualSamples(t, []int32{1, -2}, []int32{1, -2})
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)
	RequireFinite(t, []float64{0, -1, 1e300})
}
