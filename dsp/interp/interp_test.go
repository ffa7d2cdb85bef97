package interp

import (
	"math"
	"testing"
)

func TestInterpolateX(t *testing.T) {
	// y = 2x - 1
	if got := InterpolateX(1, 1, 3, 5, 3); got != 2 {
		t.Fatalf("InterpolateX(1,1,3,5,3) = %v, want 2", got)
	}
}

func TestInterpolateY(t *testing.T) {
	if got := InterpolateY(1, 1, 3, 5, 2); got != 3 {
		t.Fatalf("InterpolateY(1,1,3,5,2) = %v, want 3", got)
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	if got := InterpolateX(2, 1, 2, 5, 3); got != 2 {
		t.Fatalf("vertical line: got %v want 2", got)
	}
	if got := InterpolateY(1, 4, 3, 4, 100); got != 4 {
		t.Fatalf("horizontal line: got %v want 4", got)
	}
}

func TestInterpolateRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		x1, y1, x2, y2, x float64
	}{
		{x1: 0, y1: 0, x2: 10, y2: 5, x: 3},
		{x1: -2, y1: 7, x2: 4, y2: -1, x: 1.5},
		{x1: 100.1, y1: 2e4, x2: 100.2, y2: 1e3, x: 100.15},
	} {
		y := InterpolateY(tc.x1, tc.y1, tc.x2, tc.y2, tc.x)
		x := InterpolateX(tc.x1, tc.y1, tc.x2, tc.y2, y)
		if math.Abs(x-tc.x) > 1e-9 {
			t.Fatalf("round trip: x=%v -> y=%v -> x=%v", tc.x, y, x)
		}
	}
}
