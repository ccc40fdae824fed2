package mcparallel

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(math.Inf(1)) || isFinite(math.NaN()) {
		t.Fatal("isFinite failed")
	}
}

func TestIMin(t *testing.T) {
	if imin(3, 5) != 3 || imin(5, 3) != 3 {
		t.Fatal("imin failed")
	}
}
