package mcparallel

import (
	"math"
)

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
