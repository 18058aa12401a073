package testutil

import (
	"testing"
)

func TestRequireNear(t *testing.T) {
	RequireNear(t, 1.0, 1.0+1e-12, 1e-9)
}

func TestRequireNearRelative(t *testing.T) {
	RequireNearRelative(t, 101, 100, 0.02)
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.0 + 1e-12, 3.0}
	RequireSliceNearlyEqual(t, a, b, 1e-9)
}
