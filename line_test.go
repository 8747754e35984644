package curvefit

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{P0: Vec(0, 0, 0), P1: Vec(1, 1, 1)}
	want := math.Sqrt(3.0)
	epsilon := 1e-9
	if d := math.Abs(l.Arclen(0, 1, epsilon) - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := l.SolveForArclen(0, want/3.0, epsilon)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineDomain(t *testing.T) {
	l := Line{P0: Vec(0, 0, 0), P1: Vec(4, 0, 0), T0: 10, T1: 12}
	diff(t, Vec(2, 0, 0), l.Eval(11))
	diff(t, Vec(2, 0, 0), l.Deriv(10.5))

	// zero-duration lines stay at their start
	p := Line{P0: Vec(1, 1, 1), P1: Vec(2, 2, 2), T0: 3, T1: 3}
	diff(t, Vec(1, 1, 1), p.Eval(3))
	diff(t, Vec(0, 0, 0), p.Deriv(3))
}
