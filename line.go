package curvefit

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Line represents a straight motion from P0 to P1 over the parameter range
// [T0, T1]. It is a [ParametricCurve] with exact arc length.
//
// The zero value of T0 and T1 is treated as the unit domain [0, 1].
type Line struct {
	P0 r3.Vec
	P1 r3.Vec
	T0 float64
	T1 float64
}

var _ ParametricCurve = Line{}
var _ Deriver = Line{}
var _ Arclener = Line{}
var _ ArclenSolver = Line{}

func (l Line) Domain() (float64, float64) {
	if l.T0 == 0 && l.T1 == 0 {
		return 0, 1
	}
	return l.T0, l.T1
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return r3.Norm(r3.Sub(l.P1, l.P0))
}

// u maps a parameter to the unit interval.
func (l Line) u(t float64) float64 {
	t0, t1 := l.Domain()
	if t1 == t0 {
		return 0
	}
	return (t - t0) / (t1 - t0)
}

func (l Line) Eval(t float64) r3.Vec {
	return lerp(l.P0, l.P1, l.u(t))
}

func (l Line) Deriv(t float64) r3.Vec {
	t0, t1 := l.Domain()
	if t1 == t0 {
		return r3.Vec{}
	}
	return r3.Scale(1/(t1-t0), r3.Sub(l.P1, l.P0))
}

// Arclen returns the length of the portion of the line between t0 and t1.
func (l Line) Arclen(t0, t1, accuracy float64) float64 {
	return (l.u(t1) - l.u(t0)) * l.Length()
}

func (l Line) SolveForArclen(t0, arclen, accuracy float64) float64 {
	d0, d1 := l.Domain()
	length := l.Length()
	if length == 0 {
		return t0
	}
	return min(t0+arclen/length*(d1-d0), d1)
}

func (l Line) Start() r3.Vec { return l.P0 }
func (l Line) End() r3.Vec   { return l.P1 }
