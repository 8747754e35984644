package curvefit

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for motion data measured in the usual scene
// units.
const DefaultAccuracy = 1e-6

const (
	// arclenSpans is the number of equal parameter spans the numerical
	// arc-length fallbacks start from.
	arclenSpans = 16
	// arclenPoints is the number of Legendre-Gauss nodes per span when
	// integrating the norm of a derivative.
	arclenPoints = 16
	// maxArclenDepth bounds the recursion of adaptive chord subdivision.
	maxArclenDepth = 16
)

// ParametricCurve describes a curve in ℝ³ parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well, for example a triple of
// Euler angles.
type ParametricCurve interface {
	// Domain returns the range of parameters [t0, t1] the curve is defined
	// over.
	Domain() (t0, t1 float64)
	// Eval evaluates the curve at parameter t.
	Eval(t float64) r3.Vec
}

// Deriver describes a parametrized curve that can compute its first
// derivative.
type Deriver interface {
	Deriv(t float64) r3.Vec
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve between the parameters t0 and
	// t1. Callers guarantee that t0 <= t1.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values).
	Arclen(t0, t1, accuracy float64) float64
}

// ArclenSolver can be implemented by types that have a better way of computing
// the solution than the one used by [SolveForArclen].
type ArclenSolver interface {
	// SolveForArclen returns the parameter that lies arclen units of length
	// past t0.
	SolveForArclen(t0, arclen, accuracy float64) float64
}

// validDomain reports whether the curve's domain is usable for sampling.
func validDomain(c ParametricCurve) bool {
	t0, t1 := c.Domain()
	return !math.IsNaN(t0) && !math.IsNaN(t1) &&
		!math.IsInf(t0, 0) && !math.IsInf(t1, 0) &&
		t0 <= t1
}

// Arclen returns the arc length of c between the parameters t0 and t1. The
// result is negative if t1 < t0.
//
// Curves implementing [Arclener] compute the length themselves. For curves
// implementing [Deriver], the norm of the derivative is integrated with
// Legendre-Gauss quadrature over 16 spans. All other curves are measured by
// adaptive chord subdivision, starting from 16 spans and halving each span
// until the polyline through its midpoint is within accuracy of the chord.
func Arclen(c ParametricCurve, t0, t1, accuracy float64) float64 {
	if t0 == t1 {
		return 0
	}
	sign := 1.0
	if t1 < t0 {
		t0, t1 = t1, t0
		sign = -1.0
	}
	switch c := c.(type) {
	case Arclener:
		return sign * c.Arclen(t0, t1, accuracy)
	case Deriver:
		return sign * derivArclen(c, t0, t1)
	default:
		return sign * chordArclen(c, t0, t1, accuracy)
	}
}

func derivArclen(d Deriver, t0, t1 float64) float64 {
	speed := func(t float64) float64 {
		return r3.Norm(d.Deriv(t))
	}
	var sum float64
	step := (t1 - t0) / arclenSpans
	for i := range arclenSpans {
		a := t0 + float64(i)*step
		b := a + step
		if i == arclenSpans-1 {
			b = t1
		}
		sum += quad.Fixed(speed, a, b, arclenPoints, quad.Legendre{}, 0)
	}
	return sum
}

func chordArclen(c ParametricCurve, t0, t1, accuracy float64) float64 {
	var sum float64
	step := (t1 - t0) / arclenSpans
	ta := t0
	pa := c.Eval(ta)
	for i := range arclenSpans {
		tb := t0 + float64(i+1)*step
		if i == arclenSpans-1 {
			tb = t1
		}
		pb := c.Eval(tb)
		sum += chordRefine(c, ta, tb, pa, pb, accuracy/arclenSpans, 0)
		ta, pa = tb, pb
	}
	return sum
}

func chordRefine(c ParametricCurve, ta, tb float64, pa, pb r3.Vec, accuracy float64, depth int) float64 {
	tm := 0.5 * (ta + tb)
	pm := c.Eval(tm)
	chord := r3.Norm(r3.Sub(pb, pa))
	halves := r3.Norm(r3.Sub(pm, pa)) + r3.Norm(r3.Sub(pb, pm))
	if halves-chord <= accuracy || depth >= maxArclenDepth {
		return halves
	}
	return chordRefine(c, ta, tm, pa, pm, accuracy*0.5, depth+1) +
		chordRefine(c, tm, tb, pm, pb, accuracy*0.5, depth+1)
}

// SolveForArclen solves for the parameter that lies arclen units of length
// past the parameter t0, searching up to the end of the curve's domain.
//
// This implementation uses the [ITP method], as provided by [SolveITP]. This is
// as robust as bisection but typically converges faster. In addition, the
// method takes care to compute arc lengths of increasingly smaller segments of
// the curve, as that is likely faster than repeatedly computing the arc length
// of the segment starting at t0.
//
// Types can optionally implement [ArclenSolver], in which case this function
// will defer to it.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveForArclen(c ParametricCurve, t0, arclen, accuracy float64) float64 {
	if c, ok := c.(ArclenSolver); ok {
		return c.SolveForArclen(t0, arclen, accuracy)
	}

	_, end := c.Domain()
	if arclen <= 0.0 || t0 >= end {
		return t0
	}
	totalArclen := Arclen(c, t0, end, accuracy)
	if arclen >= totalArclen {
		return end
	}
	tLast := t0
	arclenLast := 0.0
	width := end - t0
	epsilon := accuracy / totalArclen
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		if t > tLast {
			arclenLast += Arclen(c, tLast, t, innerAccuracy)
		} else {
			arclenLast -= Arclen(c, t, tLast, innerAccuracy)
		}
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, t0, end, epsilon*width, 1, 0.2/width, -arclen, totalArclen-arclen)
}

// SolveITP solves an arbitrary function for a zero-crossing.
//
// This uses the [ITP method], as described in the paper [An Enhancement of the
// Bisection Method Average Performance Preserving Minmax Optimality].
//
// The values of ya and yb are given as arguments rather than computed from f,
// as the values may already be known, or they may be less expensive to compute
// as special cases.
//
// It is assumed that ya < 0.0 and yb > 0.0, otherwise unexpected results may
// occur.
//
// The value of epsilon must be larger than 2**-63 * (b - a), otherwise integer
// overflow may occur. The a and b parameters represent the lower and upper
// bounds of the bracket searched for a solution.
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// both because it avoids an expensive floating point exponentiation and because
// this value has been tested to work well with arc length problems.
//
// The n0 parameter controls the relative impact of the bisection and secant
// components. When it is 0, the number of iterations is guaranteed to be no
// more than the number required by bisection. A value of 1 gives the secant
// method more of a chance to engage on smooth functions.
//
// The paper suggests a value of 0.2 / (b - a) for k1.
//
// When the function is monotonic, the returned result is guaranteed to be
// within epsilon of the zero crossing.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := min(n0+n1_2, 62)
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
