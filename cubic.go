package curvefit

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ ParametricCurve = CubicBez{}
var _ Deriver = CubicBez{}
var _ Arclener = CubicBez{}

// CubicBez is a cubic Bézier segment in ℝ³, parametrized over [0, 1].
type CubicBez struct {
	P0 r3.Vec
	P1 r3.Vec
	P2 r3.Vec
	P3 r3.Vec
}

// HermiteBez returns the cubic Bézier equivalent to the Hermite segment that
// starts at p0 with velocity m0, ends at p1 with velocity m1, and takes dt
// units of time. The velocities are with respect to time, not to the
// segment's unit parameter.
func HermiteBez(p0, m0, p1, m1 r3.Vec, dt float64) CubicBez {
	scale := dt * (1.0 / 3.0)
	return CubicBez{
		P0: p0,
		P1: r3.Add(p0, r3.Scale(scale, m0)),
		P2: r3.Sub(p1, r3.Scale(scale, m1)),
		P3: p1,
	}
}

func (c CubicBez) Domain() (float64, float64) {
	return 0, 1
}

func (c CubicBez) Eval(t float64) r3.Vec {
	mt := 1.0 - t
	a := r3.Scale(mt*mt*mt, c.P0)
	b := r3.Scale(mt*mt*3.0, c.P1)
	cc := r3.Scale(mt*3.0, c.P2)
	d := c.P3
	// a + t(b + t(c + t d))
	return r3.Add(a, r3.Scale(t, r3.Add(b, r3.Scale(t, r3.Add(cc, r3.Scale(t, d))))))
}

// Deriv evaluates the first derivative of the cubic at t.
func (c CubicBez) Deriv(t float64) r3.Vec {
	mt := 1.0 - t
	d01 := r3.Sub(c.P1, c.P0)
	d12 := r3.Sub(c.P2, c.P1)
	d23 := r3.Sub(c.P3, c.P2)
	v := r3.Add(r3.Add(
		r3.Scale(mt*mt, d01),
		r3.Scale(2*mt*t, d12)),
		r3.Scale(t*t, d23))
	return r3.Scale(3, v)
}

func (c CubicBez) Start() r3.Vec { return c.P0 }
func (c CubicBez) End() r3.Vec   { return c.P3 }

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			lerp(c.P0, c.P1, 0.5),
			r3.Scale(0.25, r3.Add(r3.Add(c.P0, r3.Scale(2, c.P1)), c.P2)),
			pm,
		},
		CubicBez{
			pm,
			r3.Scale(0.25, r3.Add(r3.Add(c.P1, r3.Scale(2, c.P2)), c.P3)),
			lerp(c.P2, c.P3, 0.5),
			c.P3,
		}
}

// Subsegment returns the portion of the cubic between t0 and t1,
// reparametrized over [0, 1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := r3.Add(p0, r3.Scale(scale, c.Deriv(t0)))
	p2 := r3.Sub(p3, r3.Scale(scale, c.Deriv(t1)))
	return CubicBez{p0, p1, p2, p3}
}

// Arclen returns the arc length of the portion of the cubic between t0 and
// t1.
func (c CubicBez) Arclen(t0, t1, accuracy float64) float64 {
	if t0 == 0 && t1 == 1 {
		return c.Length(accuracy)
	}
	return c.Subsegment(t0, t1).Length(accuracy)
}

// Length returns the arc length of the whole cubic.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
// The order of the quadrature is picked from an estimate of its error; when
// even the highest order is not accurate enough, the cubic is subdivided.
func (c CubicBez) Length(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := r3.Sub(c.P3, c.P0)
	d01 := r3.Sub(c.P1, c.P0)
	d12 := r3.Sub(c.P2, c.P1)
	d23 := r3.Sub(c.P3, c.P2)
	lplc := r3.Norm(d01) + r3.Norm(d12) + r3.Norm(d23) - r3.Norm(d03)
	dd1 := r3.Sub(d12, d01)
	dd2 := r3.Sub(d23, d12)
	// The following values don't have the factor of 3 for first deriv
	dm := r3.Add(r3.Scale(0.25, r3.Add(d01, d23)), r3.Scale(0.5, d12)) // first derivative at midpoint
	dm1 := r3.Scale(0.5, r3.Add(dd2, dd1))                               // second derivative at midpoint
	dm2 := r3.Scale(0.25, r3.Sub(dd2, dd1))                              // 0.5 * (third derivative at midpoint)

	est := quad.Fixed(func(x float64) float64 {
		dNorm2 := r3.Norm2(r3.Add(r3.Add(dm, r3.Scale(x, dm1)), r3.Scale(x*x, dm2)))
		ddNorm2 := r3.Norm2(r3.Add(dm1, r3.Scale(2.0*x, dm2)))
		return ddNorm2 / dNorm2
	}, -1, 1, 8, quad.Legendre{}, 0)
	if math.IsNaN(est) || math.IsInf(est, 0) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadrature(8, dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadrature(16, dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadrature(24, dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

// arclenQuadrature integrates the speed of a cubic over x ∈ [-1, 1], where
// the derivative is dm + dm1 x + dm2 x² up to a factor of 3 and dt = dx/2.
func arclenQuadrature(n int, dm, dm1, dm2 r3.Vec) float64 {
	speed := func(x float64) float64 {
		return r3.Norm(r3.Add(r3.Add(dm, r3.Scale(x, dm1)), r3.Scale(x*x, dm2)))
	}
	return 1.5 * quad.Fixed(speed, -1, 1, n, quad.Legendre{}, 0)
}
