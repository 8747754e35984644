package curvefit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// vecComparer compares vectors component-wise to within epsilon.
func vecComparer(epsilon float64) cmp.Option {
	return cmp.Comparer(func(a, b r3.Vec) bool {
		return almostEqual(a, b, epsilon)
	})
}

func isFinite(v r3.Vec) bool {
	for _, f := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// quadratic is the curve ⟨10t², 0, 0⟩ over [0, 1]. It only implements
// ParametricCurve, so arc lengths are computed by the chord fallback.
type quadratic struct{}

func (quadratic) Domain() (float64, float64) { return 0, 1 }
func (quadratic) Eval(t float64) r3.Vec      { return Vec(10*t*t, 0, 0) }

// helix is a helix of radius 1 climbing one unit per radian, over [0, 2π]. It
// implements Deriver but not Arclener.
type helix struct{}

func (helix) Domain() (float64, float64) { return 0, 2 * math.Pi }
func (helix) Eval(t float64) r3.Vec {
	s, c := math.Sincos(t)
	return Vec(c, s, t)
}
func (helix) Deriv(t float64) r3.Vec {
	s, c := math.Sincos(t)
	return Vec(-s, c, 1)
}

// sampledCurve is an arbitrary curve given by a function, implementing only
// ParametricCurve.
type sampledCurve struct {
	t0, t1 float64
	f      func(t float64) (float64, float64, float64)
}

func (c sampledCurve) Domain() (float64, float64) { return c.t0, c.t1 }
func (c sampledCurve) Eval(t float64) r3.Vec {
	return Vec(c.f(t))
}
