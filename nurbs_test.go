package curvefit

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewNurbsCurveValidation(t *testing.T) {
	cvs := []r3.Vec{Vec(0, 0, 0), Vec(1, 1, 0), Vec(2, 0, 0)}
	tests := []struct {
		name    string
		order   int
		cvs     []r3.Vec
		weights []float64
		knots   []float64
		want    error
	}{
		{"order too low", 1, cvs, nil, []float64{0, 1, 2, 3}, ErrDomain},
		{"too few CVs", 4, cvs, nil, []float64{0, 0, 0, 0, 1, 1, 1}, ErrTooFewPoints},
		{"knot count", 3, cvs, nil, []float64{0, 0, 0, 1, 1}, ErrDomain},
		{"decreasing knots", 3, cvs, nil, []float64{0, 0, 1, 0, 1, 1}, ErrDomain},
		{"empty domain", 3, cvs, nil, []float64{0, 0, 1, 1, 1, 1}, ErrDomain},
		{"weight count", 3, cvs, []float64{1, 1}, []float64{0, 0, 0, 1, 1, 1}, ErrDomain},
		{"zero weight", 3, cvs, []float64{1, 0, 1}, []float64{0, 0, 0, 1, 1, 1}, ErrDomain},
		{"ok", 3, cvs, []float64{1, 2, 1}, []float64{0, 0, 0, 1, 1, 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nc, err := NewNurbsCurve(tt.order, tt.cvs, tt.weights, tt.knots)
			if tt.want == nil {
				if err != nil || nc == nil {
					t.Fatalf("got (%v, %v), want a curve", nc, err)
				}
				return
			}
			if nc != nil || !errors.Is(err, tt.want) {
				t.Errorf("got (%v, %v), want (nil, %v)", nc, err, tt.want)
			}
		})
	}
}

func TestNurbsQuarterCircle(t *testing.T) {
	// The rational quadratic Bézier with middle weight √2/2 is an exact
	// quarter circle.
	w := math.Sqrt2 / 2
	nc, err := NewNurbsCurve(3,
		[]r3.Vec{Vec(1, 0, 0), Vec(1, 1, 0), Vec(0, 1, 0)},
		[]float64{1, w, 1},
		[]float64{0, 0, 0, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 11 {
		p := nc.Eval(float64(i) / 10)
		if r := r3.Norm(p); math.Abs(r-1) > 1e-12 {
			t.Errorf("point %v at %g is %g away from the center", p, float64(i)/10, r)
		}
	}
	// clamped outside the domain
	diff(t, Vec(1, 0, 0), nc.Eval(-1), vecComparer(1e-12))
	diff(t, Vec(0, 1, 0), nc.Eval(2), vecComparer(1e-12))

	// arc length through the chord fallback
	if got := Arclen(nc, 0, 1, 1e-9); math.Abs(got-math.Pi/2) > 1e-6 {
		t.Errorf("got arc length %g, want %g", got, math.Pi/2)
	}
}

func TestNurbsCopies(t *testing.T) {
	cvs := []r3.Vec{Vec(0, 0, 0), Vec(1, 0, 0)}
	knots := []float64{0, 0, 1, 1}
	nc, err := NewNurbsCurve(2, cvs, nil, knots)
	if err != nil {
		t.Fatal(err)
	}
	cvs[1] = Vec(5, 5, 5)
	knots[3] = 7
	diff(t, Vec(0.5, 0, 0), nc.Eval(0.5))
	diff(t, []float64{1, 1}, nc.Weights())
}

func TestNurbsWriteTo(t *testing.T) {
	nc, err := NewNurbsCurve(2, []r3.Vec{Vec(0, 0, 0), Vec(1, 2, 3)}, nil, []float64{0, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Order 2",
		"Knots 0 0 1 1",
		"CV 0, 0, 0 weight 1",
		"CV 1, 2, 3 weight 1",
		"",
	}, "\n")
	diff(t, want, nc.String())
}
