package curvefit

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

var _ ParametricCurve = (*NurbsCurve)(nil)

// NurbsCurve is a non-uniform rational B-spline in ℝ³.
//
// A curve of order k (degree k-1) with n control vertices has n+k knots. Its
// domain runs from knot k-1 to knot n.
type NurbsCurve struct {
	order   int
	knots   []float64
	cvs     []r3.Vec
	weights []float64
}

// NewNurbsCurve returns a NURBS curve of the given order. A nil weights slice
// means all weights are 1. The curve owns copies of its arguments.
func NewNurbsCurve(order int, cvs []r3.Vec, weights []float64, knots []float64) (*NurbsCurve, error) {
	if order < 2 {
		return nil, fmt.Errorf("nurbs order %d is below 2: %w", order, ErrDomain)
	}
	if len(cvs) < order {
		return nil, fmt.Errorf("nurbs curve of order %d needs at least %d CVs, got %d: %w", order, order, len(cvs), ErrTooFewPoints)
	}
	if len(knots) != len(cvs)+order {
		return nil, fmt.Errorf("nurbs curve with %d CVs of order %d needs %d knots, got %d: %w",
			len(cvs), order, len(cvs)+order, len(knots), ErrDomain)
	}
	if !slices.IsSorted(knots) {
		return nil, fmt.Errorf("nurbs knots are not nondecreasing: %w", ErrDomain)
	}
	if knots[order-1] == knots[len(cvs)] {
		return nil, fmt.Errorf("nurbs curve has an empty domain: %w", ErrDomain)
	}
	if weights == nil {
		weights = make([]float64, len(cvs))
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if len(weights) != len(cvs) {
			return nil, fmt.Errorf("nurbs curve has %d CVs but %d weights: %w", len(cvs), len(weights), ErrDomain)
		}
		for _, w := range weights {
			if !(w > 0) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("nurbs weight %g is not positive: %w", w, ErrDomain)
			}
		}
		weights = slices.Clone(weights)
	}
	return &NurbsCurve{
		order:   order,
		knots:   slices.Clone(knots),
		cvs:     slices.Clone(cvs),
		weights: weights,
	}, nil
}

// Order returns the order of the curve, which is its degree plus one.
func (nc *NurbsCurve) Order() int { return nc.order }

// Knots returns a copy of the knot vector.
func (nc *NurbsCurve) Knots() []float64 { return slices.Clone(nc.knots) }

// CVs returns a copy of the control vertices.
func (nc *NurbsCurve) CVs() []r3.Vec { return slices.Clone(nc.cvs) }

// Weights returns a copy of the weights.
func (nc *NurbsCurve) Weights() []float64 { return slices.Clone(nc.weights) }

func (nc *NurbsCurve) Domain() (float64, float64) {
	return nc.knots[nc.order-1], nc.knots[len(nc.cvs)]
}

// span returns the index k of the knot span [knots[k], knots[k+1]) that
// contains t, with order-1 <= k < len(cvs) and knots[k] < knots[k+1].
func (nc *NurbsCurve) span(t float64) int {
	lo, hi := nc.order-1, len(nc.cvs)-1
	k := sort.Search(len(nc.knots), func(i int) bool { return nc.knots[i] > t }) - 1
	k = max(min(k, hi), lo)
	for k > lo && nc.knots[k] == nc.knots[k+1] {
		k--
	}
	return k
}

type homogeneous struct {
	v r3.Vec
	w float64
}

// Eval evaluates the curve at t with de Boor's algorithm in homogeneous
// coordinates. Parameters outside the domain are clamped.
func (nc *NurbsCurve) Eval(t float64) r3.Vec {
	t0, t1 := nc.Domain()
	t = max(min(t, t1), t0)
	p := nc.order - 1
	k := nc.span(t)

	d := make([]homogeneous, nc.order)
	for j := range d {
		i := j + k - p
		w := nc.weights[i]
		d[j] = homogeneous{r3.Scale(w, nc.cvs[i]), w}
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			lo := nc.knots[j+k-p]
			hi := nc.knots[j+1+k-r]
			var alpha float64
			if hi != lo {
				alpha = (t - lo) / (hi - lo)
			}
			d[j] = homogeneous{
				v: lerp(d[j-1].v, d[j].v, alpha),
				w: (1-alpha)*d[j-1].w + alpha*d[j].w,
			}
		}
	}
	return r3.Scale(1/d[p].w, d[p].v)
}

// WriteTo writes the order, knots and control vertices of the curve to w.
func (nc *NurbsCurve) WriteTo(w io.Writer) (int64, error) {
	var n int64
	write := func(format string, args ...any) error {
		m, err := fmt.Fprintf(w, format, args...)
		n += int64(m)
		return err
	}
	if err := write("Order %d\n", nc.order); err != nil {
		return n, err
	}
	knots := make([]string, len(nc.knots))
	for i, k := range nc.knots {
		knots[i] = fmt.Sprint(k)
	}
	if err := write("Knots %s\n", strings.Join(knots, " ")); err != nil {
		return n, err
	}
	for i, cv := range nc.cvs {
		if err := write("CV %s weight %g\n", formatVec(cv), nc.weights[i]); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (nc *NurbsCurve) String() string {
	sb := &strings.Builder{}
	nc.WriteTo(sb)
	return sb.String()
}
