package curvefit

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// nurbsOrder is the order of the curves built by [Fitter.MakeNurbs].
const nurbsOrder = 4

// MakeHermite returns a Hermite curve passing through every sample at its
// time, with the sample's tangent as both the incoming and outgoing
// velocity. Samples must be sorted. At least two samples are required.
func (f *Fitter) MakeHermite() (*HermiteCurve, error) {
	if len(f.data) < 2 {
		return nil, fmt.Errorf("making hermite curve from %d samples: %w", len(f.data), ErrTooFewPoints)
	}
	cvs := make([]HermiteCV, len(f.data))
	for i, s := range f.data {
		cvs[i] = HermiteCV{
			T:     s.T,
			Point: s.Point,
			In:    s.Tangent,
			Out:   s.Tangent,
		}
	}
	return NewHermiteCurve(cvs)
}

// MakeNurbs returns a cubic NURBS curve that traces the same path as the
// curve returned by [Fitter.MakeHermite]. Each Hermite segment becomes a
// Bézier segment, joined by knots of multiplicity three at the sample times.
// Samples must be sorted. At least two samples are required, and the first
// and last samples must not share a time.
func (f *Fitter) MakeNurbs() (*NurbsCurve, error) {
	n := len(f.data)
	if n < 2 {
		return nil, fmt.Errorf("making nurbs curve from %d samples: %w", n, ErrTooFewPoints)
	}
	cvs := make([]r3.Vec, 0, 3*(n-1)+1)
	knots := make([]float64, 0, 3*(n-1)+1+nurbsOrder)

	first := f.data[0]
	cvs = append(cvs, first.Point)
	knots = append(knots, first.T, first.T, first.T, first.T)
	for i := range n - 1 {
		a, b := f.data[i], f.data[i+1]
		seg := HermiteBez(a.Point, a.Tangent, b.Point, b.Tangent, b.T-a.T)
		cvs = append(cvs, seg.P1, seg.P2, seg.P3)
		knots = append(knots, b.T, b.T, b.T)
	}
	knots = append(knots, f.data[n-1].T)
	return NewNurbsCurve(nurbsOrder, cvs, nil, knots)
}
