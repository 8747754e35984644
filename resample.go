package curvefit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sample replaces the fitter's samples with count points taken from c.
//
// If even is false, the parameters are evenly spaced over the curve's domain.
// If even is true, they are chosen so that consecutive points are evenly
// spaced in arc length, to within the fitter's accuracy. A curve of zero
// length is sampled as if even were false.
//
// Each sample's time is the parameter it was taken at, and its tangent is
// zero.
func (f *Fitter) Sample(c ParametricCurve, count int, even bool) error {
	if count < 2 {
		return fmt.Errorf("sampling %d points: %w", count, ErrSampleCount)
	}
	if !validDomain(c) {
		t0, t1 := c.Domain()
		return fmt.Errorf("sampling curve over [%g, %g]: %w", t0, t1, ErrDomain)
	}
	ts := sampleParams(c, count, even, f.accuracy())

	f.data = f.data[:0]
	for _, t := range ts {
		f.data = append(f.data, Sample{T: t, Point: c.Eval(t)})
	}
	return nil
}

// sampleParams returns the count parameters at which c is sampled.
func sampleParams(c ParametricCurve, count int, even bool, accuracy float64) []float64 {
	t0, t1 := c.Domain()
	ts := floats.Span(make([]float64, count), t0, t1)
	if !even || t0 == t1 {
		return ts
	}
	total := Arclen(c, t0, t1, accuracy)
	if !(total > 0) || math.IsInf(total, 0) {
		return ts
	}

	step := total / float64(count-1)
	for i := 1; i < count-1; i++ {
		ts[i] = SolveForArclen(c, ts[i-1], step, accuracy)
	}
	ts[count-1] = t1
	return ts
}

// GenerateEven replaces the fitter's samples with count points of a straight
// motion along the x axis that covers netDistance units in netTime, at
// constant speed and starting at the origin at time 0.
func (f *Fitter) GenerateEven(count int, netDistance, netTime float64) error {
	if count < 2 {
		return fmt.Errorf("generating %d points: %w", count, ErrSampleCount)
	}
	f.data = f.data[:0]
	for i := range count {
		frac := float64(i) / float64(count-1)
		f.data = append(f.data, Sample{
			T:     netTime * frac,
			Point: Vec(netDistance*frac, 0, 0),
		})
	}
	return nil
}
