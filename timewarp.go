package curvefit

import (
	"fmt"
	"math"
)

// ComputeTimewarp retimes the samples so that they progress at the speed
// implied by the geometry of xyz.
//
// Each sample is associated with a parameter of xyz by mapping its current
// time linearly from [first time, last time] onto the domain of xyz. The
// cumulative arc length of xyz up to each associated parameter then becomes
// the sample's new time, rescaled so that the first and last samples keep
// their times. Samples are assumed to be in time order; out-of-order samples
// subtract the length traveled backwards.
//
// The caller is responsible for the correspondence between samples and xyz.
// If the first and last samples share a time, or xyz has zero length, the
// samples are left unchanged.
func (f *Fitter) ComputeTimewarp(xyz ParametricCurve) error {
	n := len(f.data)
	if n < 2 {
		return fmt.Errorf("computing timewarp over %d samples: %w", n, ErrTooFewPoints)
	}
	if !validDomain(xyz) {
		t0, t1 := xyz.Domain()
		return fmt.Errorf("computing timewarp over [%g, %g]: %w", t0, t1, ErrDomain)
	}
	tFirst, tLast := f.data[0].T, f.data[n-1].T
	if tFirst == tLast {
		return nil
	}
	d0, d1 := xyz.Domain()
	param := func(t float64) float64 {
		u := d0 + (t-tFirst)/(tLast-tFirst)*(d1-d0)
		return max(min(u, d1), d0)
	}

	acc := f.accuracy()
	dist := make([]float64, n)
	prev := param(tFirst)
	for i := 1; i < n; i++ {
		u := param(f.data[i].T)
		dist[i] = dist[i-1] + Arclen(xyz, prev, u, acc)
		prev = u
	}
	total := dist[n-1]
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil
	}
	for i := range f.data {
		f.data[i].T = tFirst + dist[i]/total*(tLast-tFirst)
	}
	return nil
}
