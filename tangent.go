package curvefit

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// closeTolerance is how close the first and last points must be for
// [Fitter.ComputeTangents] to treat the samples as a closed loop.
const closeTolerance = 1e-3

// ComputeTangents estimates the tangent of every sample from the positions
// and times of its neighbors, scaled by scale.
//
// Interior samples use the central difference (p[i+1] - p[i-1]) / (t[i+1] -
// t[i-1]). A neighbor at the same time as the sample contributes nothing, so
// the estimate degrades to a one-sided difference, or to zero if both
// neighbors share the sample's time. The first and last samples use one-sided
// differences. If the first and last points coincide and there are at least
// three samples, the curve is treated as closed and both ends get the same
// tangent, computed across the seam.
func (f *Fitter) ComputeTangents(scale float64) error {
	n := len(f.data)
	if n < 2 {
		return fmt.Errorf("computing tangents over %d samples: %w", n, ErrTooFewPoints)
	}
	d := f.data

	for i := 1; i < n-1; i++ {
		d[i].Tangent = difference(d[i-1], d[i], d[i+1], scale)
	}

	closed := n >= 3 && almostEqual(d[0].Point, d[n-1].Point, closeTolerance)
	if closed {
		// Treat d[n-2] -> d[n-1] = d[0] -> d[1] as one interior stretch,
		// shifting d[1] so that it follows d[n-1] in time.
		after := Sample{
			T:     d[n-1].T + (d[1].T - d[0].T),
			Point: r3.Add(d[n-1].Point, r3.Sub(d[1].Point, d[0].Point)),
		}
		tan := difference(d[n-2], d[n-1], after, scale)
		d[0].Tangent = tan
		d[n-1].Tangent = tan
	} else {
		d[0].Tangent = slope(d[0], d[1], scale)
		d[n-1].Tangent = slope(d[n-2], d[n-1], scale)
	}
	return nil
}

// slope returns the scaled one-sided difference between a and b, or zero if
// they share a time.
func slope(a, b Sample, scale float64) r3.Vec {
	dt := b.T - a.T
	if dt == 0 {
		return r3.Vec{}
	}
	return r3.Scale(scale/dt, r3.Sub(b.Point, a.Point))
}

// difference returns the scaled central difference at cur, skipping a
// neighbor that shares cur's time.
func difference(prev, cur, next Sample, scale float64) r3.Vec {
	var dp r3.Vec
	var dt float64
	if prev.T != cur.T {
		dp = r3.Add(dp, r3.Sub(cur.Point, prev.Point))
		dt += cur.T - prev.T
	}
	if next.T != cur.T {
		dp = r3.Add(dp, r3.Sub(next.Point, cur.Point))
		dt += next.T - cur.T
	}
	if dt == 0 {
		return r3.Vec{}
	}
	return r3.Scale(scale/dt, dp)
}
