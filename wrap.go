package curvefit

import "math"

// WrapHPR treats every point as a heading/pitch/roll triple in degrees and
// unwraps each component independently: walking the samples in order, it
// adds the multiple of 360° to each angle that brings it closest to the
// previous, already unwrapped, angle. The first sample is left as is.
//
// Afterwards no component differs from its predecessor by more than 180°.
func (f *Fitter) WrapHPR() {
	for i := 1; i < len(f.data); i++ {
		prev := f.data[i-1].Point
		cur := &f.data[i].Point
		for c := range 3 {
			*component(cur, c) = unwrapDegrees(*component(&prev, c), *component(cur, c))
		}
	}
}

// unwrapDegrees returns the angle equivalent to a that is nearest to ref.
// Exact half-turn differences are left alone.
func unwrapDegrees(ref, a float64) float64 {
	delta := a - ref
	if math.Abs(delta) <= 180 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return a
	}
	return a - 360*math.Round(delta/360)
}
