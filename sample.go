package curvefit

import (
	"cmp"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sample is a single data point of a [Fitter]: a point in ℝ³ observed at time
// T, together with the tangent (velocity) estimated for it.
type Sample struct {
	T       float64
	Point   r3.Vec
	Tangent r3.Vec
}

func (s Sample) String() string {
	return fmt.Sprintf("Time %g point %s tan %s", s.T, formatVec(s.Point), formatVec(s.Tangent))
}

// compareSamples orders samples by time. NaN times sort before all others.
func compareSamples(a, b Sample) int {
	return cmp.Compare(a.T, b.T)
}
