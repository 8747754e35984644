package curvefit

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

var _ ParametricCurve = (*HermiteCurve)(nil)
var _ Deriver = (*HermiteCurve)(nil)
var _ Arclener = (*HermiteCurve)(nil)

// HermiteCV is a control vertex of a [HermiteCurve]: a point the curve passes
// through at time T, with the incoming and outgoing velocities at that point.
type HermiteCV struct {
	T     float64
	Point r3.Vec
	In    r3.Vec
	Out   r3.Vec
}

func (cv HermiteCV) String() string {
	return fmt.Sprintf("Time %g point %s in %s out %s", cv.T, formatVec(cv.Point), formatVec(cv.In), formatVec(cv.Out))
}

// HermiteCurve is a piecewise cubic Hermite spline. Segment i runs from CV i
// to CV i+1, leaving CV i with its Out velocity and arriving at CV i+1 with
// its In velocity. Segments of zero duration are skipped when evaluating.
type HermiteCurve struct {
	cvs []HermiteCV
}

// NewHermiteCurve returns a Hermite curve through the given control vertices,
// which must be sorted by T. The curve owns a copy of cvs.
func NewHermiteCurve(cvs []HermiteCV) (*HermiteCurve, error) {
	if len(cvs) < 2 {
		return nil, fmt.Errorf("hermite curve needs at least 2 CVs, got %d: %w", len(cvs), ErrTooFewPoints)
	}
	if !slices.IsSortedFunc(cvs, func(a, b HermiteCV) int { return cmp.Compare(a.T, b.T) }) {
		return nil, fmt.Errorf("hermite CVs are not sorted by time: %w", ErrDomain)
	}
	return &HermiteCurve{cvs: slices.Clone(cvs)}, nil
}

// Len returns the number of control vertices.
func (h *HermiteCurve) Len() int { return len(h.cvs) }

// CV returns the i-th control vertex.
func (h *HermiteCurve) CV(i int) HermiteCV { return h.cvs[i] }

// CVs returns a copy of the control vertices.
func (h *HermiteCurve) CVs() []HermiteCV { return slices.Clone(h.cvs) }

func (h *HermiteCurve) Domain() (float64, float64) {
	return h.cvs[0].T, h.cvs[len(h.cvs)-1].T
}

// Segment returns segment i as a cubic Bézier over [0, 1].
func (h *HermiteCurve) Segment(i int) CubicBez {
	a, b := h.cvs[i], h.cvs[i+1]
	return HermiteBez(a.Point, a.Out, b.Point, b.In, b.T-a.T)
}

// locate returns the segment containing t and the parameter within that
// segment. Parameters outside the domain are clamped.
func (h *HermiteCurve) locate(t float64) (int, float64) {
	n := len(h.cvs)
	if t <= h.cvs[0].T {
		return 0, 0
	}
	if t >= h.cvs[n-1].T {
		return n - 2, 1
	}
	// First CV strictly after t; the segment ending there has nonzero
	// duration because its start is at or before t.
	j := sort.Search(n, func(i int) bool { return h.cvs[i].T > t })
	i := j - 1
	dt := h.cvs[j].T - h.cvs[i].T
	return i, (t - h.cvs[i].T) / dt
}

func (h *HermiteCurve) Eval(t float64) r3.Vec {
	i, u := h.locate(t)
	if h.cvs[i+1].T == h.cvs[i].T {
		// only possible when clamping onto a degenerate end segment
		if u == 0 {
			return h.cvs[i].Point
		}
		return h.cvs[i+1].Point
	}
	return h.Segment(i).Eval(u)
}

// Deriv returns the velocity of the curve at t, with respect to time.
func (h *HermiteCurve) Deriv(t float64) r3.Vec {
	i, u := h.locate(t)
	dt := h.cvs[i+1].T - h.cvs[i].T
	if dt == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/dt, h.Segment(i).Deriv(u))
}

// Arclen returns the length of the curve between t0 and t1, measuring every
// segment with [CubicBez.Arclen].
func (h *HermiteCurve) Arclen(t0, t1, accuracy float64) float64 {
	i0, u0 := h.locate(t0)
	i1, u1 := h.locate(t1)
	segAccuracy := accuracy / float64(i1-i0+1)
	var sum float64
	for i := i0; i <= i1; i++ {
		if h.cvs[i+1].T == h.cvs[i].T {
			continue
		}
		a, b := 0.0, 1.0
		if i == i0 {
			a = u0
		}
		if i == i1 {
			b = u1
		}
		if a >= b {
			continue
		}
		sum += h.Segment(i).Arclen(a, b, segAccuracy)
	}
	return sum
}

// WriteTo writes one line per control vertex to w.
func (h *HermiteCurve) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, cv := range h.cvs {
		m, err := fmt.Fprintln(w, cv)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (h *HermiteCurve) String() string {
	sb := &strings.Builder{}
	h.WriteTo(sb)
	return sb.String()
}
