package curvefit

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrTooFewPoints is returned by operations that need more samples than
	// the fitter holds.
	ErrTooFewPoints = errors.New("curvefit: too few sample points")
	// ErrSampleCount is returned when asked to produce fewer than two
	// samples.
	ErrSampleCount = errors.New("curvefit: sample count must be at least 2")
	// ErrDomain is returned for curves whose parameter domain or knot vector
	// is unusable.
	ErrDomain = errors.New("curvefit: invalid parameter domain")
	// ErrFactor is returned by [Fitter.Decimate] for factors outside (0, 1].
	ErrFactor = errors.New("curvefit: decimation factor out of range")
)

// Options configures a [Fitter].
type Options struct {
	// Accuracy is the tolerance for arc length computations, in the units of
	// the sampled points. Non-positive values select [DefaultAccuracy].
	Accuracy float64
}

var DefaultOptions = Options{
	Accuracy: DefaultAccuracy,
}

// Fitter holds an ordered sequence of samples and fits curves to them.
//
// The zero value is an empty fitter using [DefaultOptions]. A Fitter is not
// safe for concurrent use.
type Fitter struct {
	opts Options
	data []Sample
}

// NewFitter returns an empty fitter.
func NewFitter(opts Options) *Fitter {
	return &Fitter{opts: opts}
}

func (f *Fitter) accuracy() float64 {
	if f.opts.Accuracy <= 0 {
		return DefaultAccuracy
	}
	return f.opts.Accuracy
}

// Reset discards all samples.
func (f *Fitter) Reset() {
	f.data = f.data[:0]
}

// AddPoint appends a sample at time t with a zero tangent. It neither sorts
// nor deduplicates.
func (f *Fitter) AddPoint(t float64, point r3.Vec) {
	f.data = append(f.data, Sample{T: t, Point: point})
}

// Len returns the number of samples.
func (f *Fitter) Len() int {
	return len(f.data)
}

// At returns the i-th sample.
func (f *Fitter) At(i int) Sample {
	return f.data[i]
}

// Samples returns a copy of all samples in their current order.
func (f *Fitter) Samples() []Sample {
	return slices.Clone(f.data)
}

// All returns an iterator over the indices and samples in their current
// order. The fitter must not be modified during iteration.
func (f *Fitter) All() iter.Seq2[int, Sample] {
	return slices.All(f.data)
}

// SortPoints sorts the samples by ascending time. Samples with equal times
// keep their relative order. Samples with NaN times are moved to the front.
func (f *Fitter) SortPoints() {
	slices.SortStableFunc(f.data, compareSamples)
}

// WriteTo writes one line per sample to w, in the form
//
//	Time <t> point <x, y, z> tan <x, y, z>
func (f *Fitter) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, s := range f.data {
		m, err := fmt.Fprintln(w, s)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (f *Fitter) String() string {
	sb := &strings.Builder{}
	f.WriteTo(sb)
	return sb.String()
}

// Print writes the samples to standard output.
func (f *Fitter) Print() {
	f.WriteTo(os.Stdout)
}
