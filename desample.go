package curvefit

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Desample removes samples that contribute little to the shape of the
// fitted curve and returns how many were removed.
//
// It repeatedly picks the interior sample whose removal error is smallest
// and removes it, as long as that error is below tolerance. The removal
// error of a sample is its distance to the Hermite segment that would join
// its two current neighbors, evaluated at the sample's own time. Ties go to
// the earliest sample. The first and last samples are never removed.
//
// The order in which samples are removed does not depend on tolerance, so a
// larger tolerance never keeps more samples than a smaller one. Samples
// should be sorted, and usually have their tangents computed, beforehand.
func (f *Fitter) Desample(tolerance float64) int {
	order := removalOrder(f.data, tolerance)
	if len(order) == 0 {
		return 0
	}
	alive := make([]bool, len(f.data))
	for i := range alive {
		alive[i] = true
	}
	for _, i := range order {
		alive[i] = false
	}

	out := f.data[:0]
	for i, s := range f.data {
		if alive[i] {
			out = append(out, s)
		}
	}
	clear(f.data[len(out):])
	f.data = out
	return len(order)
}

// removalOrder returns the indices of the samples removed by
// [Fitter.Desample], in the order they are removed.
func removalOrder(data []Sample, tolerance float64) []int {
	n := len(data)
	if n < 3 {
		return nil
	}

	// Doubly linked list over the samples, so that removals are cheap and
	// only the neighbors' errors need updating. Rescoring a sample bumps its
	// version, which invalidates the entry already in the queue.
	prev := make([]int, n)
	next := make([]int, n)
	version := make([]int, n)
	alive := make([]bool, n)
	for i := range n {
		prev[i] = i - 1
		next[i] = i + 1
		alive[i] = true
	}
	q := make(removalQueue, 0, n-2)
	for i := 1; i < n-1; i++ {
		q = append(q, removal{err: removalError(data[i-1], data[i], data[i+1]), index: i})
	}
	heap.Init(&q)

	rescore := func(i int) {
		version[i]++
		err := removalError(data[prev[i]], data[i], data[next[i]])
		heap.Push(&q, removal{err: err, index: i, version: version[i]})
	}

	var order []int
	for q.Len() > 0 {
		r := heap.Pop(&q).(removal)
		if !alive[r.index] || r.version != version[r.index] {
			continue
		}
		if !(r.err < tolerance) {
			break
		}
		alive[r.index] = false
		order = append(order, r.index)
		a, b := prev[r.index], next[r.index]
		next[a] = b
		prev[b] = a
		if a > 0 {
			rescore(a)
		}
		if b < n-1 {
			rescore(b)
		}
	}
	return order
}

type removal struct {
	err     float64
	index   int
	version int
}

// removalQueue is a min-heap of removals ordered by error, then index.
type removalQueue []removal

func (q removalQueue) Len() int { return len(q) }
func (q removalQueue) Less(i, j int) bool {
	if q[i].err != q[j].err {
		return q[i].err < q[j].err
	}
	return q[i].index < q[j].index
}
func (q removalQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *removalQueue) Push(x any)   { *q = append(*q, x.(removal)) }
func (q *removalQueue) Pop() any {
	old := *q
	r := old[len(old)-1]
	*q = old[:len(old)-1]
	return r
}

// removalError returns the distance between s and the Hermite segment from a
// to b at s's time.
func removalError(a, s, b Sample) float64 {
	dt := b.T - a.T
	u := 0.5
	if dt != 0 {
		u = (s.T - a.T) / dt
	}
	p := HermiteBez(a.Point, a.Tangent, b.Point, b.Tangent, dt).Eval(u)
	d := r3.Norm(r3.Sub(p, s.Point))
	if math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}

// Decimate keeps roughly a fraction factor of the samples, spread evenly
// through the sequence, without looking at their positions. The first and
// last samples are always kept. A factor of 1 keeps every sample.
func (f *Fitter) Decimate(factor float64) error {
	if !(factor > 0 && factor <= 1) {
		return fmt.Errorf("decimating by %g: %w", factor, ErrFactor)
	}
	n := len(f.data)
	if n < 3 {
		return nil
	}
	out := f.data[:0]
	count := 1.0
	for i := 0; i < n-1; i++ {
		if count >= 1.0 {
			out = append(out, f.data[i])
			count -= 1.0
		}
		count += factor
	}
	out = append(out, f.data[n-1])
	clear(f.data[len(out):])
	f.data = out
	return nil
}
