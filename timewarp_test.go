package curvefit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestComputeTimewarp(t *testing.T) {
	var f Fitter
	for i := range 5 {
		f.AddPoint(float64(i), Vec(float64(i), 0, 0))
	}
	// quadratic covers 10t² units by parameter t, so the samples, spread
	// evenly over its domain, end up at times proportional to t².
	if err := f.ComputeTimewarp(quadratic{}); err != nil {
		t.Fatal(err)
	}
	got := make([]float64, f.Len())
	for i, s := range f.All() {
		got[i] = s.T
	}
	diff(t, []float64{0, 0.25, 1, 2.25, 4}, got, cmpopts.EquateApprox(0, 1e-9))

	// Points are untouched.
	diff(t, Vec(3, 0, 0), f.At(3).Point)
}

func TestComputeTimewarpConstantSpeed(t *testing.T) {
	// Retiming against a curve of constant speed leaves times unchanged.
	var f Fitter
	ts := []float64{1, 1.5, 4, 5}
	for _, tt := range ts {
		f.AddPoint(tt, Vec(0, tt, 0))
	}
	if err := f.ComputeTimewarp(helix{}); err != nil {
		t.Fatal(err)
	}
	got := make([]float64, f.Len())
	for i, s := range f.All() {
		got[i] = s.T
	}
	diff(t, ts, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestComputeTimewarpDegenerate(t *testing.T) {
	var f Fitter
	f.AddPoint(2, Vec(0, 0, 0))
	f.AddPoint(2, Vec(1, 0, 0))
	if err := f.ComputeTimewarp(quadratic{}); err != nil {
		t.Fatal(err)
	}
	diff(t, []Sample{{T: 2}, {T: 2, Point: Vec(1, 0, 0)}}, f.Samples())

	f.Reset()
	f.AddPoint(0, Vec(0, 0, 0))
	f.AddPoint(1, Vec(1, 0, 0))
	p := Vec(5, 5, 5)
	if err := f.ComputeTimewarp(Line{P0: p, P1: p}); err != nil {
		t.Fatal(err)
	}
	diff(t, []Sample{{T: 0}, {T: 1, Point: Vec(1, 0, 0)}}, f.Samples())
}

func TestComputeTimewarpErrors(t *testing.T) {
	var f Fitter
	f.AddPoint(0, Vec(0, 0, 0))
	if err := f.ComputeTimewarp(quadratic{}); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
	f.AddPoint(1, Vec(0, 0, 0))
	inverted := sampledCurve{t0: 1, t1: -1, f: func(float64) (float64, float64, float64) { return 0, 0, 0 }}
	if err := f.ComputeTimewarp(inverted); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}
}
