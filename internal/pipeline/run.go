package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/curvefit"
)

// Run applies the steps of cfg to f in order, stopping at the first error.
// The error names the failing step.
//
// Resample and timewarp steps use a Hermite curve through f's current samples
// as their source curve. If no sample has a tangent yet, tangents are
// computed with scale 1 first.
func Run(f *curvefit.Fitter, cfg *Config, log *logrus.Entry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for i, s := range cfg.Steps {
		slog := log.WithFields(logrus.Fields{"step": i, "op": s.Op})
		before := f.Len()
		if err := apply(f, s, slog); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s, err)
		}
		slog.WithFields(logrus.Fields{"before": before, "after": f.Len()}).Debug("applied step")
	}
	return nil
}

func apply(f *curvefit.Fitter, s Step, log *logrus.Entry) error {
	switch s.Op {
	case OpSort:
		f.SortPoints()
	case OpWrapHPR:
		f.WrapHPR()
	case OpTangents:
		return f.ComputeTangents(s.scale())
	case OpResample:
		h, err := source(f, log)
		if err != nil {
			return err
		}
		return f.Sample(h, s.Count, s.Even)
	case OpTimewarp:
		h, err := source(f, log)
		if err != nil {
			return err
		}
		return f.ComputeTimewarp(h)
	case OpDesample:
		n := f.Desample(s.Tolerance)
		log.WithField("removed", n).Info("desampled")
	case OpDecimate:
		return f.Decimate(s.Factor)
	default:
		return fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
	}
	return nil
}

// source returns the Hermite curve through f's samples.
func source(f *curvefit.Fitter, log *logrus.Entry) (*curvefit.HermiteCurve, error) {
	if !hasTangents(f) {
		log.Debug("computing tangents for source curve")
		if err := f.ComputeTangents(1); err != nil {
			return nil, err
		}
	}
	return f.MakeHermite()
}

func hasTangents(f *curvefit.Fitter) bool {
	for _, s := range f.All() {
		if s.Tangent != (r3.Vec{}) {
			return true
		}
	}
	return false
}
