// Package curvefit fits smooth parametric curves to temporally ordered 3D
// samples. It was designed to prepare motion data (positions, or
// heading/pitch/roll triples) for animation, but it is general enough to be
// useful for any vector-valued quantity that varies over time.
//
// # Samples and the fitter
//
// A [Fitter] owns an ordered sequence of [Sample] values, each consisting of a
// time, a point and a tangent. Samples are appended with [Fitter.AddPoint] or
// produced in bulk by sampling an existing curve with [Fitter.Sample] or
// [Fitter.GenerateEven]. The sequence keeps insertion order until
// [Fitter.SortPoints] is called.
//
// Once the samples are in place, the fitter can
//
//   - estimate tangents from finite differences (see [Fitter.ComputeTangents]),
//   - unwrap heading/pitch/roll angles (see [Fitter.WrapHPR]),
//   - retime samples so that they move at the speed implied by another curve
//     (see [Fitter.ComputeTimewarp]),
//   - drop samples that barely contribute to the shape of the curve (see
//     [Fitter.Desample] and [Fitter.Decimate]),
//
// and finally emit a [HermiteCurve] or a [NurbsCurve]. Emitted curves own
// copies of the data; the fitter may be reset or modified afterwards.
//
// # Parametric curves
//
// [ParametricCurve] describes curves that can be evaluated over a parameter
// domain [t0, t1] and return points in ℝ³. The fitter consumes parametric
// curves when sampling and when computing timewarps.
//
// [Deriver] is an optional interface implemented by curves that can compute
// their derivative. [Arclener] is an optional interface implemented by curves
// that can compute their arc length. [ArclenSolver] is an optional interface
// implemented by curves that can efficiently solve for a parameter given an
// arc length. Curves that implement none of them still work with [Arclen] and
// [SolveForArclen], which fall back to numerical methods.
//
// This package includes the following curves:
//   - [Line]
//   - [CubicBez]
//   - [HermiteCurve]
//   - [NurbsCurve]
//
// # Errors
//
// Operations that are called with unusable input (too few samples, a sample
// count below two, an inverted parameter domain) return one of the sentinel
// errors of this package and leave the fitter unmodified. Numeric hazards,
// such as two samples sharing the same time, are handled in place and never
// produce NaN or infinite values.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [The NURBS Book] by Piegl and Tiller
//   - [A Primer on Bézier Curves]
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package curvefit
