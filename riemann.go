/*
Package riemann treats an affect surface as a Riemannian manifold.

The surface is the graph of a scalar height function over the plane of
expectation (x) and perception (y). Sub-packages derive the induced metric
(package metric), its connection coefficients (package christoffel), geodesic
traces (package geodesic), parallel transport of tangent vectors (package
transport) and curvature estimates (package curvature). Package surface
bundles everything behind a single engine type.

This package holds the numeric basics shared by all of them: predicates
for near-zero values, 2D pairs, affine transforms and sampled paths.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package riemann

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'riemann'
func tracer() tracing.Trace {
	return tracing.Select("riemann")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Quantum is the resolution of the fixed-point grid positions are snapped to
// for memoization.
const Quantum float64 = 0.001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// MaxQuantized bounds the grid index returned by Quantize. Positions beyond
// ±MaxQuantized·Quantum all snap to the outermost grid position.
const MaxQuantized int64 = 1 << 53

// Quantize returns n in units of Quantum, rounded half away from zero and
// clamped to ±MaxQuantized. NaN maps to 0.
func Quantize(n float64) int64 {
	q := math.Round(n / Quantum)
	switch {
	case math.IsNaN(q):
		tracer().Errorf("cannot quantize NaN")
		return 0
	case q > float64(MaxQuantized):
		tracer().Debugf("quantizing %g: clamped to grid bound", n)
		return MaxQuantized
	case q < -float64(MaxQuantized):
		tracer().Debugf("quantizing %g: clamped to grid bound", n)
		return -MaxQuantized
	}
	return int64(q)
}

// Dequantize is the inverse of Quantize.
func Dequantize(q int64) float64 {
	return float64(q) * Quantum
}

// === Pair Data Type ========================================================

// Pair is a 2D-point or 2D-vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both parts finite?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Len is the euclidean length of p.
func (p Pair) Len() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Unit returns p scaled to length 1. A zero-length p is divided by 1
// instead, i.e. the origin maps to itself.
func (p Pair) Unit() Pair {
	n := p.Len()
	if n == 0 {
		n = 1
	}
	return P(p.X()/n, p.Y()/n)
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// Snapped returns p with both parts snapped to the Quantum grid.
func (p Pair) Snapped() Pair {
	return P(Dequantize(Quantize(p.X())), Dequantize(Quantize(p.Y())))
}

// InDomain is a predicate: does p lie within the closed square [-1,1]² ?
func (p Pair) InDomain() bool {
	return math.Abs(p.X()) <= 1 && math.Abs(p.Y()) <= 1
}
