/*
Package metric derives the Riemannian metric of the affect surface.

The surface z = height(x,y) is embedded as a graph, which induces the metric

	g = [[1+z_x², z_x·z_y], [z_x·z_y, 1+z_y²]]

All partial derivatives are estimated with central finite differences of
step h.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package metric

import (
	"fmt"
	"math"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// DefaultStep is the default finite-difference step h.
const DefaultStep = 0.01

// SingularDet is the determinant magnitude below which a tensor counts as
// singular and Invert falls back to the identity.
const SingularDet = 1e-10

// Direction selects a coordinate direction for partial derivatives.
type Direction int

const (
	DirX Direction = iota // ∂/∂x
	DirY                  // ∂/∂y
)

// Tensor is a 2x2 matrix of reals, used for the metric g, its inverse and
// its partial derivatives.
type Tensor [2][2]float64

// Identity2 is the 2x2 identity.
var Identity2 = Tensor{{1, 0}, {0, 1}}

// At returns component (i,j).
func (t Tensor) At(i, j int) float64 {
	return t[i][j]
}

// Det is the determinant of t.
func (t Tensor) Det() float64 {
	return t[0][0]*t[1][1] - t[0][1]*t[1][0]
}

// IsSymmetric is a predicate: is t(0,1) = t(1,0) within riemann.Epsilon?
func (t Tensor) IsSymmetric() bool {
	return riemann.Is0(t[0][1] - t[1][0])
}

func (t Tensor) String() string {
	return fmt.Sprintf("[%.4g %.4g | %.4g %.4g]", t[0][0], t[0][1], t[1][0], t[1][1])
}

// Invert returns the inverse of t. If |det t| < SingularDet, the identity is
// returned instead. This is an approximation, not an error: Christoffel
// symbols and curvature near such points are silently distorted.
func Invert(t Tensor) Tensor {
	det := t.Det()
	if math.Abs(det) < SingularDet {
		tracer().Debugf("metric %s is singular, det = %g; using identity", t, det)
		return Identity2
	}
	return Tensor{
		{t[1][1] / det, -t[0][1] / det},
		{-t[1][0] / det, t[0][0] / det},
	}
}

// Slope returns the partial derivatives (z_x, z_y) of the surface height at
// (x, y), using central differences with step h.
func Slope(x, y float64, p emotion.Params, h float64) (float64, float64) {
	zx := (emotion.Height(x+h, y, p) - emotion.Height(x-h, y, p)) / (2 * h)
	zy := (emotion.Height(x, y+h, p) - emotion.Height(x, y-h, p)) / (2 * h)
	return zx, zy
}

// At returns the metric tensor induced by the surface at (x, y).
func At(x, y float64, p emotion.Params, h float64) Tensor {
	zx, zy := Slope(x, y, p, h)
	return Tensor{
		{1 + zx*zx, zx * zy},
		{zx * zy, 1 + zy*zy},
	}
}

// Derivative returns the partial derivative of the metric tensor in direction
// dir at (x, y), as a central difference of At with step h.
func Derivative(x, y float64, p emotion.Params, h float64, dir Direction) Tensor {
	var plus, minus Tensor
	if dir == DirX {
		plus, minus = At(x+h, y, p, h), At(x-h, y, p, h)
	} else {
		plus, minus = At(x, y+h, p, h), At(x, y-h, p, h)
	}
	var d Tensor
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			d[i][j] = (plus[i][j] - minus[i][j]) / (2 * h)
		}
	}
	return d
}

// VectorField returns the direction of steepest descent of the surface at
// (x, y): the negative height gradient, normalized to unit length. Where the
// gradient vanishes, the division uses 1 instead of the zero norm, so the
// result is the zero vector.
func VectorField(x, y float64, p emotion.Params, h float64) (float64, float64) {
	zx, zy := Slope(x, y, p, h)
	g := riemann.P(-zx, -zy)
	if g.Len() == 0 {
		tracer().Debugf("zero gradient at (%g,%g)", x, y)
	}
	return g.Unit().F()
}
