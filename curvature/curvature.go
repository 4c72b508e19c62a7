/*
Package curvature estimates the curvature of the affect surface.

Two estimators are provided. Gaussian computes the extrinsic formula for a
graph z(x,y)

	K = (z_xx·z_yy − z_xy²) / (1 + z_x² + z_y²)²

from central finite differences. Connection estimates curvature from
holonomy: a reference vector is parallel-transported once around a small
square, and its net rotation is divided by the square's area. Both agree
in sign over regions of uniform bending, but the holonomy estimate is a
first-order proxy and differs in magnitude.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvature

import (
	"math"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/christoffel"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/riemann/metric"
	"github.com/npillmayer/riemann/polygon"
	"github.com/npillmayer/riemann/transport"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r2"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// denomEpsilon keeps the denominator of the Gaussian curvature away from zero.
const denomEpsilon = 1e-10

// reference is the vector carried around holonomy loops.
var reference = r2.Vec{X: 1, Y: 0}

// domain is the normalized parameter square [-1,1]².
var domain = polygon.Box(riemann.P(-1, -1), riemann.P(1, 1))

// Gaussian returns the Gaussian curvature of the surface at (x, y), using
// finite differences of step h. h = 0 selects metric.DefaultStep.
func Gaussian(x, y float64, p emotion.Params, h float64) float64 {
	if h == 0 {
		h = metric.DefaultStep
	}
	z := func(x, y float64) float64 { return emotion.Height(x, y, p) }
	z0 := z(x, y)
	zx, zy := metric.Slope(x, y, p, h)
	zxx := (z(x+h, y) - 2*z0 + z(x-h, y)) / (h * h)
	zyy := (z(x, y+h) - 2*z0 + z(x, y-h)) / (h * h)
	zxy := (z(x+h, y+h) - z(x+h, y-h) - z(x-h, y+h) + z(x-h, y-h)) / (4 * h * h)
	d := 1 + zx*zx + zy*zy
	return (zxx*zyy - zxy*zxy) / (d*d + denomEpsilon)
}

// Connection estimates curvature at (x, y) from holonomy. The unit vector
// (1,0) is transported counter-clockwise around the square of side h with
// lower left corner (x, y); the result is the vector's net rotation angle,
// in (−π,π], divided by h². The connection is taken from conn, a nil conn
// evaluates directly. h = 0 selects metric.DefaultStep.
//
// A loop too small to resolve at (x, y), i.e. of zero area in floating
// point, carries no holonomy and yields 0.
func Connection(conn christoffel.Provider, x, y float64, p emotion.Params, h float64) float64 {
	if h == 0 {
		h = metric.DefaultStep
	}
	sq := polygon.Square(riemann.P(x, y), h)
	if !sq.IsCycle() || sq.Area() <= 0 {
		tracer().Errorf("degenerate holonomy loop at (%g,%g), h=%g", x, y, h)
		return 0
	}
	if ll, ur := sq.BoundingBox(); !domain.Contains(ll) || !domain.Contains(ur) {
		tracer().Debugf("holonomy loop %s leaves the unit square", polygon.AsString(sq))
	}
	loop := sq.Loop(riemann.Identity(), func(x, y float64) float64 {
		return emotion.Height(x, y, p)
	})
	samples, err := transport.Transport(conn, reference, loop, p, transport.Config{Scale: 1})
	if err != nil { // cannot happen for a square
		tracer().Errorf("holonomy loop at (%g,%g): %v", x, y, err)
		return 0
	}
	angle := netRotation(reference, transport.Final(samples, reference))
	tracer().Debugf("holonomy at (%g,%g), h=%g: rotation %g", x, y, h, angle)
	return angle / (h * h)
}

// netRotation returns the counter-clockwise angle in (−π,π] turning u
// into the direction of v.
func netRotation(u, v r2.Vec) float64 {
	back := riemann.P(v.X, v.Y).Rotated(-math.Atan2(u.Y, u.X))
	return math.Atan2(back.Y(), back.X())
}
