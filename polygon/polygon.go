/*
Package polygon provides closed polygonal loops in the plane.

Loops are used to probe the surface's holonomy: a tangent vector carried
once around a small loop comes back rotated, and the rotation per enclosed
area estimates curvature. Polygons are built with a builder pattern
(package qualifiers omitted):

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,0)).Knot(P(1,1)).Cycle()

Geometry queries (bounding box, containment) are delegated to
github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/riemann"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'geometry'.
func L() tracing.Trace {
	return tracing.Select("geometry")
}

// Polygon is a closed loop of knots. The closing segment from the last knot
// back to the first one is implicit.
type Polygon struct {
	contour polyclip.Contour
	closed  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(pr riemann.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: pr.X(), Y: pr.Y()})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.closed = true
	return pg
}

// Box creates a rectangle with corners a and b, in counter-clockwise order
// starting at the lower left corner.
func Box(a, b riemann.Pair) *Polygon {
	xmin, xmax := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	ymin, ymax := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().
		Knot(riemann.P(xmin, ymin)).
		Knot(riemann.P(xmax, ymin)).
		Knot(riemann.P(xmax, ymax)).
		Knot(riemann.P(xmin, ymax)).
		Cycle()
}

// unitSquare is the counter-clockwise square [0,1]².
var unitSquare = Box(riemann.Origin, riemann.P(1, 1))

// Square creates a counter-clockwise square of side h with lower left corner at ll.
func Square(ll riemann.Pair, h float64) *Polygon {
	return unitSquare.Transformed(riemann.Scaling(h).Combine(riemann.Translation(ll)))
}

// Transformed returns a copy of pg with all knots mapped by m.
func (pg *Polygon) Transformed(m riemann.AT) *Polygon {
	t := NullPolygon()
	for i := 0; i < pg.N(); i++ {
		t.Knot(m.Transform(pg.Z(i)))
	}
	t.closed = pg.closed
	return t
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: has this polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.closed
}

// Z returns knot i (mod N).
func (pg *Polygon) Z(i int) riemann.Pair {
	pt := pg.contour[i%pg.N()]
	return riemann.P(pt.X, pt.Y)
}

// Area returns the signed area (shoelace formula). Counter-clockwise
// polygons have positive area.
func (pg *Polygon) Area() float64 {
	var a float64
	for i := 0; i < pg.N(); i++ {
		p, q := pg.contour[i], pg.contour[(i+1)%pg.N()]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Contains is a predicate: does the polygon contain point pr?
func (pg *Polygon) Contains(pr riemann.Pair) bool {
	return pg.contour.Contains(polyclip.Point{X: pr.X(), Y: pr.Y()})
}

// BoundingBox returns the lower left and upper right corner of the
// polygon's bounding box.
func (pg *Polygon) BoundingBox() (riemann.Pair, riemann.Pair) {
	bb := pg.contour.BoundingBox()
	return riemann.P(bb.Min.X, bb.Min.Y), riemann.P(bb.Max.X, bb.Max.Y)
}

// Loop converts the polygon into a closed path: positions are mapped by m,
// the first knot is repeated at the end, and heights are taken from z at the
// unmapped positions.
func (pg *Polygon) Loop(m riemann.AT, z func(x, y float64) float64) *riemann.Path {
	path := riemann.Nullpath()
	if pg.N() == 0 {
		return path
	}
	for i := 0; i <= pg.N(); i++ {
		pr := pg.Z(i)
		path.Knot(m.Transform(pr), z(pr.X(), pr.Y()))
	}
	return path.End()
}

// AsString returns a polygon as a (debugging) string.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pg.Z(i).String())
	}
	if pg.IsCycle() {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
