package riemann

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPath indicates a nil or empty path where knots are required.
	ErrNoPath = errors.New("path must not be nil or empty")
)

// Path is an ordered sequence of knots on the surface: positions (usually in
// scene coordinates) together with the surface height at each knot.
// Geodesic traces produce paths, parallel transport consumes them.
//
// Paths are built with a builder pattern, starting from Nullpath():
//
//	path := Nullpath().Knot(P(0,0), 0.1).Knot(P(1,0), 0.3).End()
//
// Once handed out, a path is never changed by this module.
type Path struct {
	points  []Pair
	heights []float64
}

// Nullpath creates an empty path, to be extended by subsequent builder calls.
func Nullpath() *Path {
	return &Path{}
}

// Knot appends a knot at position pr with height z. Part of builder functionality.
func (path *Path) Knot(pr Pair, z float64) *Path {
	path.points = append(path.points, pr)
	path.heights = append(path.heights, z)
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// N returns the length of this path (knot count). A nil path has length 0.
func (path *Path) N() int {
	if path == nil {
		return 0
	}
	return len(path.points)
}

// IsEmpty is a predicate: does this path have no knots?
func (path *Path) IsEmpty() bool {
	return path.N() == 0
}

// Z returns the position of knot i.
func (path *Path) Z(i int) Pair {
	return path.points[i]
}

// Height returns the surface height at knot i.
func (path *Path) Height(i int) float64 {
	return path.heights[i]
}

// Last returns the position of the final knot.
func (path *Path) Last() Pair {
	return path.points[len(path.points)-1]
}

// Points returns a copy of the knot positions.
func (path *Path) Points() []Pair {
	pts := make([]Pair, path.N())
	copy(pts, path.points)
	return pts
}

// Transformed returns a new path with every knot position mapped by m.
// Heights are kept.
func (path *Path) Transformed(m AT) *Path {
	p := &Path{
		points:  make([]Pair, path.N()),
		heights: make([]float64, path.N()),
	}
	for i, pt := range path.points {
		p.points[i] = m.Transform(pt)
	}
	copy(p.heights, path.heights)
	return p
}

// AsString returns a path as a (debugging) string, knots separated by "..".
//
//	(0,0)@0.1 .. (1,0)@0.3
func AsString(path *Path) string {
	var sb strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		pt := path.Z(i)
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g)@%.4g", pt.X(), pt.Y(), path.Height(i)))
	}
	return sb.String()
}
