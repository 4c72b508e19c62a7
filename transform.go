package riemann

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows. Paths live in
// scene coordinates, i.e. the normalized domain scaled by a visualization
// factor; ATs map between the two.
type AT [9]float64

func (m *AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m *AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	var m AT
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale a point by factor s around the origin.
func Scaling(s float64) AT {
	m := Identity()
	m.set(0, 0, s)
	m.set(1, 1, s)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	var m AT
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// SceneToDomain returns the transform undoing a visualization scale factor.
// A zero factor is treated as 1.
func SceneToDomain(scale float64) AT {
	if scale == 0 {
		tracer().Debugf("scene scale is 0, using 1")
		scale = 1
	}
	return Scaling(1 / scale)
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one: first m, then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, sum)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(
		m.get(0, 0)*x+m.get(0, 1)*y+m.get(0, 2),
		m.get(1, 0)*x+m.get(1, 1)*y+m.get(1, 2),
	)
}
