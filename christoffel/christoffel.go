/*
Package christoffel computes the connection coefficients of the affect surface.

Christoffel symbols of the second kind are derived from the metric g of
package metric and its two coordinate partials:

	Γⁱⱼₖ = ½ Σₗ gⁱˡ (∂ⱼ g_lk + ∂ₖ g_lj − ∂ₗ g_jk)

The formula is symmetric in j and k, hence Γⁱⱼₖ = Γⁱₖⱼ holds exactly.

Positions are snapped to a fixed-point grid of resolution riemann.Quantum
before the symbols are evaluated. This makes memoization (type Cache) a pure
optimization: a cached value is always the value a fresh computation at the
same query would produce.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package christoffel

import (
	"fmt"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/riemann/metric"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// Symbols holds all Christoffel symbols Γⁱⱼₖ at a point, indexed [i][j][k].
type Symbols [2][2][2]float64

// At returns Γⁱⱼₖ.
func (s Symbols) At(i, j, k int) float64 {
	return s[i][j][k]
}

// Contract returns the vector −Γⁱⱼₖ·uʲ·vᵏ, summed over j and k, for both
// output indices i. This is the right-hand side of the geodesic equation
// (u = v = velocity) and of the transport equation (u = tangent, v = vector).
func (s Symbols) Contract(u, v [2]float64) [2]float64 {
	var r [2]float64
	for i := 0; i < 2; i++ {
		var sum float64
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				sum += s[i][j][k] * u[j] * v[k]
			}
		}
		r[i] = -sum
	}
	return r
}

func (s Symbols) String() string {
	return fmt.Sprintf("Γ⁰=[%.4g %.4g %.4g] Γ¹=[%.4g %.4g %.4g]",
		s[0][0][0], s[0][0][1], s[0][1][1], s[1][0][0], s[1][0][1], s[1][1][1])
}

// Provider is the interface of sources of Christoffel symbols. Both *Cache
// and Direct satisfy it.
type Provider interface {
	Symbols(x, y float64, p emotion.Params, h float64) Symbols
}

// Direct evaluates symbols without memoization.
type Direct struct{}

// Symbols snaps (x, y) to the quantization grid and computes all symbols there.
func (Direct) Symbols(x, y float64, p emotion.Params, h float64) Symbols {
	pt := riemann.P(x, y).Snapped()
	return Compute(pt.X(), pt.Y(), p, h)
}

// Compute evaluates all Christoffel symbols exactly at (x, y), without
// snapping to the quantization grid.
func Compute(x, y float64, p emotion.Params, h float64) Symbols {
	ginv := metric.Invert(metric.At(x, y, p, h))
	dg := [2]metric.Tensor{
		metric.Derivative(x, y, p, h, metric.DirX),
		metric.Derivative(x, y, p, h, metric.DirY),
	}
	var s Symbols
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				var sum float64
				for l := 0; l < 2; l++ {
					sum += ginv.At(i, l) * (dg[j].At(l, k) + dg[k].At(l, j) - dg[l].At(j, k))
				}
				s[i][j][k] = 0.5 * sum
			}
		}
	}
	return s
}

// Symbol returns a single Christoffel symbol Γⁱⱼₖ at (x, y), taken from
// provider conn. A nil conn evaluates directly. Indices outside {0,1} panic.
func Symbol(conn Provider, i, j, k int, x, y float64, p emotion.Params, h float64) float64 {
	if conn == nil {
		conn = Direct{}
	}
	return conn.Symbols(x, y, p, h).At(i, j, k)
}
