/*
Package transport parallel-transports tangent vectors along surface paths.

For every segment of a path, the carried vector V changes by

	dVⁱ = −Γⁱⱼₖ tʲ Vᵏ

with t the unit tangent of the segment and Γ evaluated at the segment's
start. V is advanced by a single explicit Euler step, V += dV·L, where L is
the segment length in the normalized domain. This first-order update is
deliberately different from the fourth-order scheme used for geodesics:
transport error accumulates linearly in the segment length.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package transport

import (
	"fmt"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/christoffel"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/riemann/metric"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r2"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// Sample is a transported vector together with the (scene) position of the
// segment start it belongs to.
type Sample struct {
	Pos riemann.Pair
	Vec r2.Vec
}

func (s Sample) String() string {
	return fmt.Sprintf("%v→(%.4g,%.4g)", s.Pos, s.Vec.X, s.Vec.Y)
}

// Config holds the settings of a transport run.
type Config struct {
	Scale float64 // visualization factor of the path positions, 0 means 1
	H     float64 // finite-difference step for the connection, 0 means metric.DefaultStep
}

// Transport carries v0 along path. The path's positions are expected in scene
// coordinates, i.e. scaled by cfg.Scale; they are scaled back to the
// normalized domain before evaluating the connection.
//
// The result holds one sample per segment, i.e. path.N()−1 entries. Sample n
// records the vector after crossing segment n, at the position of the
// segment's first knot. The last sample thus holds the final vector.
//
// A nil or empty path is a precondition violation and yields ErrNoPath.
// Zero-length segments do not change the vector.
func Transport(conn christoffel.Provider, v0 r2.Vec, path *riemann.Path, p emotion.Params, cfg Config) ([]Sample, error) {
	if path.IsEmpty() {
		tracer().Errorf("parallel transport requested without a path")
		return nil, riemann.ErrNoPath
	}
	if conn == nil {
		conn = christoffel.Direct{}
	}
	if cfg.H == 0 {
		cfg.H = metric.DefaultStep
	}
	toDomain := riemann.SceneToDomain(cfg.Scale)
	samples := make([]Sample, 0, path.N()-1)
	v := v0
	for n := 0; n+1 < path.N(); n++ {
		from := toDomain.Transform(path.Z(n))
		to := toDomain.Transform(path.Z(n + 1))
		seg := to - from
		length := seg.Len()
		t := seg.Unit()
		g := conn.Symbols(from.X(), from.Y(), p, cfg.H)
		dv := g.Contract([2]float64{t.X(), t.Y()}, [2]float64{v.X, v.Y})
		v = r2.Add(v, r2.Scale(length, r2.Vec{X: dv[0], Y: dv[1]}))
		samples = append(samples, Sample{Pos: path.Z(n), Vec: v})
	}
	tracer().Debugf("transported %v along %d segments to %v", v0, len(samples), v)
	return samples, nil
}

// Final returns the vector of the last sample, or v0 if there are no samples.
func Final(samples []Sample, v0 r2.Vec) r2.Vec {
	if len(samples) == 0 {
		return v0
	}
	return samples[len(samples)-1].Vec
}
