/*
Package geodesic traces geodesics on the affect surface.

A trace starts at a point with unit velocity pointing towards a target and
integrates the geodesic equation

	ẍⁱ = −Γⁱⱼₖ ẋʲ ẋᵏ

with a classical fourth-order Runge-Kutta scheme of fixed step 1/steps.

Caveat: this is an initial-value trace, not a two-point boundary-value
solver. The target only fixes the initial direction; the trace will in
general not pass through it, and nothing guarantees a shortest path. A
shooting method correcting the initial direction would be needed for that.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geodesic

import (
	"errors"
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

// DefaultSteps is the default number of integration steps.
const DefaultSteps = 100

// DefaultScale is the default visualization size factor applied to the
// positions of a traced path.
const DefaultScale = 10.0

var (
	// ErrInvalidSteps indicates a step count below 1.
	ErrInvalidSteps = errors.New("geodesic needs at least one integration step")
	// ErrInvalidPoint indicates a start or target point containing NaN/Inf.
	ErrInvalidPoint = errors.New("geodesic endpoint must be finite")
)

// Config holds the settings of a trace.
type Config struct {
	Steps int     // number of RK4 steps, step width is 1/Steps
	Scale float64 // factor applied to positions of the resulting path, 0 means 1
	H     float64 // finite-difference step for the connection, 0 means metric.DefaultStep
}

// DefaultConfig returns the standard trace settings.
func DefaultConfig() Config {
	return Config{Steps: DefaultSteps, Scale: DefaultScale, H: metric.DefaultStep}
}

// state is a point in phase space: position and velocity.
type state struct {
	pos, vel r2.Vec
}

func (s state) add(d state, f float64) state {
	return state{
		pos: r2.Add(s.pos, r2.Scale(f, d.pos)),
		vel: r2.Add(s.vel, r2.Scale(f, d.vel)),
	}
}

// Solve traces a geodesic from start towards end, both in the normalized
// domain [-1,1]². The resulting path starts at start and holds one knot per
// integration step, positions scaled by cfg.Scale. The trace stops early,
// before the first position leaving the domain, so the path may hold fewer
// than cfg.Steps+1 knots.
//
// If start and end coincide, the initial velocity is zero and the path
// stays at start.
func Solve(conn christoffel.Provider, start, end riemann.Pair, p emotion.Params, cfg Config) (*riemann.Path, error) {
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, cfg.Steps)
	}
	if !start.IsFinite() || !end.IsFinite() {
		return nil, fmt.Errorf("%w: %v -> %v", ErrInvalidPoint, start, end)
	}
	if conn == nil {
		conn = christoffel.Direct{}
	}
	if cfg.H == 0 {
		cfg.H = metric.DefaultStep
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	toScene := riemann.Scaling(cfg.Scale)
	dir := (end - start).Unit()
	s := state{
		pos: r2.Vec{X: start.X(), Y: start.Y()},
		vel: r2.Vec{X: dir.X(), Y: dir.Y()},
	}
	f := func(s state) state {
		g := conn.Symbols(s.pos.X, s.pos.Y, p, cfg.H)
		v := [2]float64{s.vel.X, s.vel.Y}
		a := g.Contract(v, v)
		return state{pos: s.vel, vel: r2.Vec{X: a[0], Y: a[1]}}
	}
	dt := 1.0 / float64(cfg.Steps)
	path := riemann.Nullpath().Knot(toScene.Transform(start), emotion.Height(start.X(), start.Y(), p))
	for n := 0; n < cfg.Steps; n++ {
		s = stepRK4(f, s, dt)
		pos := riemann.P(s.pos.X, s.pos.Y)
		if !pos.InDomain() {
			tracer().Debugf("geodesic left the domain after %d steps at %v", n, pos)
			break
		}
		path.Knot(toScene.Transform(pos), emotion.Height(pos.X(), pos.Y(), p))
	}
	tracer().Infof("geodesic %v -> %v: %d knots", start, end, path.N())
	return path.End(), nil
}

// MustSolve is a helper which panics on invalid input.
func MustSolve(conn christoffel.Provider, start, end riemann.Pair, p emotion.Params, cfg Config) *riemann.Path {
	path, err := Solve(conn, start, end, p, cfg)
	if err != nil {
		panic(err)
	}
	return path
}

// stepRK4 performs one classical Runge-Kutta step of width dt for ṡ = f(s).
func stepRK4(f func(state) state, s state, dt float64) state {
	k1 := f(s)
	k2 := f(s.add(k1, dt/2))
	k3 := f(s.add(k2, dt/2))
	k4 := f(s.add(k3, dt))
	return state{
		pos: r2.Add(s.pos, r2.Scale(dt/6, sum4(k1.pos, k2.pos, k3.pos, k4.pos))),
		vel: r2.Add(s.vel, r2.Scale(dt/6, sum4(k1.vel, k2.vel, k3.vel, k4.vel))),
	}
}

// sum4 returns a + 2b + 2c + d.
func sum4(a, b, c, d r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X + 2*b.X + 2*c.X + d.X,
		Y: a.Y + 2*b.Y + 2*c.Y + d.Y,
	}
}
