/*
Package surface bundles the affect-surface geometry behind a single engine.

An Engine owns its configuration and its Christoffel cache. Rendering and
UI layers talk to the surface exclusively through an Engine; the engine
itself holds no path or parameter state. Every method is a point-in-time
query, and all methods are safe for concurrent use.

	e := surface.New(surface.WithScale(5))
	path, err := e.Geodesic(riemann.P(-0.5, 0), riemann.P(0.5, 0.5), params, 0)
	...
	samples, err := e.ParallelTransport(r2.Vec{X: 1}, path, params)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package surface

import (
	"runtime"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/christoffel"
	"github.com/npillmayer/riemann/curvature"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/riemann/geodesic"
	"github.com/npillmayer/riemann/metric"
	"github.com/npillmayer/riemann/transport"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r2"
)

// tracer writes to trace with key 'surface'
func tracer() tracing.Trace {
	return tracing.Select("surface")
}

// DefaultCacheCapacity is the default number of positions the Christoffel
// cache holds.
const DefaultCacheCapacity = 1 << 16

// FiberSamples is the number of perspective weights sampled by FiberSample.
const FiberSamples = 21

// Engine answers geometry queries about the affect surface.
type Engine struct {
	h         float64 // finite-difference step
	scale     float64 // visualization size factor
	steps     int     // default geodesic steps
	fiberSpan float64 // height offset per unit of perspective weight
	workers   int     // goroutines for grid sampling
	cacheCap  int
	cache     *christoffel.Cache
}

// Option configures an Engine.
type Option func(*Engine)

// WithStep sets the finite-difference step h. Non-positive values are ignored.
func WithStep(h float64) Option {
	return func(e *Engine) {
		if h > 0 {
			e.h = h
		}
	}
}

// WithScale sets the visualization size factor. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(e *Engine) {
		if s > 0 {
			e.scale = s
		}
	}
}

// WithSteps sets the default number of geodesic integration steps.
// Values below 1 are ignored.
func WithSteps(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.steps = n
		}
	}
}

// WithCacheCapacity bounds the Christoffel cache. A capacity of 0 makes the
// cache unbounded, a negative capacity disables caching.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) {
		e.cacheCap = n
	}
}

// WithWorkers sets the number of goroutines used for grid sampling.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// WithFiberSpan sets the height offset per unit of perspective weight used
// by FiberSample.
func WithFiberSpan(span float64) Option {
	return func(e *Engine) {
		e.fiberSpan = span
	}
}

// New creates an engine. Without options, it uses h = metric.DefaultStep,
// scale = geodesic.DefaultScale, geodesic.DefaultSteps steps, a cache of
// DefaultCacheCapacity positions, fiber span 1 and one worker per CPU.
func New(opts ...Option) *Engine {
	e := &Engine{
		h:         metric.DefaultStep,
		scale:     geodesic.DefaultScale,
		steps:     geodesic.DefaultSteps,
		fiberSpan: 1.0,
		workers:   runtime.GOMAXPROCS(0),
		cacheCap:  DefaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheCap >= 0 {
		e.cache = christoffel.NewCache(e.cacheCap)
	}
	tracer().Debugf("new surface engine: h=%g scale=%g steps=%d cache=%d workers=%d",
		e.h, e.scale, e.steps, e.cacheCap, e.workers)
	return e
}

// Step returns the finite-difference step.
func (e *Engine) Step() float64 {
	if e.h <= 0 { // zero Engine
		return metric.DefaultStep
	}
	return e.h
}

// Scale returns the visualization size factor.
func (e *Engine) Scale() float64 { return e.scale }

// connection returns the engine's source of Christoffel symbols.
func (e *Engine) connection() christoffel.Provider {
	if e.cache == nil {
		return christoffel.Direct{}
	}
	return e.cache
}

// CacheLen returns the number of cached Christoffel positions.
func (e *Engine) CacheLen() int {
	return e.cache.Len()
}

// ResetCache empties the Christoffel cache.
func (e *Engine) ResetCache() {
	e.cache.Reset()
}

// AllEmotions returns the five emotion intensities at (x, y).
func (e *Engine) AllEmotions(x, y float64, p emotion.Params) emotion.Vector {
	return emotion.All(x, y, p)
}

// DominantEmotion returns the kind and absolute intensity of the strongest
// emotion in v. Ties go to the first kind.
func (e *Engine) DominantEmotion(v emotion.Vector) (emotion.Kind, float64) {
	return emotion.Dominant(v)
}

// SeverityLabel names the intensity tier of magnitude for kind k.
func (e *Engine) SeverityLabel(k emotion.Kind, magnitude float64) string {
	return emotion.SeverityLabel(k, magnitude)
}

// Height returns the surface height at (x, y).
func (e *Engine) Height(x, y float64, p emotion.Params) float64 {
	return emotion.Height(x, y, p)
}

// VectorField returns the unit direction of steepest descent at (x, y), or
// the zero vector where the surface is level.
func (e *Engine) VectorField(x, y float64, p emotion.Params) (float64, float64) {
	return metric.VectorField(x, y, p, e.Step())
}

// Christoffel returns Γⁱⱼₖ at (x, y), for i, j, k ∈ {0,1}.
func (e *Engine) Christoffel(i, j, k int, x, y float64, p emotion.Params) float64 {
	return christoffel.Symbol(e.connection(), i, j, k, x, y, p, e.Step())
}

// Geodesic traces a geodesic from start towards end (normalized coordinates)
// with the given number of steps; 0 selects the engine's default, negative
// counts fail with geodesic.ErrInvalidSteps. Knot
// positions of the resulting path are in scene coordinates.
func (e *Engine) Geodesic(start, end riemann.Pair, p emotion.Params, steps int) (*riemann.Path, error) {
	if steps == 0 {
		steps = e.steps
	}
	if steps == 0 {
		steps = geodesic.DefaultSteps
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := geodesic.Config{Steps: steps, Scale: e.scale, H: e.Step()}
	return geodesic.Solve(e.connection(), start, end, p, cfg)
}

// ParallelTransport carries v0 along path, which is expected in scene
// coordinates (as returned by Geodesic). Without a path it fails with
// riemann.ErrNoPath.
func (e *Engine) ParallelTransport(v0 r2.Vec, path *riemann.Path, p emotion.Params) ([]transport.Sample, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return transport.Transport(e.connection(), v0, path, p, transport.Config{Scale: e.scale, H: e.Step()})
}

// GaussianCurvature returns the Gaussian curvature at (x, y).
func (e *Engine) GaussianCurvature(x, y float64, p emotion.Params) float64 {
	return curvature.Gaussian(x, y, p, e.Step())
}

// ConnectionCurvature returns the holonomy curvature estimate at (x, y), for
// a loop of side h.
func (e *Engine) ConnectionCurvature(x, y float64, p emotion.Params) float64 {
	return curvature.Connection(e.connection(), x, y, p, e.Step())
}

// FiberSample sweeps the perspective weight from 0 to 1 in FiberSamples
// steps over the base point (normalized coordinates). Every knot sits at the
// scaled base position; its height is the surface height for that weight,
// lifted by weight·span.
func (e *Engine) FiberSample(base riemann.Pair, p emotion.Params) *riemann.Path {
	pos := riemann.Scaling(e.scale).Transform(base)
	fiber := riemann.Nullpath()
	for i := 0; i < FiberSamples; i++ {
		w := float64(i) / float64(FiberSamples-1)
		z := emotion.Height(base.X(), base.Y(), p.WithPerspective(w))
		fiber.Knot(pos, z+w*e.fiberSpan)
	}
	return fiber.End()
}
