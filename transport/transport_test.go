package transport

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/christoffel"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/riemann/geodesic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

var curved = emotion.Params{EP: 0.2, P: 0.8, V: 1, SC: 1, Acc: 1, Wp: 0.9}

func horizontal(n int, scale float64) *riemann.Path {
	path := riemann.Nullpath()
	for i := 0; i < n; i++ {
		x := -0.5 + float64(i)*0.1
		path.Knot(riemann.P(x, 0.5).Scaled(scale), 0)
	}
	return path.End()
}

func TestLengthInvariant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 1; n <= 6; n++ {
		samples, err := Transport(nil, r2.Vec{X: 0, Y: 1}, horizontal(n, 10), curved, Config{Scale: 10})
		require.NoError(t, err)
		assert.Len(t, samples, n-1)
	}
}

func TestNoPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Transport(nil, r2.Vec{X: 1}, nil, curved, Config{})
	assert.True(t, errors.Is(err, riemann.ErrNoPath))
	_, err = Transport(nil, r2.Vec{X: 1}, riemann.Nullpath(), curved, Config{})
	assert.True(t, errors.Is(err, riemann.ErrNoPath))
	assert.Equal(t, r2.Vec{X: 1}, Final(nil, r2.Vec{X: 1}))
}

func TestFlatSurfaceKeepsVector(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	flat := curved
	flat.V = 0
	v0 := r2.Vec{X: 0.3, Y: -0.8}
	samples, err := Transport(nil, v0, horizontal(6, 10), flat, Config{Scale: 10})
	require.NoError(t, err)
	for _, s := range samples {
		assert.Equal(t, v0, s.Vec)
	}
}

func TestSamplePositions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := horizontal(4, 10)
	samples, err := Transport(nil, r2.Vec{Y: 1}, path, curved, Config{Scale: 10})
	require.NoError(t, err)
	for n, s := range samples {
		assert.Equal(t, path.Z(n), s.Pos)
	}
	assert.NotEqual(t, r2.Vec{Y: 1}, Final(samples, r2.Vec{Y: 1}), "curved surface must turn the vector")
}

func TestScaleIndependence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, err := Transport(nil, r2.Vec{Y: 1}, horizontal(6, 10), curved, Config{Scale: 10})
	require.NoError(t, err)
	b, err := Transport(nil, r2.Vec{Y: 1}, horizontal(6, 1), curved, Config{Scale: 1})
	require.NoError(t, err)
	require.Equal(t, len(a), len(b))
	for n := range a {
		assert.InDelta(t, a[n].Vec.X, b[n].Vec.X, 1e-9)
		assert.InDelta(t, a[n].Vec.Y, b[n].Vec.Y, 1e-9)
	}
}

// Transporting the initial velocity along a geodesic yields its tangent.
func TestTransportAlongGeodesicKeepsTangent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := geodesic.DefaultConfig()
	start, end := riemann.P(0.6, -0.2), riemann.P(-0.6, 0.9)
	path := geodesic.MustSolve(nil, start, end, curved, cfg)
	dir := (end - start).Unit()
	samples, err := Transport(nil, r2.Vec{X: dir.X(), Y: dir.Y()}, path, curved, Config{Scale: cfg.Scale})
	require.NoError(t, err)
	require.Len(t, samples, path.N()-1)
	final := Final(samples, r2.Vec{})
	last := path.Z(path.N()-1) - path.Z(path.N()-2)
	turn := math.Atan2(final.Y, final.X)
	assert.InDelta(t, math.Atan2(last.Y(), last.X()), turn, 5e-3)
	assert.Greater(t, math.Abs(turn-math.Atan2(dir.Y(), dir.X())), 0.02)
}

func TestCacheTransparency(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cache := christoffel.NewCache(16)
	path := horizontal(6, 10)
	a, err := Transport(nil, r2.Vec{Y: 1}, path, curved, Config{Scale: 10})
	require.NoError(t, err)
	b, err := Transport(cache, r2.Vec{Y: 1}, path, curved, Config{Scale: 10})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
