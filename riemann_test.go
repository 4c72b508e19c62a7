package riemann

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(1e300))
}

func TestQuantize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, int64(700), Quantize(0.7))
	assert.Equal(t, int64(-1), Quantize(-0.0005)) // half away from zero
	assert.Equal(t, int64(123), Quantize(0.12349))
	assert.InDelta(t, 0.123, Dequantize(Quantize(0.12349)), 1e-15)
	p := P(0.70004, -0.29996).Snapped()
	assert.Equal(t, Quantize(0.7), Quantize(p.X()))
	assert.Equal(t, Quantize(-0.3), Quantize(p.Y()))
}

func TestQuantizeFarOutOfDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, MaxQuantized, Quantize(1e20))
	assert.Equal(t, -MaxQuantized, Quantize(-1e20))
	assert.Equal(t, MaxQuantized, Quantize(math.Inf(1)))
	assert.Equal(t, int64(0), Quantize(math.NaN()))
	assert.Equal(t, int64(9e15), Quantize(9e12), "inside the bound nothing is clamped")
	far := P(1e20, -1e20).Snapped()
	assert.True(t, IsFinite(far.X()) && IsFinite(far.Y()))
	assert.Greater(t, far.X(), 0.0)
	assert.Less(t, far.Y(), 0.0)
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.InDelta(t, 5.0, P(3, 4).Len(), 1e-12)
	u := P(3, 4).Unit()
	assert.InDelta(t, 0.6, u.X(), 1e-12)
	assert.InDelta(t, 0.8, u.Y(), 1e-12)
	assert.Equal(t, Origin, Origin.Unit(), "zero vector normalizes to zero")
	assert.True(t, P(1, -1).InDomain())
	assert.False(t, P(1.0001, 0).InDomain())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(math.Pi).Shifted(P(1, 0)).Equal(Origin) {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestSceneTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Scaling(10).Transform(P(0.7, -0.3))
	assert.True(t, p.Equal(P(7, -3)), "scaled = %v", p)
	back := SceneToDomain(10).Transform(p)
	assert.True(t, back.Equal(P(0.7, -0.3)), "unscaled = %v", back)
	assert.Equal(t, Identity(), SceneToDomain(0))
	m := Scaling(2).Combine(Translation(P(1, 1)))
	assert.True(t, m.Transform(P(1, 2)).Equal(P(3, 5)))
}

func TestPathBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(P(0, 0), 0.5).Knot(P(1, 0), 0.25).End()
	assert.Equal(t, 2, path.N())
	assert.Equal(t, P(1, 0), path.Last())
	assert.Equal(t, 0.25, path.Height(1))
	assert.Equal(t, "(0,0)@0.5 .. (1,0)@0.25", AsString(path))
	pts := path.Points()
	pts[0] = P(9, 9)
	assert.Equal(t, P(0, 0), path.Z(0), "Points must return a copy")
	scaled := path.Transformed(Scaling(10))
	assert.Equal(t, P(10, 0), scaled.Z(1))
	assert.Equal(t, P(1, 0), path.Z(1), "Transformed must not alter the receiver")
	var none *Path
	assert.True(t, none.IsEmpty())
	assert.True(t, errors.Is(ErrNoPath, ErrNoPath))
}
