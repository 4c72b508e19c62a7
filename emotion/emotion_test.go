package emotion

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var golden = Params{EP: 0.7, P: 0.3, V: 0.8, SC: 0.9, Acc: 0.5, Wp: 0.85, T: 0}

func TestGoldenFixture(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, y := golden.Base()
	v := All(x, y, golden)
	want := Vector{
		-0.16283281925402698, // happiness
		-0.07379847230104347, // sadness
		0.021902536890155495, // fear
		0.015944957227858745, // anger
		0.07289063076482417,  // worry
	}
	for _, k := range Kinds() {
		assert.InDelta(t, want[k], v.Of(k), 1e-12, "%s", k)
	}
	assert.InDelta(t, -0.05084656682839687, Height(x, y, golden), 1e-12)
}

func TestHappinessByHand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Δ = (0.3-0.7)/(1+0.49), w = 0.8·0.9·0.85
	want := math.Tanh(1.0 * 0.612 * (-0.4 / 1.49))
	assert.InDelta(t, want, Emotion(Happiness, 0.7, 0.3, golden), 1e-12)
}

func TestBoundedness(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Params{V: 1, SC: 0.5, Acc: 0, Wp: 0.5}
	for _, x := range []float64{-50, -1, -0.3, 0, 0.4, 1, 80} {
		for _, y := range []float64{-90, -1, 0, 0.2, 1, 70} {
			v := All(x, y, p)
			for _, k := range Kinds() {
				assert.LessOrEqual(t, math.Abs(v.Of(k)), 1.0)
			}
			_, mag := Dominant(v)
			for _, e := range v {
				assert.LessOrEqual(t, math.Abs(e), mag)
			}
		}
	}
}

func TestSignConventions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Params{V: 1, SC: 0.5, Acc: 0.5, Wp: 0.5}
	assert.Greater(t, Emotion(Happiness, 0, 0.5, p), 0.0)
	assert.Less(t, Emotion(Sadness, 0.5, 0, p), 0.0)
	for _, k := range []Kind{Sadness, Fear, Anger, Worry} {
		assert.Equal(t, 0.0, math.Abs(Emotion(k, 0, 0.5, p)), "%s must ignore gains", k)
	}
	assert.Greater(t, Emotion(Fear, 0.5, 0, p), 0.0)
	assert.Greater(t, Emotion(Anger, 0.5, 0, p), 0.0)
	assert.Greater(t, Emotion(Worry, 0.5, 0, p), 0.0)
}

func TestAngerUsesComplementaryPerspective(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Params{V: 1, SC: 1, Acc: 0, Wp: 1}
	assert.Equal(t, 0.0, Emotion(Anger, 0.8, 0.1, p))
	assert.Greater(t, Emotion(Anger, 0.8, 0.1, p.WithPerspective(0)), 0.0)
}

func TestTimeDecay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Params{V: 1, SC: 0.5, Acc: 0.2, Wp: 0.6}
	later := p
	later.T = 10
	for _, k := range Kinds() {
		now := math.Abs(Emotion(k, 0.9, -0.2, p))
		then := math.Abs(Emotion(k, 0.9, -0.2, later))
		assert.Less(t, then, now, "%s must decay over time", k)
	}
}

func TestFlatSurface(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Params{EP: 0.4, P: -0.2, V: 0, SC: 1, Acc: 1, Wp: 1}
	for _, x := range []float64{-1, 0, 0.5} {
		for _, y := range []float64{-0.5, 0.3, 1} {
			assert.Equal(t, 0.0, Height(x, y, p))
		}
	}
}

func TestDominant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k, mag := Dominant(Vector{0.1, -0.7, 0.3, 0.2, 0.0})
	assert.Equal(t, Sadness, k)
	assert.Equal(t, 0.7, mag)
	k, mag = Dominant(Vector{0.5, -0.5, 0.5, 0, 0})
	assert.Equal(t, Happiness, k, "first maximal entry wins")
	assert.Equal(t, 0.5, mag)
	k, _ = Dominant(Vector{0, 0, 0.4, -0.4, 0})
	assert.Equal(t, Fear, k)
	k, mag = Dominant(Vector{})
	assert.Equal(t, Happiness, k)
	assert.Equal(t, 0.0, mag)
}

func TestSeverityLabel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "content", SeverityLabel(Happiness, 0))
	assert.Equal(t, "pleased", SeverityLabel(Happiness, 0.2))
	assert.Equal(t, "sad", SeverityLabel(Sadness, -0.5))
	assert.Equal(t, "frightened", SeverityLabel(Fear, 0.79))
	assert.Equal(t, "enraged", SeverityLabel(Anger, 0.8))
	assert.Equal(t, "distraught", SeverityLabel(Worry, 1.0))
	assert.Equal(t, "distraught", SeverityLabel(Worry, 3.0))
	assert.Equal(t, Neutral, SeverityLabel(Kind(7), 0.9))
	assert.Equal(t, Neutral, SeverityLabel(Kind(-1), 0.9))
	assert.Equal(t, "neutral", Kind(5).String())
	assert.Equal(t, "worry", Worry.String())
}

func TestParamsValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	require.NoError(t, golden.Validate())
	bad := golden
	bad.SC = math.NaN()
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParams))
	assert.Contains(t, err.Error(), "SC")
	q := golden.At(0.1, 0.2)
	assert.Equal(t, 0.1, q.EP)
	assert.Equal(t, 0.7, golden.EP, "At must not change the receiver")
}

func TestUnknownKind(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, Emotion(Kind(9), 0.7, 0.3, golden))
	assert.Equal(t, 0.0, Vector{1, 1, 1, 1, 1}.Of(Kind(9)))
	assert.Equal(t, 0.0, Sensitivity(Kind(9)))
	assert.Equal(t, 0.3, Decay(Anger))
}
