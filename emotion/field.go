package emotion

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// HeightScale is the factor applied to the κ-weighted emotion average.
const HeightScale = 2.0

// heightEpsilon keeps the weight sum of Height away from zero.
const heightEpsilon = 1e-6

// discrepancy computes Δ for kind k at expectation x and perception y.
// The difference is taken relative to the salience 1+x² of the expectation.
// Happiness sees the signed difference, all other emotions only the part
// where perception falls short of expectation.
func discrepancy(k Kind, x, y float64) float64 {
	salience := 1 + x*x
	if k == Happiness {
		return (y - x) / salience
	}
	return math.Max(0, x-y) / salience
}

// weight combines attachment, confidence, acceptance and perspective for kind k.
// Anger looks at the complementary perspective 1−Wp.
func weight(k Kind, p Params) float64 {
	switch k {
	case Happiness:
		return p.V * p.SC * p.Wp
	case Sadness:
		return p.V * p.SC * p.Acc * p.Wp
	case Fear:
		return p.V * (1 - p.SC) * p.Wp
	case Anger:
		return p.V * p.SC * (1 - p.Acc) * (1 - p.Wp)
	case Worry:
		return p.V * (1 - p.Acc) * p.Wp
	}
	return 0
}

// Emotion returns the intensity of emotion k at plane position (x, y), with
// x taking the role of the expectation and y the role of the perception.
// Values lie in [-1,1]; sadness is reported negated. Unknown kinds yield 0.
//
// All inputs must be finite; NaN or ±Inf give undefined results.
func Emotion(k Kind, x, y float64, p Params) float64 {
	if !k.IsValid() {
		return 0
	}
	e := math.Tanh(kappa[k] * weight(k, p) * discrepancy(k, x, y) * math.Exp(-lambda[k]*p.T))
	if k == Sadness {
		return -e
	}
	return e
}

// All returns all five emotion intensities at (x, y).
func All(x, y float64, p Params) Vector {
	var v Vector
	for _, k := range Kinds() {
		v[k] = Emotion(k, x, y, p)
	}
	return v
}

// Height is the surface height at (x, y): the κ-weighted average of all
// emotion intensities, scaled by HeightScale.
func Height(x, y float64, p Params) float64 {
	v := All(x, y, p)
	return HeightScale * floats.Dot(kappa[:], v[:]) / (floats.Sum(kappa[:]) + heightEpsilon)
}

// Dominant returns the emotion with the largest absolute intensity together
// with that absolute value. If several emotions share the maximum, the first
// one in Kind order wins.
func Dominant(v Vector) (Kind, float64) {
	var mag [NumKinds]float64
	for i, e := range v {
		mag[i] = math.Abs(e)
	}
	i := floats.MaxIdx(mag[:])
	return Kind(i), mag[i]
}
