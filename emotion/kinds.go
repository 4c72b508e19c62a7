package emotion

// Kind identifies one of the five emotions. The iota order is the iteration
// order used everywhere, including tie-breaking in Dominant.
type Kind int

const (
	Happiness Kind = iota
	Sadness
	Fear
	Anger
	Worry
	NumKinds = 5
)

var kindNames = [NumKinds]string{"happiness", "sadness", "fear", "anger", "worry"}

// Kinds lists all emotion kinds in iteration order.
func Kinds() []Kind {
	return []Kind{Happiness, Sadness, Fear, Anger, Worry}
}

// IsValid is a predicate: is k one of the five emotion kinds?
func (k Kind) IsValid() bool {
	return k >= Happiness && k < NumKinds
}

func (k Kind) String() string {
	if !k.IsValid() {
		return "neutral"
	}
	return kindNames[k]
}

// Sensitivity constants κ, indexed by Kind.
var kappa = [NumKinds]float64{
	1.0, // happiness
	0.9, // sadness
	1.2, // fear
	1.1, // anger
	0.8, // worry
}

// Decay rates λ for exp(-λ·T), indexed by Kind. Anger burns out fastest,
// sadness lingers.
var lambda = [NumKinds]float64{
	0.10, // happiness
	0.05, // sadness
	0.20, // fear
	0.30, // anger
	0.15, // worry
}

// Sensitivity returns κ for an emotion kind, 0 for unknown kinds.
func Sensitivity(k Kind) float64 {
	if !k.IsValid() {
		return 0
	}
	return kappa[k]
}

// Decay returns λ for an emotion kind, 0 for unknown kinds.
func Decay(k Kind) float64 {
	if !k.IsValid() {
		return 0
	}
	return lambda[k]
}

// Vector holds the five emotion intensities, indexed by Kind.
type Vector [NumKinds]float64

// Of returns the intensity of kind k, 0 for unknown kinds.
func (v Vector) Of(k Kind) float64 {
	if !k.IsValid() {
		return 0
	}
	return v[k]
}
