package emotion

import "math"

// Neutral is the label for unknown emotion kinds.
const Neutral = "neutral"

// severityBands holds five labels per kind, in increasing intensity.
var severityBands = [NumKinds][5]string{
	{"content", "pleased", "happy", "joyful", "elated"},
	{"wistful", "down", "sad", "sorrowful", "despairing"},
	{"uneasy", "nervous", "afraid", "frightened", "terrified"},
	{"irritated", "annoyed", "angry", "furious", "enraged"},
	{"pensive", "concerned", "worried", "anxious", "distraught"},
}

// SeverityLabel names the intensity tier of |magnitude| for kind k.
// Tiers are [0,0.2), [0.2,0.4), [0.4,0.6), [0.6,0.8) and [0.8,1]; larger
// magnitudes stay in the top tier. Unknown kinds yield Neutral.
func SeverityLabel(k Kind, magnitude float64) string {
	if !k.IsValid() {
		return Neutral
	}
	return severityBands[k][tier(magnitude)]
}

func tier(magnitude float64) int {
	m := math.Abs(magnitude)
	switch {
	case m < 0.2:
		return 0
	case m < 0.4:
		return 1
	case m < 0.6:
		return 2
	case m < 0.8:
		return 3
	}
	return 4
}
