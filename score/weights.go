package score

// Weights holds the tunable score constants for the matching pipeline.
// The zero value suppresses most matching; start from DefaultWeights.
type Weights struct {
	// Prefix scales prefix matches by how much of the field token the
	// query token covers.
	Prefix float64

	// Substring is the base score for contiguous substring containment
	// of the whole query in a field value.
	Substring float64

	// SubstringBoost is added to Substring in proportion to how much of
	// the field the query spans.
	SubstringBoost float64

	// FuzzyFloor is the minimum edit-distance similarity kept; weaker
	// fuzzy pairings score zero so unrelated short tokens do not match.
	FuzzyFloor float64
}

// DefaultWeights returns the calibrated default score constants.
func DefaultWeights() Weights {
	return Weights{
		Prefix:         0.8,
		Substring:      0.9,
		SubstringBoost: 0.05,
		FuzzyFloor:     0.6,
	}
}

// clamped returns a copy with every constant forced into [0, 1].
func (w Weights) clamped() Weights {
	w.Prefix = clamp01(w.Prefix)
	w.Substring = clamp01(w.Substring)
	w.SubstringBoost = clamp01(w.SubstringBoost)
	w.FuzzyFloor = clamp01(w.FuzzyFloor)
	return w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
