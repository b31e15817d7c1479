package strength

// Criteria holds the five independent checks made against a candidate
// password. Each is computed on its own; none depends on another.
type Criteria struct {
	Length  bool
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

// Count returns the number of satisfied criteria, 0 through 5.
func (c Criteria) Count() int {
	count := 0
	for _, ok := range []bool{c.Length, c.Upper, c.Lower, c.Digit, c.Special} {
		if ok {
			count++
		}
	}

	return count
}

type Label int

const (
	Weak Label = iota
	Moderate
	Strong
	VeryStrong
)

func (l Label) String() string {
	switch l {
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	}

	return "Unknown"
}

// LabelForScore maps a score in 0..5 to its strength tier.
func LabelForScore(score int) Label {
	switch {
	case score <= 2:
		return Weak
	case score == 3:
		return Moderate
	case score == 4:
		return Strong
	}

	return VeryStrong
}

// Evaluation is the result of evaluating one candidate password. It is
// built fresh on every call and never mutated afterwards.
type Evaluation struct {
	Criteria    Criteria
	Score       int
	Label       Label
	EntropyBits float64
	Suggestions []string
}
