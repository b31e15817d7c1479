package scanners

import "github.com/pass-meter/pass-meter/strength"

type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

type Finding struct {
	Line       Line
	Evaluation strength.Evaluation

	// Reasons lists the policy rules the candidate violated, in the
	// order they were checked.
	Reasons []string
}

func (f Finding) Candidate() string {
	return string(f.Line.Content)
}
