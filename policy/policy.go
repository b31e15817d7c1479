package policy

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"
)

// Policy holds the thresholds a candidate must meet during an audit.
// Fields carry both go-flags and yaml tags so the same struct backs
// command-line overrides and policy files.
type Policy struct {
	MinScore       int      `long:"min-score" description:"minimum acceptable score (0-5)" default:"4" yaml:"min_score"`
	MinEntropyBits float64  `long:"min-entropy-bits" description:"minimum acceptable entropy estimate in bits" default:"50" yaml:"min_entropy_bits"`
	BannedWords    []string `long:"banned-word" description:"additional words to flag, matched case-insensitively" value-name:"WORD" yaml:"banned_words"`
}

func Default() *Policy {
	return &Policy{
		MinScore:       4,
		MinEntropyBits: 50,
	}
}

// Load parses a yaml policy over the defaults, so a file only needs to
// name the fields it changes.
func Load(bs []byte) (*Policy, error) {
	p := Default()

	err := yaml.Unmarshal(bs, p)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Policy) Validate() error {
	if p.MinScore < 0 || p.MinScore > 5 {
		return fmt.Errorf("min_score must be between 0 and 5, got %d", p.MinScore)
	}

	if p.MinEntropyBits < 0 {
		return fmt.Errorf("min_entropy_bits must not be negative, got %g", p.MinEntropyBits)
	}

	return nil
}
