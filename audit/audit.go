package audit

import (
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pass-meter/pass-meter/policy"
	"github.com/pass-meter/pass-meter/scanners"
	"github.com/pass-meter/pass-meter/strength"
	"github.com/pass-meter/pass-meter/strength/matchers"
)

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

type FindingHandlerFunc func(lager.Logger, scanners.Finding) error

type Auditor interface {
	Audit(lager.Logger, Scanner, FindingHandlerFunc) error
	Flag(candidate string) (strength.Evaluation, []string)
}

type auditor struct {
	policy *policy.Policy
	banned matchers.Matcher
}

func NewAuditor(p *policy.Policy) Auditor {
	var banned matchers.Matcher
	if len(p.BannedWords) > 0 {
		ms := make([]matchers.Matcher, len(p.BannedWords))
		for i, word := range p.BannedWords {
			ms[i] = matchers.Fold(word)
		}
		banned = matchers.Multi(ms...)
	}

	return &auditor{
		policy: p,
		banned: banned,
	}
}

// Audit walks candidate passwords one per line, skipping blank lines,
// and hands every policy violation to handleFinding. Handler errors do
// not stop the walk; they are collected and returned together.
func (a *auditor) Audit(
	logger lager.Logger,
	scanner Scanner,
	handleFinding FindingHandlerFunc,
) error {
	logger = logger.Session("audit")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line(logger)
		if len(line.Content) == 0 {
			continue
		}

		evaluation, reasons := a.Flag(string(line.Content))
		if len(reasons) == 0 {
			continue
		}

		finding := scanners.Finding{
			Line:       *line,
			Evaluation: evaluation,
			Reasons:    reasons,
		}

		err := handleFinding(logger, finding)
		if err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scan-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}

// Flag evaluates a single candidate and reports which policy rules it
// violates. Reasons come back in a fixed order: score, entropy, banned
// word.
func (a *auditor) Flag(candidate string) (strength.Evaluation, []string) {
	evaluation := strength.Evaluate(candidate)

	var reasons []string

	if evaluation.Score < a.policy.MinScore {
		reasons = append(reasons, fmt.Sprintf("score %d is below the minimum of %d", evaluation.Score, a.policy.MinScore))
	}

	if evaluation.EntropyBits < a.policy.MinEntropyBits {
		reasons = append(reasons, fmt.Sprintf("entropy estimate %.1f bits is below the minimum of %.1f", evaluation.EntropyBits, a.policy.MinEntropyBits))
	}

	if a.banned != nil {
		if match, _, _ := a.banned.Match([]byte(candidate)); match {
			reasons = append(reasons, "contains a banned word")
		}
	}

	return evaluation, reasons
}
