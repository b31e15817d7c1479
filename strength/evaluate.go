package strength

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pass-meter/pass-meter/strength/matchers"
)

const (
	suggestLonger  = "Use 12+ characters"
	suggestUpper   = "Add uppercase letters (A–Z)"
	suggestLower   = "Add lowercase letters (a–z)"
	suggestDigit   = "Add numbers (0–9)"
	suggestSpecial = "Add special characters (!@#...)"
	suggestRepeat  = "Avoid repeating the same character 3+ times"
	suggestCommon  = "Avoid common patterns/words"
)

var commonPatterns = matchers.Multi(
	matchers.Fold("password"),
	matchers.Fold("qwerty"),
	matchers.Fold("abc"),
	matchers.Fold("1234"),
)

var repeatedRun = matchers.Repeat(3)

// Evaluate scores a candidate password. It is a total function: any
// string is accepted, there is no error path, and the same input always
// produces the same result.
func Evaluate(password string) Evaluation {
	charCount := utf8.RuneCountInString(password)

	criteria := Criteria{
		Length: charCount >= 8,
	}

	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			criteria.Upper = true
		case r >= 'a' && r <= 'z':
			criteria.Lower = true
		case r >= '0' && r <= '9':
			criteria.Digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			criteria.Special = true
		}
	}

	score := criteria.Count()

	charset := 0
	if criteria.Lower {
		charset += lowerSize
	}
	if criteria.Upper {
		charset += upperSize
	}
	if criteria.Digit {
		charset += digitSize
	}
	if criteria.Special {
		charset += specialSize
	}
	if charset == 0 {
		charset = fallbackSize
	}

	entropyBits := float64(charCount) * math.Log2(float64(charset))

	return Evaluation{
		Criteria:    criteria,
		Score:       score,
		Label:       LabelForScore(score),
		EntropyBits: entropyBits,
		Suggestions: suggestions(password, charCount, criteria),
	}
}

// suggestions appends each applicable hint in priority order. The rules
// are independent; none short-circuits another.
func suggestions(password string, charCount int, criteria Criteria) []string {
	var result []string

	if charCount < 12 {
		result = append(result, suggestLonger)
	}
	if !criteria.Upper {
		result = append(result, suggestUpper)
	}
	if !criteria.Lower {
		result = append(result, suggestLower)
	}
	if !criteria.Digit {
		result = append(result, suggestDigit)
	}
	if !criteria.Special {
		result = append(result, suggestSpecial)
	}

	line := []byte(password)

	if match, _, _ := repeatedRun.Match(line); match {
		result = append(result, suggestRepeat)
	}
	if match, _, _ := commonPatterns.Match(line); match {
		result = append(result, suggestCommon)
	}

	return result
}
