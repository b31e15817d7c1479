package matchers

import "unicode/utf8"

type repeatMatcher struct {
	n int
}

// Repeat matches a run of the same rune repeated at least n times. The
// reported span covers the first n runes of the run.
func Repeat(n int) Matcher {
	return &repeatMatcher{
		n: n,
	}
}

func (m *repeatMatcher) Match(line []byte) (bool, int, int) {
	var (
		prev  rune
		start int
		count int
	)

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])

		if count > 0 && r == prev {
			count++
		} else {
			prev = r
			start = i
			count = 1
		}

		i += size

		if count == m.n {
			return true, start, i
		}
	}

	return false, 0, 0
}
