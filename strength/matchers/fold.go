package matchers

import "bytes"

type foldMatcher struct {
	s []byte
}

// Fold matches a substring case-insensitively. Offsets are reported
// against the original line; folding is ASCII-safe so byte offsets are
// stable.
func Fold(s string) Matcher {
	return &foldMatcher{
		s: bytes.ToLower([]byte(s)),
	}
}

func (m *foldMatcher) Match(line []byte) (bool, int, int) {
	start := bytes.Index(bytes.ToLower(line), m.s)
	if start == -1 {
		return false, 0, 0
	}

	end := start + len(m.s)

	return true, start, end
}
