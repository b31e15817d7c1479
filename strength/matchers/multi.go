package matchers

func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

type multi struct {
	matchers []Matcher
}

func (m *multi) Match(line []byte) (bool, int, int) {
	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(line); match {
			return true, start, end
		}
	}

	return false, 0, 0
}
