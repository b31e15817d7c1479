package strength

// SpecialCharacters is the set of characters counted by the special
// criterion. 33 ASCII printable punctuation characters, space included.
// Changing its membership changes both the criterion and the entropy
// estimate, so it must stay in sync with specialSize.
const SpecialCharacters = " !\"#$%&'()*+,-./:;<=>?@[\\]^_" + "`" + "{|}~"

const (
	lowerSize   = 26
	upperSize   = 26
	digitSize   = 10
	specialSize = len(SpecialCharacters)

	// fallbackSize is used when no character class matched at all
	// (e.g. whitespace-only or non-ASCII input) so that the entropy
	// estimate never takes log2(0).
	fallbackSize = lowerSize
)
