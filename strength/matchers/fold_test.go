package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pass-meter/pass-meter/strength/matchers"
)

var _ = Describe("Fold", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.Fold("qwerty")
	})

	It("matches regardless of case", func() {
		matched, start, end := matcher.Match([]byte("xxQWErtyxx"))
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(2))
		Expect(end).To(Equal(8))
	})

	It("matches an exact lowercase occurrence", func() {
		matched, start, end := matcher.Match([]byte("qwerty"))
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(0))
		Expect(end).To(Equal(6))
	})

	It("does not match when the substring is absent", func() {
		matched, _, _ := matcher.Match([]byte("qwert"))
		Expect(matched).To(BeFalse())
	})
})
