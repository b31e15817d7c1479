package policy_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pass-meter/pass-meter/policy"
)

var _ = Describe("Policy", func() {
	Describe("Default", func() {
		It("requires a score of four and fifty bits", func() {
			p := policy.Default()

			Expect(p.MinScore).To(Equal(4))
			Expect(p.MinEntropyBits).To(Equal(50.0))
			Expect(p.BannedWords).To(BeEmpty())
		})
	})

	Describe("Load", func() {
		It("overrides only the fields the file names", func() {
			p, err := policy.Load([]byte(`
min_score: 5
banned_words:
- acme
- staging
`))
			Expect(err).NotTo(HaveOccurred())

			Expect(p.MinScore).To(Equal(5))
			Expect(p.MinEntropyBits).To(Equal(50.0))
			Expect(p.BannedWords).To(Equal([]string{"acme", "staging"}))
		})

		It("returns the defaults for an empty file", func() {
			p, err := policy.Load([]byte(""))
			Expect(err).NotTo(HaveOccurred())

			Expect(p).To(Equal(policy.Default()))
		})

		It("rejects a score outside the valid range", func() {
			_, err := policy.Load([]byte("min_score: 6"))
			Expect(err).To(MatchError("min_score must be between 0 and 5, got 6"))
		})

		It("rejects a negative entropy threshold", func() {
			_, err := policy.Load([]byte("min_entropy_bits: -1"))
			Expect(err).To(MatchError("min_entropy_bits must not be negative, got -1"))
		})

		It("rejects malformed yaml", func() {
			_, err := policy.Load([]byte("{nope"))
			Expect(err).To(HaveOccurred())
		})
	})
})
