package ignore_test

import (
	"strings"

	"github.com/gbackup/gbackup/ignore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseRules", func() {
	It("classifies patterns with a trailing separator as directory rules", func() {
		rules, err := ignore.ParseRules(strings.NewReader("node_modules/\n.*\\.log\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(Equal([]ignore.Rule{
			{Pattern: "node_modules/", Kind: ignore.DirectoryRule},
			{Pattern: ".*\\.log", Kind: ignore.FileRule},
		}))
	})

	It("skips blank lines", func() {
		rules, err := ignore.ParseRules(strings.NewReader("\ncache/\n   \n\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(HaveLen(1))
		Expect(rules[0].Pattern).To(Equal("cache/"))
	})

	It("strips carriage returns", func() {
		rules, err := ignore.ParseRules(strings.NewReader("cache/\r\ntmp\r\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(Equal([]ignore.Rule{
			{Pattern: "cache/", Kind: ignore.DirectoryRule},
			{Pattern: "tmp", Kind: ignore.FileRule},
		}))
	})

	It("returns no rules for empty input", func() {
		rules, err := ignore.ParseRules(strings.NewReader(""))

		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(BeEmpty())
	})
})

var _ = Describe("RuleKind", func() {
	It("names the kinds", func() {
		Expect(ignore.DirectoryRule.String()).To(Equal("directory"))
		Expect(ignore.FileRule.String()).To(Equal("file"))
	})
})
