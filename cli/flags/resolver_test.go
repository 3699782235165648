package flags_test

import (
	"github.com/gbackup/gbackup/cli/flags"
	"github.com/gbackup/gbackup/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver", func() {
	var (
		defaults config.Configuration
		resolver flags.Resolver
	)

	BeforeEach(func() {
		defaults = config.Defaults("/home/alice")
		resolver = flags.NewResolver(defaults)
	})

	It("returns the defaults when there are no arguments", func() {
		resolved, err := resolver.Resolve([]string{})
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(Equal(config.Configuration{
			SourceDirectory:      "/home/alice",
			DestinationDirectory: "/home/alice/Documents/Backups",
		}))
	})

	It("overlays the given options on the defaults", func() {
		resolved, err := resolver.Resolve([]string{
			"--destination_directory", "/mnt/backups",
			"--key_file", "/home/alice/.key",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(Equal(config.Configuration{
			SourceDirectory:      "/home/alice",
			DestinationDirectory: "/mnt/backups",
			KeyFile:              "/home/alice/.key",
		}))
	})

	It("accepts every option", func() {
		resolved, err := resolver.Resolve([]string{
			"--source_directory", "/srv/data",
			"--destination_directory", "/mnt/backups",
			"--ignore_file", "/srv/data/.ignore",
			"--key_file", "/root/.key",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(Equal(config.Configuration{
			SourceDirectory:      "/srv/data",
			DestinationDirectory: "/mnt/backups",
			IgnoreFile:           "/srv/data/.ignore",
			KeyFile:              "/root/.key",
		}))
	})

	It("accepts the short directory names", func() {
		resolved, err := resolver.Resolve([]string{"--src_dir", "/srv/data", "--dest_dir", "/mnt/backups"})
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved.SourceDirectory).To(Equal("/srv/data"))
		Expect(resolved.DestinationDirectory).To(Equal("/mnt/backups"))
	})

	It("keeps the last value of a repeated option", func() {
		resolved, err := resolver.Resolve([]string{
			"--key_file", "/first",
			"--source_directory", "/srv/data",
			"--key_file", "/second",
			"--key_file", "/third",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved.KeyFile).To(Equal("/third"))
		Expect(resolved.SourceDirectory).To(Equal("/srv/data"))
	})

	It("does not modify the defaults", func() {
		_, err := resolver.Resolve([]string{"--source_directory", "/srv/data"})
		Expect(err).NotTo(HaveOccurred())

		resolved, err := resolver.Resolve(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(Equal(defaults))
	})

	DescribeTable("asking for help",
		func(args []string) {
			_, err := resolver.Resolve(args)
			Expect(err).To(Equal(flags.ErrHelp))
		},
		Entry("--help alone", []string{"--help"}),
		Entry("-h alone", []string{"-h"}),
		Entry("help with an odd argument count", []string{"--source_directory", "/srv", "--help"}),
		Entry("help with too many arguments", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "-h"}),
		Entry("help in option position", []string{"--help", "--source_directory"}),
		Entry("help after a valid pair", []string{"--key_file", "/key", "-h", "value"}),
	)

	DescribeTable("rejecting the argument count",
		func(args []string) {
			_, err := resolver.Resolve(args)
			Expect(err).To(BeAssignableToTypeOf(flags.ArgumentError{}))
			Expect(err).To(MatchError(ContainSubstring("invalid argument count")))
		},
		Entry("a single option", []string{"--source_directory"}),
		Entry("an odd count", []string{"--source_directory", "/srv", "--key_file"}),
		Entry("more pairs than options", []string{
			"--key_file", "1",
			"--key_file", "2",
			"--key_file", "3",
			"--key_file", "4",
			"--key_file", "5",
		}),
	)

	It("rejects an unknown option", func() {
		_, err := resolver.Resolve([]string{"--source_directory", "/srv", "--compression", "xz"})
		Expect(err).To(BeAssignableToTypeOf(flags.ArgumentError{}))
		Expect(err).To(MatchError("unknown option: --compression"))
	})

	It("reports a value in option position as unknown", func() {
		_, err := resolver.Resolve([]string{"/srv", "--source_directory"})
		Expect(err).To(MatchError("unknown option: /srv"))
	})
})

var _ = Describe("HelpText", func() {
	It("documents every option", func() {
		for _, name := range []string{"--source_directory", "--destination_directory", "--ignore_file", "--key_file", "--help"} {
			Expect(flags.HelpText).To(ContainSubstring(name))
		}
	})
})
