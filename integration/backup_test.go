package integration

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("gbackup", func() {
	var (
		workDir     string
		home        string
		destination string
		tools       FakeTools
		extraEnv    []string
		args        []string
		session     *gexec.Session
	)

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
		home = filepath.Join(workDir, "home")
		destination = filepath.Join(home, "Documents", "Backups")

		Expect(os.MkdirAll(filepath.Join(home, "cache"), 0700)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(home, "notes.txt"), []byte("notes"), 0600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(home, "cache", "junk"), []byte("junk"), 0600)).To(Succeed())

		binDir := filepath.Join(workDir, "bin")
		Expect(os.MkdirAll(binDir, 0700)).To(Succeed())
		tools = NewFakeTools(binDir)

		extraEnv = nil
		args = nil
	})

	JustBeforeEach(func() {
		session = binary.Backup(workDir, home, tools, extraEnv, args...)
	})

	Context("with no arguments", func() {
		It("backs up the home directory into Documents/Backups", func() {
			Expect(session.ExitCode()).To(Equal(0))

			archivePath := reportedArtifact(session)
			Expect(filepath.Dir(archivePath)).To(Equal(destination))
			Expect(filepath.Base(archivePath)).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}-\d{4}-backup\.tar\.gz$`))
			Expect(archivePath).To(BeAnExistingFile())
		})

		It("keeps earlier backups out of the archive", func() {
			Expect(tools.Args("tar")).To(ContainElements("--no-wildcards", "--exclude=./Documents/Backups"))
			Expect(tools.Args("tar")).To(ContainElements("-C", home, "."))
		})

		It("does not encrypt", func() {
			Expect(tools.Invoked("gpg")).To(BeFalse())
		})

		It("records metadata next to the archive", func() {
			metadataFiles, err := filepath.Glob(filepath.Join(destination, "*-backup.metadata.yml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(metadataFiles).To(HaveLen(1))

			contents, err := os.ReadFile(metadataFiles[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(ContainSubstring("kind: archive"))
			Expect(string(contents)).To(ContainSubstring("source_directory: " + home))
		})
	})

	Context("with --help", func() {
		BeforeEach(func() {
			args = []string{"--help"}
		})

		It("prints the usage and does nothing else", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(ContainSubstring("Usage: gbackup"))
			Expect(tools.Invoked("tar")).To(BeFalse())
		})
	})

	Context("with -h among malformed arguments", func() {
		BeforeEach(func() {
			args = []string{"--source_directory", "-h", "--key_file"}
		})

		It("prints the usage", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(ContainSubstring("Usage: gbackup"))
		})
	})

	Context("with an odd number of arguments", func() {
		BeforeEach(func() {
			args = []string{"--source_directory"}
		})

		It("fails with the usage", func() {
			Expect(session.ExitCode()).To(Equal(1))
			Expect(string(session.Err.Contents())).To(ContainSubstring("invalid argument count"))
			Expect(string(session.Err.Contents())).To(ContainSubstring("Usage: gbackup"))
			Expect(tools.Invoked("tar")).To(BeFalse())
		})
	})

	Context("with an unknown option", func() {
		BeforeEach(func() {
			args = []string{"--compression", "xz"}
		})

		It("fails", func() {
			Expect(session.ExitCode()).To(Equal(1))
			Expect(string(session.Err.Contents())).To(ContainSubstring("unknown option: --compression"))
		})
	})

	Context("with a destination outside the source", func() {
		BeforeEach(func() {
			destination = filepath.Join(workDir, "backups")
			args = []string{"--destination_directory", destination}
		})

		It("excludes nothing extra", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(reportedArtifact(session)).To(HavePrefix(destination + "/"))
			for _, arg := range tools.Args("tar") {
				Expect(arg).NotTo(HavePrefix("--exclude"))
			}
		})
	})

	Context("with a destination named like a wildcard", func() {
		BeforeEach(func() {
			destination = filepath.Join(home, "Back[1]")
			args = []string{"--destination_directory", destination}
		})

		It("excludes it by its literal name", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(tools.Args("tar")).To(ContainElements("--no-wildcards", "--exclude=./Back[1]"))
			Expect(reportedArtifact(session)).To(HavePrefix(destination + "/"))
		})
	})

	Context("with a key file", func() {
		var keyFile string

		BeforeEach(func() {
			keyFile = filepath.Join(workDir, "key")
			Expect(os.WriteFile(keyFile, []byte("correct horse battery staple\n"), 0600)).To(Succeed())
			args = []string{"--key_file", keyFile}
		})

		It("reports the encrypted archive", func() {
			Expect(session.ExitCode()).To(Equal(0))

			encryptedPath := reportedArtifact(session)
			Expect(encryptedPath).To(MatchRegexp(`-backup\.tar\.gz\.gpg$`))
			Expect(encryptedPath).To(BeAnExistingFile())
		})

		It("keeps the plain archive", func() {
			encryptedPath := reportedArtifact(session)
			Expect(encryptedPath[:len(encryptedPath)-len(".gpg")]).To(BeAnExistingFile())
		})

		It("runs gpg in batch mode with the key file", func() {
			gpgArgs := tools.Args("gpg")
			Expect(gpgArgs).To(ContainElement("--batch"))
			Expect(gpgArgs).To(ContainElements("--passphrase-file", keyFile))
			Expect(gpgArgs).To(ContainElement("--symmetric"))
		})

		Context("and gpg fails", func() {
			BeforeEach(func() {
				extraEnv = []string{"FAKE_GPG_EXIT=2"}
			})

			It("exits with the encryption bit set", func() {
				Expect(session.ExitCode()).To(Equal(8))
				Expect(string(session.Err.Contents())).To(ContainSubstring("gpg: decryption failed: No secret key"))
			})

			It("writes an error log into the destination", func() {
				logs, err := filepath.Glob(filepath.Join(destination, "gbackup-*.err.log"))
				Expect(err).NotTo(HaveOccurred())
				Expect(logs).To(HaveLen(1))
			})
		})
	})

	Context("with an empty key file", func() {
		BeforeEach(func() {
			keyFile := filepath.Join(workDir, "key")
			Expect(os.WriteFile(keyFile, []byte("\n"), 0600)).To(Succeed())
			args = []string{"--key_file", keyFile}
		})

		It("fails before archiving", func() {
			Expect(session.ExitCode()).To(Equal(1))
			Expect(string(session.Err.Contents())).To(ContainSubstring("does not contain a passphrase"))
			Expect(tools.Invoked("tar")).To(BeFalse())
		})
	})

	Context("when the source directory does not exist", func() {
		BeforeEach(func() {
			args = []string{"--source_directory", filepath.Join(workDir, "missing")}
		})

		It("fails", func() {
			Expect(session.ExitCode()).To(Equal(1))
			Expect(string(session.Err.Contents())).To(ContainSubstring("is not accessible"))
		})
	})

	Context("when tar fails", func() {
		var keyFile string

		BeforeEach(func() {
			keyFile = filepath.Join(workDir, "key")
			Expect(os.WriteFile(keyFile, []byte("passphrase"), 0600)).To(Succeed())
			args = []string{"--key_file", keyFile}
			extraEnv = []string{"FAKE_TAR_EXIT=2", "FAKE_TAR_STDERR=tar: ./notes.txt: Cannot open: Permission denied"}
		})

		It("exits with the archive bit set and passes on tar's error", func() {
			Expect(session.ExitCode()).To(Equal(4))
			Expect(string(session.Err.Contents())).To(ContainSubstring("tar: ./notes.txt: Cannot open: Permission denied"))
		})

		It("does not encrypt", func() {
			Expect(tools.Invoked("gpg")).To(BeFalse())
		})
	})

	Context("when filtering with the ignore patterns", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(filepath.Join(home, ".gbackignore"), []byte("cache/\n"), 0600)).To(Succeed())
			extraEnv = []string{"GBACKUP_EXCLUSION_MODE=filter"}
		})

		It("hands tar the files that survive the patterns", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(tools.Args("tar")).To(ContainElements("--null", "--no-recursion", "-T"))
			Expect(tools.ArchivedFiles()).To(ConsistOf(".gbackignore", "Documents", "notes.txt"))
		})
	})

	Context("with an unknown exclusion mode", func() {
		BeforeEach(func() {
			extraEnv = []string{"GBACKUP_EXCLUSION_MODE=glob"}
		})

		It("fails", func() {
			Expect(session.ExitCode()).To(Equal(1))
			Expect(string(session.Err.Contents())).To(ContainSubstring("unknown exclusion mode"))
		})
	})

	Context("with debug logging", func() {
		BeforeEach(func() {
			extraEnv = []string{"GBACKUP_DEBUG=true"}
		})

		It("logs the version", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(ContainSubstring("gbackup version " + version))
		})
	})
})
