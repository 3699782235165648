package integration

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

var runTimeout = 1 * time.Minute

// Binary is the gbackup executable built for this suite.
type Binary struct {
	path string
}

func NewBinary(path string) Binary {
	return Binary{path: path}
}

// Backup runs gbackup in workDir with home as $HOME and tools first on
// $PATH, and waits for it to exit.
func (b Binary) Backup(workDir, home string, tools FakeTools, extraEnv []string, args ...string) *gexec.Session {
	command := exec.Command(b.path, args...)
	command.Env = tools.Env(home, extraEnv...)
	command.Dir = workDir

	fmt.Fprintf(GinkgoWriter, "Running gbackup %s with HOME=%s %s\n", strings.Join(args, " "), home, strings.Join(extraEnv, " "))
	session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred())
	Eventually(session, runTimeout).Should(gexec.Exit())
	fmt.Fprintf(GinkgoWriter, "gbackup exited with %d\n", session.ExitCode())

	return session
}

// reportedArtifact is the path gbackup prints as its last line on success.
func reportedArtifact(session *gexec.Session) string {
	lines := strings.Split(strings.TrimSpace(string(session.Out.Contents())), "\n")
	return lines[len(lines)-1]
}
