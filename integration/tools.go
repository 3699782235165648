package integration

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"
)

const fakeTar = `#!/bin/sh
printf '%s\n' "$@" > "$FAKE_TOOLS_DIR/tar.args"
if [ -n "$FAKE_TAR_STDERR" ]; then
  printf '%s' "$FAKE_TAR_STDERR" >&2
fi
if [ "${FAKE_TAR_EXIT:-0}" != 0 ]; then
  exit "$FAKE_TAR_EXIT"
fi
while [ $# -gt 0 ]; do
  if [ "$1" = "-czf" ]; then
    printf 'archive' > "$2"
  fi
  if [ "$1" = "-T" ]; then
    tr '\0' '\n' < "$2" > "$FAKE_TOOLS_DIR/tar.files"
  fi
  shift
done
`

const fakeGpg = `#!/bin/sh
printf '%s\n' "$@" > "$FAKE_TOOLS_DIR/gpg.args"
if [ "${FAKE_GPG_EXIT:-0}" != 0 ]; then
  printf 'gpg: decryption failed: No secret key' >&2
  exit "$FAKE_GPG_EXIT"
fi
while [ $# -gt 0 ]; do
  if [ "$1" = "--output" ]; then
    printf 'encrypted' > "$2"
  fi
  shift
done
`

// FakeTools is a directory of stand-ins for tar and gpg that record the
// arguments they were called with.
type FakeTools struct {
	Dir string
}

func NewFakeTools(dir string) FakeTools {
	Expect(os.WriteFile(filepath.Join(dir, "tar"), []byte(fakeTar), 0755)).To(Succeed())
	Expect(os.WriteFile(filepath.Join(dir, "gpg"), []byte(fakeGpg), 0755)).To(Succeed())
	return FakeTools{Dir: dir}
}

func (t FakeTools) Env(home string, extra ...string) []string {
	env := []string{
		"PATH=" + t.Dir + ":/usr/bin:/bin",
		"HOME=" + home,
		"FAKE_TOOLS_DIR=" + t.Dir,
	}
	return append(env, extra...)
}

func (t FakeTools) Invoked(tool string) bool {
	_, err := os.Stat(filepath.Join(t.Dir, tool+".args"))
	return err == nil
}

func (t FakeTools) Args(tool string) []string {
	return t.lines(tool + ".args")
}

func (t FakeTools) ArchivedFiles() []string {
	return t.lines("tar.files")
}

func (t FakeTools) lines(name string) []string {
	contents, err := os.ReadFile(filepath.Join(t.Dir, name))
	Expect(err).NotTo(HaveOccurred())
	return strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n")
}
