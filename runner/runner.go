package runner

import (
	"strings"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

// Result is everything an external command reports back. Callers decide on
// ExitCode; Stdout is only ever logged.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

//go:generate counterfeiter -o fakes/fake_command_runner.go . CommandRunner
type CommandRunner interface {
	Run(name string, args ...string) (Result, error)
}

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
}

// LocalRunner runs commands on this machine and waits for them to exit.
type LocalRunner struct {
	cmdRunner boshsys.CmdRunner
	logger    Logger
}

func NewLocalRunner(cmdRunner boshsys.CmdRunner, logger Logger) LocalRunner {
	return LocalRunner{cmdRunner: cmdRunner, logger: logger}
}

func (r LocalRunner) Run(name string, args ...string) (Result, error) {
	label := commandLine(name, args)
	r.logger.Info("gbackup", "Running %s", label)

	stdout, stderr, exitCode, err := r.cmdRunner.RunComplexCommand(boshsys.Command{
		Name: name,
		Args: args,
	})
	r.logOutput(stdout, stderr, name)

	// A process that ran and exited non-zero is reported through the result;
	// only a process that could not be started is an error.
	if err != nil && exitCode < 0 {
		return Result{}, errors.Wrapf(err, "failed to run %s", name)
	}

	return Result{ExitCode: exitCode, Stdout: stdout, Stderr: stderr}, nil
}

func (r LocalRunner) logOutput(stdout, stderr, label string) {
	if strings.TrimSpace(stdout) != "" {
		r.logger.Info("gbackup", "[%s] stdout: %s", label, strings.TrimSpace(stdout))
	}
	r.logger.Debug("gbackup", "[%s] stderr: %s", label, stderr)
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
