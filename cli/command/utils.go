package command

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gbackup/gbackup/cli/flags"
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli"
)

func processError(err orchestrator.Error, destinationDirectory string) error {
	errorCode, errorMessage, errorWithStackTrace := orchestrator.ProcessError(err)

	if logPath, writeErr := writeStackTrace(destinationDirectory, errorWithStackTrace); writeErr != nil {
		errorMessage = fmt.Sprintf("%s\nfailed to write error log: %s", errorMessage, writeErr)
	} else if logPath != "" {
		errorMessage = fmt.Sprintf("%s\nThe full error is logged in %s", errorMessage, logPath)
	}

	if footer := footerFor(err); footer != "" {
		errorMessage = errorMessage + "\n" + footer
	}

	return cli.NewExitError(ansi.Color(errorMessage, "red"), errorCode)
}

func footerFor(err orchestrator.Error) string {
	switch {
	case err.ContainsArchiveError():
		return partialArchiveNotice
	case err.ContainsEncryptionError():
		return plainArchiveNotice
	default:
		return ""
	}
}

// writeStackTrace saves the error log in the destination directory, or the
// working directory when the destination does not exist.
func writeStackTrace(destinationDirectory, errorWithStackTrace string) (string, error) {
	if errorWithStackTrace == "" {
		return "", nil
	}

	fileName := fmt.Sprintf("gbackup-%s.err.log", time.Now().UTC().Format(time.RFC3339))
	path := fileName
	if info, err := os.Stat(destinationDirectory); destinationDirectory != "" && err == nil && info.IsDir() {
		path = filepath.Join(destinationDirectory, fileName)
	}

	if err := os.WriteFile(path, []byte(errorWithStackTrace), 0600); err != nil {
		return "", err
	}
	return path, nil
}

func usageError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red")+"\n\n"+flags.HelpText, 1)
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
