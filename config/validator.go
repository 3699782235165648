package config

import (
	"os"
	"strings"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

type ConfigurationError struct {
	error
}

func NewConfigurationError(errorMessage string) ConfigurationError {
	return ConfigurationError{errors.New(errorMessage)}
}

func wrapConfigurationError(err error, message string, args ...interface{}) ConfigurationError {
	return ConfigurationError{errors.Wrapf(err, message, args...)}
}

type Validator struct {
	fs boshsys.FileSystem
}

func NewValidator(fs boshsys.FileSystem) Validator {
	return Validator{fs: fs}
}

// Validate checks that every configured path is usable and returns a copy of
// the configuration with all paths made absolute.
func (v Validator) Validate(c Configuration) (Configuration, error) {
	if c.SourceDirectory == "" {
		return Configuration{}, NewConfigurationError("source directory must not be empty")
	}
	if c.DestinationDirectory == "" {
		return Configuration{}, NewConfigurationError("destination directory must not be empty")
	}

	var resolved Configuration
	var err error

	resolved.SourceDirectory, err = v.expand(c.SourceDirectory)
	if err != nil {
		return Configuration{}, err
	}
	if err := v.requireDirectory(resolved.SourceDirectory); err != nil {
		return Configuration{}, err
	}

	resolved.DestinationDirectory, err = v.expand(c.DestinationDirectory)
	if err != nil {
		return Configuration{}, err
	}

	if c.HasIgnoreFile() {
		resolved.IgnoreFile, err = v.expand(c.IgnoreFile)
		if err != nil {
			return Configuration{}, err
		}
		if err := v.requireReadableFile(resolved.IgnoreFile, "ignore file"); err != nil {
			return Configuration{}, err
		}
	}

	if c.Encrypted() {
		resolved.KeyFile, err = v.expand(c.KeyFile)
		if err != nil {
			return Configuration{}, err
		}
		if err := v.requirePassphrase(resolved.KeyFile); err != nil {
			return Configuration{}, err
		}
	}

	return resolved, nil
}

func (v Validator) expand(path string) (string, error) {
	expanded, err := v.fs.ExpandPath(path)
	if err != nil {
		return "", wrapConfigurationError(err, "failed to resolve path %s", path)
	}
	return expanded, nil
}

func (v Validator) requireDirectory(path string) error {
	info, err := v.fs.Stat(path)
	if err != nil {
		return wrapConfigurationError(err, "source directory %s is not accessible", path)
	}
	if !info.IsDir() {
		return NewConfigurationError("source directory " + path + " is not a directory")
	}
	return nil
}

func (v Validator) requireReadableFile(path, description string) error {
	info, err := v.fs.Stat(path)
	if err != nil {
		return wrapConfigurationError(err, "%s %s is not accessible", description, path)
	}
	if info.IsDir() {
		return NewConfigurationError(description + " " + path + " is a directory")
	}

	file, err := v.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return wrapConfigurationError(err, "%s %s is not readable", description, path)
	}
	return file.Close()
}

func (v Validator) requirePassphrase(path string) error {
	if err := v.requireReadableFile(path, "key file"); err != nil {
		return err
	}

	contents, err := v.fs.ReadFileString(path)
	if err != nil {
		return wrapConfigurationError(err, "key file %s is not readable", path)
	}
	if strings.TrimSpace(contents) == "" {
		return NewConfigurationError("key file " + path + " does not contain a passphrase")
	}
	return nil
}
