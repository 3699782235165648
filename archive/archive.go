// Package archive creates the compressed archive of a source directory by
// driving tar.
package archive

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/gbackup/gbackup/config"
	"github.com/gbackup/gbackup/ignore"
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/gbackup/gbackup/runner"
	"github.com/pkg/errors"
)

const (
	TimestampFormat       = "2006-01-02-1504"
	Extension             = "tar.gz"
	MetadataExtension     = "metadata.yml"
	DefaultIgnoreFileName = ".gbackignore"
)

type ExclusionMode string

const (
	// DelegateExclusion hands the ignore file to tar.
	DelegateExclusion ExclusionMode = "delegate"
	// FilterExclusion walks the source itself, applies the ignore patterns and
	// hands tar the list of files to archive.
	FilterExclusion ExclusionMode = "filter"
)

func ParseExclusionMode(mode string) (ExclusionMode, error) {
	switch ExclusionMode(strings.ToLower(strings.TrimSpace(mode))) {
	case "", DelegateExclusion:
		return DelegateExclusion, nil
	case FilterExclusion:
		return FilterExclusion, nil
	default:
		return "", errors.Errorf("unknown exclusion mode %q: expected %q or %q", mode, DelegateExclusion, FilterExclusion)
	}
}

var backupArtifactName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{4}-backup\.`)

// Timestamp labels a backup with the UTC time at minute resolution.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

func ArchivePath(destinationDirectory, timestamp string) string {
	return filepath.Join(destinationDirectory, fmt.Sprintf("%s-backup.%s", timestamp, Extension))
}

func MetadataPath(archivePath string) string {
	return strings.TrimSuffix(archivePath, Extension) + MetadataExtension
}

// IsBackupArtifactName reports whether name looks like something this tool
// wrote into a destination directory.
func IsBackupArtifactName(name string) bool {
	return backupArtifactName.MatchString(name)
}

type TarArchiver struct {
	runner  runner.CommandRunner
	fs      boshsys.FileSystem
	logger  orchestrator.Logger
	nowFunc func() time.Time
	mode    ExclusionMode
}

func NewTarArchiver(commandRunner runner.CommandRunner, fs boshsys.FileSystem, logger orchestrator.Logger, nowFunc func() time.Time, mode ExclusionMode) *TarArchiver {
	return &TarArchiver{
		runner:  commandRunner,
		fs:      fs,
		logger:  logger,
		nowFunc: nowFunc,
		mode:    mode,
	}
}

// CreateArchive writes {destination}/{timestamp}-backup.tar.gz. The
// configuration must hold absolute paths.
func (a *TarArchiver) CreateArchive(c config.Configuration) (orchestrator.BackupArtifact, error) {
	timestamp := Timestamp(a.nowFunc())
	archivePath := ArchivePath(c.DestinationDirectory, timestamp)
	a.logger.Info(orchestrator.LogTag, "Current time: %s", timestamp)

	ignoreFile := a.ignoreFile(c)
	if ignoreFile != "" {
		a.logger.Info(orchestrator.LogTag, "Using ignore file '%s'", ignoreFile)
	}

	// Patterns are compiled before anything is written to the destination.
	var matcher *ignore.Matcher
	var err error
	if a.mode == FilterExclusion {
		matcher, err = ignore.LoadFile(a.fs, ignoreFile)
		if err != nil {
			return orchestrator.BackupArtifact{}, err
		}
	}

	if err := a.fs.MkdirAll(c.DestinationDirectory, 0700); err != nil {
		return orchestrator.BackupArtifact{}, errors.Wrapf(err, "failed to create destination directory %s", c.DestinationDirectory)
	}

	var args []string
	switch a.mode {
	case FilterExclusion:
		var cleanup func()
		args, cleanup, err = a.filterArguments(c, archivePath, matcher)
		if err != nil {
			return orchestrator.BackupArtifact{}, err
		}
		defer cleanup()
	default:
		args = delegateArguments(c, archivePath, ignoreFile)
	}

	a.logger.Info(orchestrator.LogTag, "Creating compressed archive '%s'...", archivePath)
	result, err := a.runner.Run("tar", args...)
	if err != nil {
		return orchestrator.BackupArtifact{}, orchestrator.NewArchiveError(-1, err.Error())
	}
	if !result.Succeeded() {
		return orchestrator.BackupArtifact{}, orchestrator.NewArchiveError(result.ExitCode, result.Stderr)
	}

	return orchestrator.BackupArtifact{Path: archivePath, Kind: orchestrator.Archive}, nil
}

// ignoreFile falls back to a .gbackignore at the root of the source
// directory when none is configured.
func (a *TarArchiver) ignoreFile(c config.Configuration) string {
	if c.HasIgnoreFile() {
		return c.IgnoreFile
	}

	discovered := filepath.Join(c.SourceDirectory, DefaultIgnoreFileName)
	if a.fs.FileExists(discovered) {
		return discovered
	}
	return ""
}

func delegateArguments(c config.Configuration, archivePath, ignoreFile string) []string {
	args := []string{"-czf", archivePath}
	if ignoreFile != "" {
		args = append(args, "--exclude-from="+ignoreFile)
	}
	args = append(args, SelfExclusions(c.SourceDirectory, c.DestinationDirectory)...)
	return append(args, "-C", c.SourceDirectory, ".")
}

// SelfExclusions keeps earlier backups out of the archive when the
// destination lives inside the source. A nested destination is excluded as
// a literal name, so it must come after any wildcard patterns. It returns
// nothing when the destination is elsewhere.
func SelfExclusions(sourceDirectory, destinationDirectory string) []string {
	relative, ok := relativeDestination(sourceDirectory, destinationDirectory)
	if !ok {
		return nil
	}

	if relative == "." {
		return []string{
			"--no-wildcards-match-slash",
			"--exclude=./[0-9]*-backup." + Extension + "*",
			"--exclude=./[0-9]*-backup." + MetadataExtension,
		}
	}
	return []string{"--no-wildcards", "--exclude=./" + filepath.ToSlash(relative)}
}

func relativeDestination(sourceDirectory, destinationDirectory string) (string, bool) {
	relative, err := filepath.Rel(filepath.Clean(sourceDirectory), filepath.Clean(destinationDirectory))
	if err != nil {
		return "", false
	}
	if relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return "", false
	}
	return relative, true
}
