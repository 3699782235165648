package archive

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gbackup/gbackup/config"
	"github.com/gbackup/gbackup/ignore"
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/pkg/errors"
)

func (a *TarArchiver) filterArguments(c config.Configuration, archivePath string, matcher *ignore.Matcher) ([]string, func(), error) {
	paths, err := a.CollectPaths(c, matcher)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info(orchestrator.LogTag, "Archiving %d paths after applying ignore patterns", len(paths))

	listFile, err := a.fs.TempFile("gbackup-files")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create file list")
	}
	cleanup := func() {
		if err := a.fs.RemoveAll(listFile.Name()); err != nil {
			a.logger.Warn(orchestrator.LogTag, "Failed to remove file list '%s': %v", listFile.Name(), err)
		}
	}

	_, err = listFile.Write([]byte(strings.Join(paths, "\x00")))
	if closeErr := listFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to write file list")
	}

	args := []string{
		"-czf", archivePath,
		"--null",
		"--no-recursion",
		"-C", c.SourceDirectory,
		"-T", listFile.Name(),
	}
	return args, cleanup, nil
}

// CollectPaths walks the source directory and returns the slash-separated
// relative paths that survive the matcher. Directories are tested with a
// trailing "/" so a directory pattern prunes the whole subtree. The
// destination directory, or earlier backups when it is the source itself,
// is always left out.
func (a *TarArchiver) CollectPaths(c config.Configuration, matcher *ignore.Matcher) ([]string, error) {
	source := filepath.Clean(c.SourceDirectory)
	destination := filepath.Clean(c.DestinationDirectory)
	var paths []string

	err := filepath.WalkDir(source, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == source {
				return walkErr
			}
			a.logger.Warn(orchestrator.LogTag, "Skipping '%s': %v", path, walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == source {
			return nil
		}

		if entry.IsDir() && path == destination {
			return filepath.SkipDir
		}
		if !entry.IsDir() && filepath.Dir(path) == destination && IsBackupArtifactName(entry.Name()) {
			return nil
		}

		relative, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		relative = filepath.ToSlash(relative)

		if entry.IsDir() {
			if matcher.Matches(relative + "/") {
				a.logger.Debug(orchestrator.LogTag, "Excluding directory '%s'", relative)
				return filepath.SkipDir
			}
		} else if matcher.Matches(relative) {
			a.logger.Debug(orchestrator.LogTag, "Excluding file '%s'", relative)
			return nil
		}

		paths = append(paths, relative)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk source directory %s", source)
	}

	return paths, nil
}
