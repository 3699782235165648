// Package artifact records what a backup run produced in a metadata file
// next to the archive.
package artifact

import (
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const TimeFormat = "2006/01/02 15:04:05 MST"

type FileMetadata struct {
	Path     string `yaml:"path"`
	Kind     string `yaml:"kind"`
	Checksum string `yaml:"sha256,omitempty"`
	Size     int64  `yaml:"size,omitempty"`
}

type ActivityMetadata struct {
	StartTime  string `yaml:"start_time"`
	FinishTime string `yaml:"finish_time"`
}

type Metadata struct {
	SourceDirectory      string           `yaml:"source_directory"`
	DestinationDirectory string           `yaml:"destination_directory"`
	IgnoreFile           string           `yaml:"ignore_file,omitempty"`
	Archive              string           `yaml:"archive"`
	Artifact             FileMetadata     `yaml:"artifact"`
	BackupActivity       ActivityMetadata `yaml:"backup_activity"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

func ReadMetadata(fs boshsys.FileSystem, path string) (Metadata, error) {
	var metadata Metadata

	contents, err := fs.ReadFile(path)
	if err != nil {
		return metadata, errors.Wrapf(err, "failed to read metadata %s", path)
	}

	if err := yaml.Unmarshal(contents, &metadata); err != nil {
		return metadata, errors.Wrapf(err, "failed to parse metadata %s", path)
	}
	return metadata, nil
}

func (m Metadata) save(fs boshsys.FileSystem, path string) error {
	contents, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "failed to marshal metadata")
	}

	if err := fs.WriteFile(path, contents); err != nil {
		return errors.Wrapf(err, "failed to write metadata %s", path)
	}
	return fs.Chmod(path, 0600)
}
