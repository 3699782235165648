package artifact

import (
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/dustin/go-humanize"
	"github.com/gbackup/gbackup/archive"
	"github.com/gbackup/gbackup/orchestrator"
)

type MetadataWriter struct {
	fs     boshsys.FileSystem
	logger orchestrator.Logger
}

func NewMetadataWriter(fs boshsys.FileSystem, logger orchestrator.Logger) MetadataWriter {
	return MetadataWriter{fs: fs, logger: logger}
}

// Write saves {timestamp}-backup.metadata.yml next to the archive and returns
// its path.
func (w MetadataWriter) Write(report orchestrator.Report) (string, error) {
	checksum, size, err := w.Checksum(report.FinalArtifact.Path)
	if err != nil {
		return "", err
	}
	w.logger.Info(orchestrator.LogTag, "Backup is %s, sha256 %s", humanize.Bytes(uint64(size)), checksum)

	metadata := Metadata{
		SourceDirectory:      report.Configuration.SourceDirectory,
		DestinationDirectory: report.Configuration.DestinationDirectory,
		IgnoreFile:           report.Configuration.IgnoreFile,
		Archive:              report.Archive.Path,
		Artifact: FileMetadata{
			Path:     report.FinalArtifact.Path,
			Kind:     string(report.FinalArtifact.Kind),
			Checksum: checksum,
			Size:     size,
		},
		BackupActivity: ActivityMetadata{
			StartTime:  formatTime(report.StartTime),
			FinishTime: formatTime(report.FinishTime),
		},
	}

	path := archive.MetadataPath(report.Archive.Path)
	if err := metadata.save(w.fs, path); err != nil {
		return "", err
	}
	return path, nil
}
