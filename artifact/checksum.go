package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/gbackup/gbackup/counter"
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/gbackup/gbackup/readwriter"
	"github.com/pkg/errors"
)

// Checksum returns the hex sha256 of the file at path and the number of
// bytes hashed, logging progress as it goes.
func (w MetadataWriter) Checksum(path string) (string, int64, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		return "", 0, errors.Wrapf(err, "failed to stat %s", path)
	}

	file, err := w.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", 0, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	hash := sha256.New()
	hashed := counter.NewCountWriter(hash)
	reader := readwriter.NewProgressReader(file, w.logger, info.Size(), orchestrator.LogTag, "Calculating checksum: %d%%")

	if _, err := io.Copy(hashed, reader); err != nil {
		return "", 0, errors.Wrapf(err, "failed to calculate checksum of %s", path)
	}

	return hex.EncodeToString(hash.Sum(nil)), hashed.Count(), nil
}
