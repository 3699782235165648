package readwriter

import (
	"io"
)

type Logger interface {
	Info(tag, msg string, args ...interface{})
}

// ProgressReader logs how far through a stream of known size it has read.
// message is a format string receiving the percentage.
type ProgressReader struct {
	reader io.Reader
	logger Logger
	tag    string

	message     string
	totalSize   int64
	bytesRead   int64
	lastLogged  int
	logInterval int
}

func NewProgressReader(reader io.Reader, logger Logger, totalSize int64, tag, message string) *ProgressReader {
	return &ProgressReader{
		reader:      reader,
		logger:      logger,
		tag:         tag,
		message:     message,
		totalSize:   totalSize,
		logInterval: 5,
	}
}

func (r *ProgressReader) Read(b []byte) (int, error) {
	n, err := r.reader.Read(b)
	if n > 0 {
		r.bytesRead += int64(n)
		r.logProgress()
	}
	return n, err
}

func (r *ProgressReader) logProgress() {
	if r.totalSize <= 0 {
		return
	}

	percentage := int(100 * r.bytesRead / r.totalSize)
	if percentage > 100 {
		percentage = 100
	}
	if percentage >= r.lastLogged+r.logInterval {
		r.lastLogged = percentage
		r.logger.Info(r.tag, r.message, percentage)
	}
}
