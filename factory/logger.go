package factory

import (
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

func BuildLogger(debug bool) boshlog.Logger {
	return BuildLoggerWithCustomWriter(os.Stdout, debug)
}

func BuildLoggerWithCustomWriter(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}
