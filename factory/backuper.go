package factory

import (
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/gbackup/gbackup/archive"
	"github.com/gbackup/gbackup/artifact"
	"github.com/gbackup/gbackup/config"
	"github.com/gbackup/gbackup/encryption"
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/gbackup/gbackup/runner"
	"github.com/pkg/errors"
)

func BuildBackuper(logger boshlog.Logger, mode archive.ExclusionMode) *orchestrator.Backuper {
	fs := boshsys.NewOsFileSystem(logger)
	commandRunner := runner.NewLocalRunner(boshsys.NewExecCmdRunner(logger), logger)

	return orchestrator.NewBackuper(
		config.NewValidator(fs),
		archive.NewTarArchiver(commandRunner, fs, logger, time.Now, mode),
		encryption.NewGpgEncryptor(commandRunner, logger),
		artifact.NewMetadataWriter(fs, logger),
		logger,
		time.Now,
	)
}

// BuildDefaults backs up the current user's home directory into
// ~/Documents/Backups.
func BuildDefaults(logger boshlog.Logger) (config.Configuration, error) {
	homeDir, err := boshsys.NewOsFileSystem(logger).ExpandPath("~")
	if err != nil {
		return config.Configuration{}, errors.Wrap(err, "failed to find home directory")
	}
	return config.Defaults(homeDir), nil
}
