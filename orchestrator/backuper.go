package orchestrator

import (
	"time"

	"github.com/gbackup/gbackup/config"
)

//go:generate counterfeiter -o fakes/fake_configuration_validator.go . ConfigurationValidator
type ConfigurationValidator interface {
	Validate(config.Configuration) (config.Configuration, error)
}

//go:generate counterfeiter -o fakes/fake_archiver.go . Archiver
type Archiver interface {
	CreateArchive(config.Configuration) (BackupArtifact, error)
}

//go:generate counterfeiter -o fakes/fake_encryptor.go . Encryptor
type Encryptor interface {
	Encrypt(archivePath, keyFile string) (BackupArtifact, error)
}

//go:generate counterfeiter -o fakes/fake_report_writer.go . ReportWriter
type ReportWriter interface {
	Write(Report) (string, error)
}

// Report summarises a successful backup run.
type Report struct {
	Configuration config.Configuration
	Archive       BackupArtifact
	FinalArtifact BackupArtifact
	StartTime     time.Time
	FinishTime    time.Time
}

func NewBackuper(validator ConfigurationValidator, archiver Archiver, encryptor Encryptor, reportWriter ReportWriter, logger Logger, nowFunc func() time.Time) *Backuper {
	validate := NewValidateConfigurationStep(validator, logger)
	createArchive := NewCreateArchiveStep(archiver, logger)
	encrypt := NewEncryptStep(encryptor, logger)
	recordMetadata := NewRecordMetadataStep(reportWriter, nowFunc, logger)

	workflow := NewWorkflow()
	workflow.StartWith(validate).OnSuccess(createArchive)
	workflow.Add(createArchive).OnSuccess(encrypt)
	workflow.Add(encrypt).OnSuccess(recordMetadata)
	workflow.Add(recordMetadata)

	return &Backuper{
		workflow: workflow,
		logger:   logger,
		nowFunc:  nowFunc,
	}
}

type Backuper struct {
	workflow *Workflow
	logger   Logger
	nowFunc  func() time.Time
}

// Backup validates the configuration, archives the source directory and,
// when a key file is configured, encrypts the archive. It returns the final
// artifact: the encrypted archive if there is one, the plain archive
// otherwise.
func (b Backuper) Backup(configuration config.Configuration) (BackupArtifact, Error) {
	session := NewSession(configuration, b.nowFunc())

	if err := b.workflow.Run(session); err != nil {
		return BackupArtifact{}, err
	}

	b.logger.Info(LogTag, "Backup created at '%s'", session.FinalArtifact().Path)
	return session.FinalArtifact(), nil
}
