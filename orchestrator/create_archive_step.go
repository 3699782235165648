package orchestrator

type CreateArchiveStep struct {
	archiver Archiver
	logger   Logger
}

func NewCreateArchiveStep(archiver Archiver, logger Logger) Step {
	return &CreateArchiveStep{archiver: archiver, logger: logger}
}

func (s *CreateArchiveStep) Run(session *Session) error {
	s.logger.Info(LogTag, "Starting backup of %s...", session.Configuration().SourceDirectory)

	archive, err := s.archiver.CreateArchive(session.Configuration())
	if err != nil {
		return err
	}

	s.logger.Info(LogTag, "Compressed archive created at '%s'", archive.Path)
	session.SetArchive(archive)
	return nil
}
