package orchestrator

type EncryptStep struct {
	encryptor Encryptor
	skip      *SkipStep
	logger    Logger
}

func NewEncryptStep(encryptor Encryptor, logger Logger) Step {
	return &EncryptStep{
		encryptor: encryptor,
		skip:      NewSkipStep(logger, "encryption", "no key file configured"),
		logger:    logger,
	}
}

func (s *EncryptStep) Run(session *Session) error {
	configuration := session.Configuration()
	if !configuration.Encrypted() {
		return s.skip.Run(session)
	}

	if session.Archive().IsZero() {
		return NewEncryptionError(-1, "no archive was created")
	}

	encrypted, err := s.encryptor.Encrypt(session.Archive().Path, configuration.KeyFile)
	if err != nil {
		return err
	}

	s.logger.Info(LogTag, "Encrypted archive created at '%s'", encrypted.Path)
	session.SetFinalArtifact(encrypted)
	return nil
}
