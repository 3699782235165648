package orchestrator

type ValidateConfigurationStep struct {
	validator ConfigurationValidator
	logger    Logger
}

func NewValidateConfigurationStep(validator ConfigurationValidator, logger Logger) Step {
	return &ValidateConfigurationStep{validator: validator, logger: logger}
}

func (s *ValidateConfigurationStep) Run(session *Session) error {
	configuration := session.Configuration()
	s.logger.Info(LogTag, "Received the following configuration: %+v", configuration)

	resolved, err := s.validator.Validate(configuration)
	if err != nil {
		return err
	}

	session.SetConfiguration(resolved)
	return nil
}
