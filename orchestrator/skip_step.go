package orchestrator

func NewSkipStep(logger Logger, name, reason string) *SkipStep {
	return &SkipStep{
		logger: logger,
		name:   name,
		reason: reason,
	}
}

type SkipStep struct {
	name   string
	reason string
	logger Logger
}

func (s *SkipStep) Run(session *Session) error {
	s.logger.Info(LogTag, "Skipping %s: %s", s.name, s.reason)
	return nil
}
