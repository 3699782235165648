package orchestrator

import "time"

// RecordMetadataStep writes the report for a finished backup. The backup
// itself already succeeded, so a failure here is only logged.
type RecordMetadataStep struct {
	reportWriter ReportWriter
	nowFunc      func() time.Time
	logger       Logger
}

func NewRecordMetadataStep(reportWriter ReportWriter, nowFunc func() time.Time, logger Logger) Step {
	return &RecordMetadataStep{reportWriter: reportWriter, nowFunc: nowFunc, logger: logger}
}

func (s *RecordMetadataStep) Run(session *Session) error {
	report := Report{
		Configuration: session.Configuration(),
		Archive:       session.Archive(),
		FinalArtifact: session.FinalArtifact(),
		StartTime:     session.StartTime(),
		FinishTime:    s.nowFunc(),
	}

	path, err := s.reportWriter.Write(report)
	if err != nil {
		s.logger.Warn(LogTag, "Failed to write backup metadata: %v", err)
		return nil
	}

	s.logger.Debug(LogTag, "Backup metadata written to '%s'", path)
	return nil
}
