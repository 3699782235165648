package orchestrator

import (
	"time"

	"github.com/gbackup/gbackup/config"
)

type Session struct {
	configuration config.Configuration
	startTime     time.Time
	archive       BackupArtifact
	finalArtifact BackupArtifact
}

func NewSession(configuration config.Configuration, startTime time.Time) *Session {
	return &Session{configuration: configuration, startTime: startTime}
}

func (session *Session) Configuration() config.Configuration {
	return session.configuration
}

func (session *Session) SetConfiguration(configuration config.Configuration) {
	session.configuration = configuration
}

func (session *Session) StartTime() time.Time {
	return session.startTime
}

func (session *Session) Archive() BackupArtifact {
	return session.archive
}

// SetArchive records the plain archive, which is also the final artifact
// until something supersedes it.
func (session *Session) SetArchive(archive BackupArtifact) {
	session.archive = archive
	session.finalArtifact = archive
}

func (session *Session) FinalArtifact() BackupArtifact {
	return session.finalArtifact
}

func (session *Session) SetFinalArtifact(artifact BackupArtifact) {
	session.finalArtifact = artifact
}
