package orchestrator

type ArtifactKind string

const (
	Archive          ArtifactKind = "archive"
	EncryptedArchive ArtifactKind = "encrypted_archive"
)

// BackupArtifact is a file produced by a backup run. It is reported by the
// step that created it and never deleted.
type BackupArtifact struct {
	Path string
	Kind ArtifactKind
}

func (a BackupArtifact) IsZero() bool {
	return a.Path == ""
}
