// Package encryption protects a finished archive with a symmetric
// passphrase using gpg.
package encryption

import (
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/gbackup/gbackup/runner"
)

const Extension = ".gpg"

type GpgEncryptor struct {
	runner runner.CommandRunner
	logger orchestrator.Logger
}

func NewGpgEncryptor(commandRunner runner.CommandRunner, logger orchestrator.Logger) GpgEncryptor {
	return GpgEncryptor{runner: commandRunner, logger: logger}
}

func EncryptedPath(archivePath string) string {
	return archivePath + Extension
}

// Encrypt writes {archivePath}.gpg next to the archive. The unencrypted
// archive is left in place.
func (e GpgEncryptor) Encrypt(archivePath, keyFile string) (orchestrator.BackupArtifact, error) {
	encryptedPath := EncryptedPath(archivePath)
	e.logger.Info(orchestrator.LogTag, "Encrypting archive with key file '%s'...", keyFile)

	result, err := e.runner.Run("gpg", Arguments(archivePath, encryptedPath, keyFile)...)
	if err != nil {
		return orchestrator.BackupArtifact{}, orchestrator.NewEncryptionError(-1, err.Error())
	}
	if !result.Succeeded() {
		return orchestrator.BackupArtifact{}, orchestrator.NewEncryptionError(result.ExitCode, result.Stderr)
	}

	return orchestrator.BackupArtifact{Path: encryptedPath, Kind: orchestrator.EncryptedArchive}, nil
}

// Arguments never prompts: the passphrase is read from keyFile and an
// existing output file is overwritten.
func Arguments(archivePath, encryptedPath, keyFile string) []string {
	return []string{
		"--batch",
		"--yes",
		"--passphrase-file", keyFile,
		"--output", encryptedPath,
		"--symmetric", archivePath,
	}
}
