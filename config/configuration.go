package config

import "path/filepath"

const DefaultBackupSubdirectory = "Documents/Backups"

// Configuration describes a single backup run. IgnoreFile and KeyFile are
// unset when empty.
type Configuration struct {
	SourceDirectory      string
	DestinationDirectory string
	IgnoreFile           string
	KeyFile              string
}

func Defaults(homeDir string) Configuration {
	return Configuration{
		SourceDirectory:      homeDir,
		DestinationDirectory: filepath.Join(homeDir, DefaultBackupSubdirectory),
	}
}

func (c Configuration) HasIgnoreFile() bool {
	return c.IgnoreFile != ""
}

func (c Configuration) Encrypted() bool {
	return c.KeyFile != ""
}
