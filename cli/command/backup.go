package command

import (
	"fmt"

	"github.com/gbackup/gbackup/archive"
	"github.com/gbackup/gbackup/cli/flags"
	"github.com/gbackup/gbackup/factory"
	"github.com/gbackup/gbackup/orchestrator"
	"github.com/urfave/cli"
)

type BackupCommand struct {
}

func NewBackupCommand() BackupCommand {
	return BackupCommand{}
}

// Cli leaves flag parsing to flags.Resolver, including --help.
func (cmd BackupCommand) Cli() cli.Command {
	return cli.Command{
		Name:            "backup",
		Usage:           "Back up a directory",
		Action:          cmd.Action,
		SkipFlagParsing: true,
		HideHelp:        true,
		Hidden:          true,
	}
}

func (cmd BackupCommand) Action(c *cli.Context) error {
	logger := factory.BuildLogger(c.GlobalBool("debug"))
	logger.Debug(orchestrator.LogTag, "gbackup version %s", c.App.Version)

	mode, err := archive.ParseExclusionMode(c.GlobalString("exclusion-mode"))
	if err != nil {
		return redCliError(err)
	}

	defaults, err := factory.BuildDefaults(logger)
	if err != nil {
		return redCliError(err)
	}

	configuration, err := flags.NewResolver(defaults).Resolve(c.Args())
	if err == flags.ErrHelp {
		fmt.Fprint(c.App.Writer, flags.HelpText)
		return nil
	}
	if err != nil {
		return usageError(err)
	}

	backuper := factory.BuildBackuper(logger, mode)
	finalArtifact, backupErr := backuper.Backup(configuration)
	if backupErr != nil {
		return processError(backupErr, configuration.DestinationDirectory)
	}

	fmt.Fprintln(c.App.Writer, finalArtifact.Path)
	return nil
}
