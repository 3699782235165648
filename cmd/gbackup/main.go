package main

import (
	"os"

	"github.com/gbackup/gbackup/cli/command"
	"github.com/urfave/cli"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version

	app.Name = "gbackup"
	app.HelpName = "gbackup"
	app.Usage = "Personal directory backups"
	app.HideHelp = true
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "debug",
			EnvVar: "GBACKUP_DEBUG",
			Usage:  "Enable debug logs",
		},
		cli.StringFlag{
			Name:   "exclusion-mode",
			Value:  "delegate",
			EnvVar: "GBACKUP_EXCLUSION_MODE",
			Usage:  "How ignore patterns are applied: delegate or filter",
		},
	}

	backupCommand := command.NewBackupCommand().Cli()
	app.Commands = []cli.Command{backupCommand}

	// Every invocation is a backup; the backup command parses its own
	// arguments.
	args := append([]string{os.Args[0], backupCommand.Name}, os.Args[1:]...)
	if err := app.Run(args); err != nil {
		os.Exit(1)
	}
}
