package groups

import (
	"github.com/mitchellh/cli"

	"github.com/signalops/signalrest/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage Signal groups"
}

func (c *Command) Help() string {
	return `Usage: signalrest groups <subcommand> [options]

  This command groups subcommands for working with Signal groups.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
