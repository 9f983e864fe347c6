package version

import (
	"github.com/signalops/signalrest/internal/cmd/base"
	"github.com/signalops/signalrest/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: signalrest version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("signalrest " + version.Version)
	return 0
}
