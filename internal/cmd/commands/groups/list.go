package groups

import (
	"context"
	"fmt"

	"github.com/signalops/signalrest/internal/cmd/base"
)

type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List all groups the account is a member of"
}

func (c *ListCommand) Help() string {
	return `Usage: signalrest groups list [options]

Options:

  -config=<path>
      Path to the configuration file.`
}

func (c *ListCommand) Run(args []string) int {
	f := c.FlagSet("groups list")
	if err := f.Parse(args); err != nil {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	groups, err := client.ListGroups(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing groups: %v", err))
		return 1
	}

	if len(groups) == 0 {
		c.UI.Output("No groups.")
		return 0
	}
	for _, group := range groups {
		blocked := ""
		if group.Blocked {
			blocked = " (blocked)"
		}
		c.UI.Output(fmt.Sprintf("%s  %s  %d members%s", group.ID, group.Name, len(group.Members), blocked))
	}
	return 0
}
