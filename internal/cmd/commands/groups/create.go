package groups

import (
	"context"
	"fmt"

	"github.com/signalops/signalrest/internal/cmd/base"
	"github.com/signalops/signalrest/pkg/signalrest"
)

type CreateCommand struct {
	*base.Command

	flagName        string
	flagDescription string
	flagMembers     base.StringSliceVar
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new group"
}

func (c *CreateCommand) Help() string {
	return `Usage: signalrest groups create [options]

Options:

  -config=<path>
      Path to the configuration file.

  -name=<name>
      The group name. Required.

  -member=<number>
      A member phone number. Repeat for multiple members. Required.

  -description=<text>
      An optional group description.`
}

func (c *CreateCommand) Run(args []string) int {
	f := c.FlagSet("groups create")
	f.StringVar(&c.flagName, "name", "", "")
	f.StringVar(&c.flagDescription, "description", "", "")
	f.Var(&c.flagMembers, "member", "")
	if err := f.Parse(args); err != nil {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	id, err := client.CreateGroup(context.Background(), signalrest.CreateGroupRequest{
		Name:        c.flagName,
		Members:     c.flagMembers.Values,
		Description: c.flagDescription,
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating group: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Created group %s", id))
	return 0
}
