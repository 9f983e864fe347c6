package search

import (
	"context"
	"fmt"

	"github.com/signalops/signalrest/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Check which phone numbers are registered with Signal"
}

func (c *Command) Help() string {
	return `Usage: signalrest search [options] <number> [<number> ...]

  Checks each given phone number against the Signal service.

Options:

  -config=<path>
      Path to the configuration file.`
}

func (c *Command) Run(args []string) int {
	f := c.FlagSet("search")
	if err := f.Parse(args); err != nil {
		return 1
	}

	numbers := f.Args()
	if len(numbers) == 0 {
		c.UI.Error("at least one phone number is required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	results, err := client.SearchNumbers(context.Background(), numbers)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error searching numbers: %v", err))
		return 1
	}

	for _, result := range results {
		status := "not registered"
		if result.Registered {
			status = "registered"
		}
		c.UI.Output(fmt.Sprintf("%s: %s", result.Number, status))
	}
	return 0
}
