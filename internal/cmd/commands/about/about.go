package about

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/signalops/signalrest/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show the gateway's versions, build, mode, and capabilities"
}

func (c *Command) Help() string {
	return `Usage: signalrest about [options]

  Queries the gateway's introspection endpoint and prints what it supports.
  Gateways that predate the endpoint are reported as legacy v1 backends.

Options:

  -config=<path>
      Path to the configuration file.`
}

func (c *Command) Run(args []string) int {
	f := c.FlagSet("about")
	if err := f.Parse(args); err != nil {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	about, err := client.About(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error querying gateway: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Versions: %s", strings.Join(about.Versions, ", ")))
	c.UI.Output(fmt.Sprintf("Build:    %d", about.Build))
	c.UI.Output(fmt.Sprintf("Mode:     %s", about.Mode))

	if len(about.Capabilities) == 0 {
		c.UI.Output("Capabilities: none advertised")
		return 0
	}

	endpoints := make([]string, 0, len(about.Capabilities))
	for endpoint := range about.Capabilities {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)

	c.UI.Output("Capabilities:")
	for _, endpoint := range endpoints {
		c.UI.Output(fmt.Sprintf("  %s: %s", endpoint, strings.Join(about.Capabilities[endpoint], ", ")))
	}
	return 0
}
