package receive

import (
	"context"
	"fmt"

	"github.com/signalops/signalrest/internal/cmd/base"
	"github.com/signalops/signalrest/pkg/signalrest"
)

type Command struct {
	*base.Command

	flagTimeout           int
	flagIgnoreAttachments bool
	flagIgnoreStories     bool
}

func (c *Command) Synopsis() string {
	return "Fetch pending messages for the account"
}

func (c *Command) Help() string {
	return `Usage: signalrest receive [options]

  Long-polls the gateway for pending messages and prints them.

Options:

  -config=<path>
      Path to the configuration file.

  -timeout=<seconds>
      How long the gateway should wait for new messages. Default 5.

  -ignore-attachments
      Skip downloading attachments on the gateway side.

  -ignore-stories
      Skip story messages.`
}

func (c *Command) Run(args []string) int {
	f := c.FlagSet("receive")
	f.IntVar(&c.flagTimeout, "timeout", 5, "")
	f.BoolVar(&c.flagIgnoreAttachments, "ignore-attachments", false, "")
	f.BoolVar(&c.flagIgnoreStories, "ignore-stories", false, "")
	if err := f.Parse(args); err != nil {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	options := signalrest.ReceiveOptions{Timeout: c.flagTimeout}
	if c.flagIgnoreAttachments {
		value := true
		options.IgnoreAttachments = &value
	}
	if c.flagIgnoreStories {
		value := true
		options.IgnoreStories = &value
	}

	messages, err := client.Receive(context.Background(), options)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error receiving messages: %v", err))
		return 1
	}

	if len(messages) == 0 {
		c.UI.Output("No pending messages.")
		return 0
	}

	for _, message := range messages {
		sender := message.Envelope.SourceName
		if sender == "" {
			sender = message.Envelope.Source
		}
		text := ""
		if message.Envelope.DataMessage != nil {
			text = message.Envelope.DataMessage.Message
			if info := message.Envelope.DataMessage.GroupInfo; info != nil {
				sender = fmt.Sprintf("%s (in %s)", sender, info.GroupID)
			}
		}
		c.UI.Output(fmt.Sprintf("[%d] %s: %s", message.Envelope.Timestamp, sender, text))
	}
	return 0
}
