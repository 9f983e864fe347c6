package send

import (
	"context"
	"fmt"
	"strings"

	"github.com/signalops/signalrest/internal/cmd/base"
	"github.com/signalops/signalrest/pkg/signalrest"
)

type Command struct {
	*base.Command

	flagMessage     string
	flagGroup       string
	flagRecipients  base.StringSliceVar
	flagAttachments base.StringSliceVar
}

func (c *Command) Synopsis() string {
	return "Send a message to recipients or a group"
}

func (c *Command) Help() string {
	return `Usage: signalrest send [options]

  Sends a message. Target either individual recipients (-recipient,
  repeatable) or a group (-group), not both.

  Attachments are file paths, repeatable. Sending more than one requires a
  gateway that speaks the v2 API.

Options:

  -config=<path>
      Path to the configuration file.

  -message=<text>
      The message text.

  -recipient=<number>
      A recipient phone number. Repeat for multiple recipients.

  -group=<id>
      A group id to send to instead of individual recipients.

  -attachment=<path>
      A file to attach. Repeat for multiple attachments.`
}

func (c *Command) Run(args []string) int {
	f := c.FlagSet("send")
	f.StringVar(&c.flagMessage, "message", "", "")
	f.StringVar(&c.flagGroup, "group", "", "")
	f.Var(&c.flagRecipients, "recipient", "")
	f.Var(&c.flagAttachments, "attachment", "")
	if err := f.Parse(args); err != nil {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	request := signalrest.SendMessageRequest{
		Message:    c.flagMessage,
		Recipients: c.flagRecipients.Values,
		GroupID:    c.flagGroup,
	}
	for _, path := range c.flagAttachments.Values {
		request.Attachments = append(request.Attachments, signalrest.FileAttachment(path))
	}

	response, err := client.SendMessage(context.Background(), request)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error sending message: %v", err))
		return 1
	}

	target := strings.Join(c.flagRecipients.Values, ", ")
	if c.flagGroup != "" {
		target = "group " + c.flagGroup
	}
	if response.Timestamp != 0 {
		c.UI.Output(fmt.Sprintf("Sent to %s (timestamp %d)", target, response.Timestamp))
	} else {
		c.UI.Output(fmt.Sprintf("Sent to %s", target))
	}
	return 0
}
