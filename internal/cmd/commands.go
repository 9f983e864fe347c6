package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/signalops/signalrest/internal/cmd/base"
	"github.com/signalops/signalrest/internal/cmd/commands/about"
	"github.com/signalops/signalrest/internal/cmd/commands/groups"
	"github.com/signalops/signalrest/internal/cmd/commands/qrcodelink"
	"github.com/signalops/signalrest/internal/cmd/commands/receive"
	"github.com/signalops/signalrest/internal/cmd/commands/search"
	"github.com/signalops/signalrest/internal/cmd/commands/send"
	versioncmd "github.com/signalops/signalrest/internal/cmd/commands/version"
)

// Commands is the CLI command registry.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	newBase := func() *base.Command {
		return &base.Command{UI: ui, Log: log}
	}

	Commands = map[string]cli.CommandFactory{
		"about": func() (cli.Command, error) {
			return &about.Command{Command: newBase()}, nil
		},
		"send": func() (cli.Command, error) {
			return &send.Command{Command: newBase()}, nil
		},
		"receive": func() (cli.Command, error) {
			return &receive.Command{Command: newBase()}, nil
		},
		"groups": func() (cli.Command, error) {
			return &groups.Command{Command: newBase()}, nil
		},
		"groups list": func() (cli.Command, error) {
			return &groups.ListCommand{Command: newBase()}, nil
		},
		"groups create": func() (cli.Command, error) {
			return &groups.CreateCommand{Command: newBase()}, nil
		},
		"search": func() (cli.Command, error) {
			return &search.Command{Command: newBase()}, nil
		},
		"qrcodelink": func() (cli.Command, error) {
			return &qrcodelink.Command{Command: newBase()}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: newBase()}, nil
		},
	}
}
