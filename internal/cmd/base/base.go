// Package base carries the plumbing shared by all CLI commands: the UI,
// the logger, config loading, and client construction.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/signalops/signalrest/internal/config"
	"github.com/signalops/signalrest/pkg/signalrest"
)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	flagConfig string
}

// FlagSet returns a flag set pre-populated with the flags every command
// shares.
func (c *Command) FlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(&uiErrorWriter{ui: c.UI})
	f.StringVar(&c.flagConfig, "config", "",
		"Path to the configuration file (default: $SIGNALREST_CONFIG, then ./signalrest.hcl)")
	return f
}

// Client loads the configuration and builds a gateway client.
func (c *Command) Client() (*signalrest.Client, error) {
	fileConfig, err := config.FromFile(c.flagConfig)
	if err != nil {
		return nil, err
	}
	clientConfig, err := fileConfig.ClientConfig()
	if err != nil {
		return nil, err
	}
	clientConfig.Logger = c.Log
	return signalrest.New(clientConfig)
}

// StringSliceVar collects repeatable string flags.
type StringSliceVar struct {
	Values []string
}

func (s *StringSliceVar) String() string {
	return strings.Join(s.Values, ",")
}

func (s *StringSliceVar) Set(value string) error {
	if value == "" {
		return fmt.Errorf("empty value")
	}
	s.Values = append(s.Values, value)
	return nil
}

// uiErrorWriter routes flag-parsing output through the command UI.
type uiErrorWriter struct {
	ui cli.Ui
}

func (w *uiErrorWriter) Write(p []byte) (int, error) {
	w.ui.Error(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
