// Package cli holds what the commands share: common flags, loading the
// configuration and setting up logging.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/synqronlabs/dmarcpolicy/config"
	"github.com/synqronlabs/dmarcpolicy/internal/logging"
)

// Common are the flags of every command.
type Common struct {
	ConfigPath string
	Verbose    bool
	LogFormat  string
}

// AddFlags registers the common flags.
func (c *Common) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.ConfigPath, "config", "c", "", "configuration file, see describe-config")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "verbose output, with debug logging")
	fs.StringVar(&c.LogFormat, "log-format", string(logging.FormatAuto), "log format: auto, text, logfmt or json")
}

// Load reads the configuration file, or returns the default configuration
// without one, and returns a logger writing to w.
func (c *Common) Load(w io.Writer) (config.Config, *slog.Logger, error) {
	conf := config.Default()
	if c.ConfigPath != "" {
		var err error
		conf, err = config.Load(c.ConfigPath)
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("loading %s: %w", c.ConfigPath, err)
		}
	}
	if c.Verbose {
		conf.LogLevel = "debug"
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	return conf, logging.New(w, conf.Level(), format), nil
}

// DescribeConfigCmd returns a command printing an example configuration file.
func DescribeConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe-config",
		Short: "Print an example configuration file with documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Describe(cmd.OutOrStdout())
		},
	}
}

// ExitError makes a command exit with Code without printing an error.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
