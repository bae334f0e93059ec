// Command authheaders reads a message and prints an Authentication-Results
// header with its DMARC result.
//
// SPF and DKIM outcomes are taken from flags, or with --prev from the topmost
// Authentication-Results header of the message.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synqronlabs/dmarcpolicy/dmarc"
	"github.com/synqronlabs/dmarcpolicy/internal/cli"
)

func main() {
	err := newRootCmd().Execute()
	var exit cli.ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "authheaders:", err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var common cli.Common
	var opts options
	var mode string
	var multiFrom bool

	cmd := &cobra.Command{
		Use:           "authheaders [flags] [message-file]",
		Short:         "Print the DMARC Authentication-Results header for a message, read from stdin or a file",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := common.Load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				conf.Mode = mode
			}
			if cmd.Flags().Changed("multifrom") {
				conf.MultiFrom = multiFrom
			}
			a, err := conf.Build(log)
			if err != nil {
				return err
			}

			if opts.authservID == "" {
				opts.authservID = conf.AuthservID
			}
			if opts.authservID == "" {
				opts.authservID, err = os.Hostname()
				if err != nil {
					return fmt.Errorf("determining authserv-id: %w", err)
				}
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			res, header, err := authenticate(cmd.Context(), in, a, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Authentication-Results: %s\n", header)
			if opts.exitCode && res.Status != dmarc.StatusPass {
				return cli.ExitError{Code: 1}
			}
			return nil
		},
	}

	common.AddFlags(cmd.Flags())
	f := cmd.Flags()
	f.StringVar(&opts.authservID, "authserv-id", "", "authentication service identifier, default from config or the host name")
	f.StringVar(&opts.spf, "spf", "", "SPF result: pass, fail, softfail, neutral, none, temperror or permerror")
	f.StringVar(&opts.mailFrom, "mailfrom", "", "MAIL FROM address or domain the SPF result is for")
	f.StringVar(&opts.dkim, "dkim", "", "DKIM result")
	f.StringVar(&opts.dkimDomain, "dkim-domain", "", "d= domain of the DKIM signature")
	f.StringVar(&opts.arc, "arc", "", "ARC chain validation result")
	f.BoolVar(&opts.prev, "prev", false, "use the results of the topmost Authentication-Results header of the message")
	f.StringVar(&mode, "mode", "", "discovery mode: dmarc, psd or dmarcbis, overrides config")
	f.BoolVar(&multiFrom, "multifrom", false, "evaluate messages with multiple From addresses, overrides config")
	f.BoolVar(&opts.exitCode, "exit-code", false, "exit 1 when the result is not pass")
	cmd.AddCommand(cli.DescribeConfigCmd())
	return cmd
}
