// Command dmarcpolicyfind finds the DMARC policy that applies to a domain.
//
// There are three conventions for DMARC policy discovery:
//
//   - DMARC, RFC 7489: the domain, then its organizational domain.
//   - PSD, RFC 9091: as DMARC, then the public suffix domain if it
//     participates in PSD DMARC.
//   - DMARCbis: a DNS tree walk from the domain towards the root.
//
// Select one or more with -s. The default comes from the configuration file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/synqronlabs/dmarcpolicy/internal/cli"
)

func main() {
	err := newRootCmd().Execute()
	var exit cli.ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "dmarcpolicyfind:", err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var common cli.Common
	var opts options

	cmd := &cobra.Command{
		Use:           "dmarcpolicyfind [flags] domain",
		Short:         "Find the DMARC policy for a domain, usually the From domain of a message",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := common.Load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			modes, err := parseModes(opts.selects, conf.Mode)
			if err != nil {
				return err
			}
			a, err := conf.Build(log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.quiet {
				out = io.Discard
			}
			opts.verbose = common.Verbose
			found, err := find(cmd.Context(), out, a.Discoverer, args[0], modes, opts)
			if err != nil {
				return err
			}
			if opts.quiet && !found {
				return cli.ExitError{Code: 1}
			}
			return nil
		},
	}

	common.AddFlags(cmd.Flags())
	cmd.Flags().StringSliceVarP(&opts.selects, "select", "s", nil, "discovery method: DMARC, PSD or DMARCbis; repeat for multiple methods")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "no output; exit 0 when a policy is found, 1 otherwise")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or msgpack")
	cmd.AddCommand(cli.DescribeConfigCmd())
	return cmd
}
