package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/synqronlabs/dmarcpolicy/dmarc"
)

type options struct {
	selects []string
	quiet   bool
	format  string
	verbose bool
}

// methodName returns the name of mode as selected with -s.
func methodName(mode dmarc.Mode) string {
	switch mode {
	case dmarc.ModePSD:
		return "PSD"
	case dmarc.ModeTreeWalk:
		return "DMARCbis"
	default:
		return "DMARC"
	}
}

// parseModes parses the selected methods, in order and without duplicates.
// Without selection, the configured mode is used.
func parseModes(selects []string, configured string) ([]dmarc.Mode, error) {
	if len(selects) == 0 {
		selects = []string{configured}
	}
	var modes []dmarc.Mode
	for _, s := range selects {
		m, err := dmarc.ParseMode(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(modes, m) {
			modes = append(modes, m)
		}
	}
	return modes, nil
}

type methodResult struct {
	Method string `json:"method"`
	dmarc.PolicyTuple
	Walk *dmarc.TreeWalkResult `json:"walk,omitempty"`
}

// find discovers the policy for domain with each mode and writes the results
// to w. It returns whether any mode found a policy.
func find(ctx context.Context, w io.Writer, d *dmarc.Discoverer, domain string, modes []dmarc.Mode, opts options) (bool, error) {
	var found bool
	decisions := make([]dmarc.Decision, len(modes))
	results := make([]methodResult, len(modes))
	for i, mode := range modes {
		dec := d.Discover(ctx, domain, mode)
		found = found || dec.Found()
		decisions[i] = dec
		results[i] = methodResult{Method: methodName(mode), PolicyTuple: dec.PolicyTuple()}
		if opts.verbose {
			results[i].Walk = dec.Walk
		}
	}

	switch opts.format {
	case "", "text":
		return found, writeText(w, results)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return found, enc.Encode(results)
	case "msgpack":
		var b []byte
		for i := range decisions {
			var err error
			b, err = decisions[i].MarshalMsg(b)
			if err != nil {
				return found, err
			}
		}
		_, err := w.Write(b)
		return found, err
	}
	return found, fmt.Errorf("unknown output format %q", opts.format)
}

func writeText(w io.Writer, results []methodResult) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		policy := string(r.Policy)
		if policy == "" {
			policy = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Method+":", r.FromDomain)
		fmt.Fprintf(tw, "  comment:\t%s\n", r.Comment)
		fmt.Fprintf(tw, "  policy:\t%s\n", policy)
		if r.PolicyDomain != "" {
			fmt.Fprintf(tw, "  policy domain:\t%s\n", r.PolicyDomain)
			fmt.Fprintf(tw, "  org domain:\t%s\n", r.OrgDomain)
			fmt.Fprintf(tw, "  record:\t%s\n", r.Record)
		}
		if r.Walk != nil {
			for _, e := range r.Walk.Entries {
				psd := e.PSD
				if e.Inferred {
					psd += " (registry)"
				}
				fmt.Fprintf(tw, "  walk:\t%s\t%s\tpsd=%s\n", e.Domain, e.Record, psd)
			}
		}
	}
	return tw.Flush()
}
