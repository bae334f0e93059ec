package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/emersion/go-message/textproto"
	"github.com/emersion/go-msgauth/authres"

	"github.com/synqronlabs/dmarcpolicy/dmarc"
)

type options struct {
	authservID string
	spf        string
	mailFrom   string
	dkim       string
	dkimDomain string
	arc        string
	prev       bool
	exitCode   bool
}

// flagOutcomes returns the outcomes given as flags.
func (o options) flagOutcomes() dmarc.Outcomes {
	var l dmarc.Outcomes
	if o.spf != "" {
		l = append(l, dmarc.AuthOutcome{Kind: dmarc.KindSPF, Result: resultValue(o.spf), Domain: o.mailFrom})
	}
	if o.dkim != "" {
		l = append(l, dmarc.AuthOutcome{Kind: dmarc.KindDKIM, Result: resultValue(o.dkim), Domain: o.dkimDomain})
	}
	if o.arc != "" {
		l = append(l, dmarc.AuthOutcome{Kind: dmarc.KindARC, Result: resultValue(o.arc)})
	}
	return l
}

func resultValue(s string) authres.ResultValue {
	return authres.ResultValue(strings.ToLower(strings.TrimSpace(s)))
}

// previous returns the outcomes and results of the topmost
// Authentication-Results header that can be parsed.
func previous(log *slog.Logger, hdr textproto.Header) (dmarc.Outcomes, []authres.Result) {
	for fields := hdr.FieldsByKey("Authentication-Results"); fields.Next(); {
		value := strings.NewReplacer("\r\n", "", "\n", "").Replace(fields.Value())
		_, outcomes, results, err := dmarc.OutcomesFromHeader(value)
		if err != nil {
			log.Debug("skipping authentication-results header", slog.Any("error", err))
			continue
		}
		return outcomes, results
	}
	return nil, nil
}

// authenticate reads the message header from r, checks DMARC and returns the
// result with the Authentication-Results header value.
//
// Outcomes given as flags replace previous results of the same kind. Other
// previous results are kept in the header, except for DMARC which is
// replaced by the new result.
func authenticate(ctx context.Context, r io.Reader, a *dmarc.Authenticator, opts options) (dmarc.AggregateResult, string, error) {
	hdr, err := textproto.ReadHeader(bufio.NewReader(r))
	if err != nil {
		return dmarc.AggregateResult{}, "", fmt.Errorf("reading message header: %w", err)
	}

	outcomes := opts.flagOutcomes()
	results := outcomes.AuthResults()
	if opts.prev {
		log := a.Logger
		if log == nil {
			log = slog.Default()
		}
		replaced := []dmarc.Kind{dmarc.KindDMARC}
		for _, o := range outcomes {
			replaced = append(replaced, o.Kind)
		}
		prevOutcomes, prevResults := previous(log, hdr)
		for _, o := range prevOutcomes {
			if !slices.Contains(replaced, o.Kind) {
				outcomes = append(outcomes, o)
			}
		}
		results = append(results, dmarc.FilterResults(prevResults, replaced...)...)
	}

	res := a.Check(ctx, dmarc.FromHeaders(hdr), outcomes)
	return res, dmarc.FormatHeader(opts.authservID, results, res.AuthResult()), nil
}
