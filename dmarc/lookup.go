package dmarc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/synqronlabs/dmarcpolicy/dns"
)

// lookupRecord looks up the DMARC record of domain at "_dmarc.<domain>".
//
// Exactly one DMARC record must be present. Absence, lookup failures,
// malformed records and multiple records all result in a nil record, with
// the error describing why.
func lookupRecord(ctx context.Context, q dns.Querier, domain string) (record Record, txt string, err error) {
	answer := q.Query(ctx, "_dmarc."+domain, dns.TypeTXT)
	if answer.Absent() {
		if answer.Err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrNoRecord, answer.Err)
		}
		return nil, "", ErrNoRecord
	}

	var n int
	var rerr error = ErrNoRecord
	for _, s := range answer.Records {
		r, isDMARC, perr := ParseRecord(s)
		if !isDMARC {
			// Not a DMARC record, skip.
			continue
		}
		if perr != nil {
			rerr = perr
			q.Logger.Debug("discarding malformed dmarc record",
				slog.String("domain", domain),
				slog.String("txt", s),
				slog.Any("error", perr),
			)
			continue
		}
		n++
		record, txt = r, s
	}

	switch n {
	case 0:
		return nil, "", rerr
	case 1:
		return record, txt, nil
	default:
		// Per RFC 7489 Section 6.6.3, multiple records mean no DMARC policy.
		return nil, "", fmt.Errorf("%w: %d records at %s", ErrMultipleRecords, n, domain)
	}
}

// LookupRecord looks up the DMARC record published by domain itself, without
// any fallback to other domains.
func (d *Discoverer) LookupRecord(ctx context.Context, domain string) (Record, error) {
	r, _, err := lookupRecord(ctx, d.querier(), normalizeDomain(domain))
	return r, err
}
