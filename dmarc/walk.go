package dmarc

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/synqronlabs/dmarcpolicy/utils"
)

// maxWalkLabels is the number of labels the first ancestor queried in a tree
// walk is shortened to.
const maxWalkLabels = 4

// Lookup returns the entry for domain.
func (w *TreeWalkResult) Lookup(domain string) (WalkEntry, bool) {
	if w == nil {
		return WalkEntry{}, false
	}
	for _, e := range w.Entries {
		if e.Domain == domain {
			return e, true
		}
	}
	return WalkEntry{}, false
}

// walkDomains returns the domains to query for a tree walk: the From domain,
// then its ancestors. The first ancestor is shortened to at most
// maxWalkLabels labels, each next one has the leftmost label removed.
func walkDomains(fromDomain string) []string {
	domains := []string{fromDomain}
	parent, ok := utils.Parent(fromDomain)
	if !ok {
		return domains
	}
	for d := utils.LastLabels(parent, maxWalkLabels); ok; d, ok = utils.Parent(d) {
		domains = append(domains, d)
	}
	return domains
}

// walk looks up the records of all walk domains, and annotates their psd
// status.
func (d *Discoverer) walk(ctx context.Context, log *slog.Logger, fromDomain string) *TreeWalkResult {
	domains := walkDomains(fromDomain)
	records := make([]Record, len(domains))

	if d.ParallelWalk && len(domains) > 1 {
		var g errgroup.Group
		for i, domain := range domains {
			g.Go(func() error {
				records[i] = d.lookup(ctx, log, domain)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, domain := range domains {
			records[i] = d.lookup(ctx, log, domain)
		}
	}

	w := &TreeWalkResult{Queried: domains}
	var published bool
	for i, r := range records {
		if r == nil {
			continue
		}
		e := WalkEntry{Domain: domains[i], Record: r}
		if psd := r.PSD(); psd == "y" || psd == "n" {
			e.PSD = psd
			published = true
		}
		w.Entries = append(w.Entries, e)
	}

	// Without published psd tags, the registry decides which found domain is
	// a public suffix domain. Shortest domain first.
	if !published {
		for i := len(w.Entries) - 1; i >= 0; i-- {
			if d.isParticipant(ctx, w.Entries[i].Domain) {
				w.Entries[i].PSD = "y"
				w.Entries[i].Inferred = true
				break
			}
		}
	}
	return w
}

// treeWalk finds the policy following the DMARCbis DNS tree walk. The returned
// bool is whether the record of the From domain itself is used.
func (d *Discoverer) treeWalk(ctx context.Context, log *slog.Logger, fromDomain string) (Decision, bool) {
	w := d.walk(ctx, log, fromDomain)
	dec := Decision{FromDomain: fromDomain, Walk: w}

	use := func(e WalkEntry, org, comment string) {
		dec.Record = e.Record
		dec.PolicyDomain = e.Domain
		dec.OrgDomain = org
		dec.Comment = comment
	}

	// Shortest domain first.
	for i := len(w.Entries) - 1; i >= 0; i-- {
		e := w.Entries[i]
		switch e.PSD {
		case "y":
			if e.Domain == fromDomain {
				use(e, fromDomain, CommentFromDomainIsPSD)
				return dec, true
			}
			org := utils.LastLabels(fromDomain, len(utils.Labels(e.Domain))+1)
			if oe, ok := w.Lookup(org); ok {
				use(oe, org, CommentTreeWalkBelowPSD)
				return dec, org == fromDomain
			}
			use(e, org, CommentTreeWalkBelowPSD)
			dec.PSDDomain = e.Domain
			return dec, false
		case "n":
			use(e, e.Domain, CommentTreeWalkPSDNo)
			return dec, e.Domain == fromDomain
		}
	}

	// No psd information, the longest ancestor with a record is the
	// organizational domain.
	for _, e := range w.Entries {
		if e.Domain != fromDomain {
			use(e, e.Domain, CommentTreeWalk)
			return dec, false
		}
	}

	if e, ok := w.Lookup(fromDomain); ok {
		use(e, fromDomain, CommentFromDomain)
		return dec, true
	}

	dec.OrgDomain = fromDomain
	dec.Comment = CommentFromDomainNoRecord
	return dec, false
}
