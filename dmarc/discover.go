package dmarc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/synqronlabs/dmarcpolicy/dns"
	"github.com/synqronlabs/dmarcpolicy/publicsuffix"
	"github.com/synqronlabs/dmarcpolicy/utils"
)

// Mode is a policy discovery convention.
type Mode int

const (
	// ModeLegacy looks up the From domain, then its organizational domain
	// (RFC 7489).
	ModeLegacy Mode = iota

	// ModePSD is ModeLegacy, followed by the public suffix domain when it is a
	// registered PSD DMARC participant (RFC 9091).
	ModePSD

	// ModeTreeWalk walks the DNS tree from the From domain towards the root
	// (DMARCbis).
	ModeTreeWalk
)

func (m Mode) String() string {
	switch m {
	case ModePSD:
		return "psd"
	case ModeTreeWalk:
		return "treewalk"
	default:
		return "legacy"
	}
}

// ParseMode parses a discovery mode name, case-insensitively. Accepted are
// "dmarc" and "legacy", "psd", "dmarcbis" and "treewalk".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dmarc", "legacy", "":
		return ModeLegacy, nil
	case "psd":
		return ModePSD, nil
	case "dmarcbis", "treewalk":
		return ModeTreeWalk, nil
	}
	return ModeLegacy, fmt.Errorf("unknown discovery mode %q", s)
}

// Provenance comments of a Decision.
const (
	CommentFromDomain         = "Used From Domain Record"
	CommentOrgDomain          = "Used Org Domain Record"
	CommentPSD                = "Used Public Suffix Domain Record"
	CommentTreeWalk           = "Used Tree Walk Record"
	CommentTreeWalkPSDNo      = "Used Tree Walk Record which is PSD=n"
	CommentFromDomainIsPSD    = "Used From Domain which is also PSD"
	CommentTreeWalkBelowPSD   = "Used Tree Walk, org one level below PSD"
	CommentFromDomainNoRecord = "From domain has no DMARC record"
)

// Registry answers whether a domain is a PSD DMARC participant. See
// psd.Registry.
type Registry interface {
	IsParticipant(ctx context.Context, name string) bool
}

// Discoverer finds the DMARC policy that governs a From domain.
//
// A Discoverer is safe for concurrent use, its reference data is not modified.
type Discoverer struct {
	// Resolver is the DNS resolver to use. Required.
	Resolver dns.Resolver

	// Suffixes determines organizational domains. If nil, the builtin public
	// suffix list is used.
	Suffixes publicsuffix.Ruleset

	// Registry determines PSD DMARC participation. If nil, no domain is a
	// participant.
	Registry Registry

	// Logger for discovery events. Optional.
	Logger *slog.Logger

	// ParallelWalk runs the DNS queries of a tree walk concurrently.
	ParallelWalk bool
}

// Found returns whether a usable record, one with a policy, was found.
func (d Decision) Found() bool {
	return d.Record != nil && d.Record.HasPolicy()
}

// PolicyTuple is the policy-only result of discovery, for inspection tools.
type PolicyTuple struct {
	FromDomain   string `json:"fromDomain"`
	PolicyDomain string `json:"policyDomain"`
	Comment      string `json:"comment"`
	Policy       Policy `json:"policy"`
	Record       Record `json:"record"`
	OrgDomain    string `json:"orgDomain"`
}

// PolicyTuple returns the policy-only view of the decision. Without usable
// record, the comment is "None" and there is no policy domain.
func (d Decision) PolicyTuple() PolicyTuple {
	t := PolicyTuple{
		FromDomain:   d.FromDomain,
		PolicyDomain: d.PolicyDomain,
		Comment:      d.Comment,
		Policy:       d.Policy,
		Record:       d.Record,
		OrgDomain:    d.OrgDomain,
	}
	if !d.Found() {
		t.Comment = "None"
		t.PolicyDomain = ""
	}
	return t
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d *Discoverer) querier() dns.Querier {
	return dns.Querier{Resolver: d.Resolver, Logger: d.logger()}
}

func (d *Discoverer) orgDomain(domain string) string {
	return orgDomain(d.Suffixes, domain)
}

func (d *Discoverer) isParticipant(ctx context.Context, name string) bool {
	if d.Registry == nil {
		return false
	}
	return d.Registry.IsParticipant(ctx, name)
}

// Discover determines the DMARC policy for fromDomain using mode.
//
// Discover does not fail: DNS failures and invalid records degrade to "no
// record" for the domain being looked up, and are logged at debug level.
func (d *Discoverer) Discover(ctx context.Context, fromDomain string, mode Mode) Decision {
	fromDomain = normalizeDomain(fromDomain)
	log := d.logger().With(slog.String("from_domain", fromDomain), slog.String("mode", mode.String()))

	var dec Decision
	var fromRecord bool
	switch mode {
	case ModeTreeWalk:
		dec, fromRecord = d.treeWalk(ctx, log, fromDomain)
	case ModePSD:
		dec, fromRecord = d.legacy(ctx, log, fromDomain)
		if dec.Record == nil {
			dec = d.publicSuffix(ctx, log, fromDomain)
		}
	default:
		dec, fromRecord = d.legacy(ctx, log, fromDomain)
	}

	if dec.Record != nil {
		if !dec.Record.HasPolicy() {
			log.Debug("dmarc record has no policy, ignoring",
				slog.String("policy_domain", dec.PolicyDomain),
				slog.String("record", dec.Record.String()),
				slog.Any("error", ErrNoPolicy),
			)
		} else {
			dec.Policy = d.effectivePolicy(ctx, log, fromDomain, dec.Record, fromRecord)
		}
	}

	metricDiscovery.WithLabelValues(mode.String(), commentLabel(dec)).Inc()
	log.Debug("dmarc policy discovered",
		slog.String("policy_domain", dec.PolicyDomain),
		slog.String("org_domain", dec.OrgDomain),
		slog.String("psd_domain", dec.PSDDomain),
		slog.String("comment", dec.Comment),
		slog.String("policy", string(dec.Policy)),
		slog.Bool("found", dec.Found()),
	)
	return dec
}

func commentLabel(dec Decision) string {
	if !dec.Found() {
		return "none"
	}
	return dec.Comment
}

// lookup is lookupRecord with logging of the reason a record is absent.
func (d *Discoverer) lookup(ctx context.Context, log *slog.Logger, domain string) Record {
	r, _, err := lookupRecord(ctx, d.querier(), domain)
	if err != nil {
		log.Debug("no dmarc record", slog.String("domain", domain), slog.Any("error", err))
		return nil
	}
	return r
}

// legacy looks up the From domain, then the organizational domain. The
// returned bool is whether the record of the From domain itself is used.
func (d *Discoverer) legacy(ctx context.Context, log *slog.Logger, fromDomain string) (Decision, bool) {
	dec := Decision{FromDomain: fromDomain}

	if r := d.lookup(ctx, log, fromDomain); r != nil {
		dec.Record = r
		dec.PolicyDomain = fromDomain
		dec.OrgDomain = fromDomain
		dec.Comment = CommentFromDomain
		return dec, true
	}

	org := d.orgDomain(fromDomain)
	if org == fromDomain || org == "" {
		// Already at the organizational domain, no fallback.
		return dec, false
	}
	if r := d.lookup(ctx, log, org); r != nil {
		dec.Record = r
		dec.PolicyDomain = org
		dec.OrgDomain = org
		dec.Comment = CommentOrgDomain
	}
	return dec, false
}

// publicSuffix looks up the record of the public suffix domain above the
// organizational domain, if it is a registered participant.
func (d *Discoverer) publicSuffix(ctx context.Context, log *slog.Logger, fromDomain string) Decision {
	dec := Decision{FromDomain: fromDomain}

	org := d.orgDomain(fromDomain)
	suffix, ok := utils.Parent(org)
	if !ok {
		return dec
	}
	if !d.isParticipant(ctx, suffix) {
		log.Debug("public suffix is not a psd participant", slog.String("suffix", suffix))
		return dec
	}
	if r := d.lookup(ctx, log, suffix); r != nil {
		dec.Record = r
		dec.PolicyDomain = suffix
		dec.OrgDomain = org
		dec.PSDDomain = suffix
		dec.Comment = CommentPSD
	}
	return dec
}

// effectivePolicy applies the p, sp and np fallback. When the From domain
// published the record itself, p applies. Otherwise sp applies, or np if it is
// published and the From domain does not exist.
func (d *Discoverer) effectivePolicy(ctx context.Context, log *slog.Logger, fromDomain string, r Record, fromRecord bool) Policy {
	if fromRecord {
		return r.Policy()
	}
	np, ok := r.NonexistentPolicy()
	if !ok {
		return r.SubdomainPolicy()
	}
	if d.exists(ctx, fromDomain) {
		return r.SubdomainPolicy()
	}
	log.Debug("from domain does not exist, applying np", slog.String("np", string(np)))
	return np
}

// exists checks for A, MX and AAAA records, in that order.
func (d *Discoverer) exists(ctx context.Context, domain string) bool {
	q := d.querier()
	for _, t := range []dns.RecordType{dns.TypeA, dns.TypeMX, dns.TypeAAAA} {
		if !q.Query(ctx, domain, t).Absent() {
			return true
		}
	}
	return false
}
