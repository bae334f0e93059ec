package dmarc

import (
	"github.com/synqronlabs/dmarcpolicy/publicsuffix"
	"github.com/synqronlabs/dmarcpolicy/utils"
)

func normalizeDomain(domain string) string {
	return utils.NormalizeDomain(domain)
}

// orgDomain returns the organizational domain using rules, or the builtin
// public suffix list if rules is nil.
func orgDomain(rules publicsuffix.Ruleset, domain string) string {
	if rules == nil {
		rules = publicsuffix.Builtin()
	}
	return rules.OrganizationalDomain(domain)
}

// DomainsAligned checks if two domains are aligned according to the given
// alignment mode.
//
// In strict mode, the domains must match exactly.
// In relaxed mode, the organizational domains must match.
func DomainsAligned(rules publicsuffix.Ruleset, domain1, domain2 string, alignment Align) bool {
	d1 := normalizeDomain(domain1)
	d2 := normalizeDomain(domain2)
	if d1 == "" || d2 == "" {
		return false
	}

	if alignment == AlignStrict {
		return d1 == d2
	}

	// Relaxed alignment: organizational domains must match
	return orgDomain(rules, d1) == orgDomain(rules, d2)
}
