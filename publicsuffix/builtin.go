package publicsuffix

import (
	"golang.org/x/net/publicsuffix"
)

// builtin uses the list compiled into golang.org/x/net/publicsuffix.
type builtin struct{}

// Builtin returns a Ruleset backed by the public suffix list that is
// compiled into golang.org/x/net/publicsuffix. It includes private domains.
func Builtin() Ruleset {
	return builtin{}
}

func (builtin) PublicSuffix(domain string) string {
	suffix, _ := publicsuffix.PublicSuffix(normalize(domain))
	return suffix
}

func (builtin) OrganizationalDomain(domain string) string {
	domain = normalize(domain)
	if domain == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		// The domain is a public suffix itself, or invalid, like "localhost".
		return domain
	}
	return etld1
}
