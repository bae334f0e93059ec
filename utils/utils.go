package utils

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// ErrNoDomain is returned by DomainPart for addresses without a domain.
var ErrNoDomain = errors.New("no domain in address")

// NormalizeDomain lower-cases a domain name and removes surrounding
// whitespace and a trailing dot.
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
}

// Labels returns the labels of a normalized domain, or nil for an empty name.
func Labels(domain string) []string {
	if domain == "" {
		return nil
	}
	return strings.Split(domain, ".")
}

// LastLabels returns the domain made of the last n labels of domain. If the
// domain has n labels or fewer, it is returned as is.
func LastLabels(domain string, n int) string {
	t := Labels(domain)
	if n >= len(t) {
		return domain
	}
	if n <= 0 {
		return ""
	}
	return strings.Join(t[len(t)-n:], ".")
}

// Parent strips the leftmost label. ok is false for single-label names.
func Parent(domain string) (parent string, ok bool) {
	_, parent, ok = strings.Cut(domain, ".")
	if !ok || parent == "" {
		return "", false
	}
	return parent, true
}

// DomainPart returns the normalized domain of an email address. Addresses in
// Authentication-Results headers often carry angle brackets or a local part
// where only a domain is expected, both are tolerated.
func DomainPart(address string) (string, error) {
	address = strings.Trim(strings.TrimSpace(address), "<>")
	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return "", ErrNoDomain
	}
	domain := NormalizeDomain(address[at+1:])
	if domain == "" {
		return "", ErrNoDomain
	}
	return domain, nil
}

// ContainsNonASCII checks if a string contains any non-ASCII characters (bytes > 127).
func ContainsNonASCII(s string) bool {
	for _, v := range s {
		if v >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// GenerateID creates a unique, time-sortable identifier, used to correlate
// the log lines of a single authentication request.
func GenerateID() string {
	return ulid.Make().String()
}
