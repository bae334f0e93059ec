// Package dns provides the DNS lookups needed for DMARC policy discovery.
//
// Resolver is the interface the discovery code depends on. DNSResolver talks
// to nameservers directly using github.com/miekg/dns and can request DNSSEC
// validation, StdResolver uses the standard library, CachedResolver wraps
// either one with a cache, and MockResolver serves records from maps for
// tests.
//
// Querier adapts a Resolver to the contract of the discovery engine: a lookup
// either returns a list of answers or is absent. Non-existence, empty answers,
// timeouts and server failures are all absent.
package dns

import (
	"context"
	"errors"
	"net"
)

// DNS lookup errors.
var (
	// ErrDNSNotFound indicates the name does not exist (NXDOMAIN) or has no
	// records of the requested type.
	ErrDNSNotFound = errors.New("dns: not found")

	// ErrDNSTimeout indicates the lookup timed out.
	ErrDNSTimeout = errors.New("dns: timeout")

	// ErrDNSServFail indicates the nameserver returned SERVFAIL.
	ErrDNSServFail = errors.New("dns: server failure")

	// ErrDNSBogus indicates a SERVFAIL while DNSSEC was requested, typically a
	// DNSSEC validation failure at the recursive resolver.
	ErrDNSBogus = errors.New("dns: dnssec validation failure")

	// ErrDNSRefused indicates the nameserver refused the query.
	ErrDNSRefused = errors.New("dns: query refused")
)

// IsNotFound returns true if err indicates a non-existent name or record set.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDNSNotFound)
}

// IsTimeout returns true if err indicates a timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrDNSTimeout)
}

// IsServFail returns true if err indicates a server failure.
func IsServFail(err error) bool {
	return errors.Is(err, ErrDNSServFail) || errors.Is(err, ErrDNSBogus)
}

// IsTemporary returns true if a later attempt might succeed.
func IsTemporary(err error) bool {
	return IsTimeout(err) || IsServFail(err) || errors.Is(err, ErrDNSRefused)
}

// Result is the answer to a lookup.
type Result[T any] struct {
	// Records holds the answers.
	Records []T

	// Authentic indicates if the response was DNSSEC-validated by the
	// recursive resolver.
	Authentic bool
}

// Resolver performs the lookups needed for DMARC policy discovery.
//
// Names may be given with or without trailing dot. Implementations return
// ErrDNSNotFound for non-existent names and empty record sets.
type Resolver interface {
	// LookupTXT retrieves TXT records. Multiple character-strings of a single
	// record are joined.
	LookupTXT(ctx context.Context, name string) (Result[string], error)

	// LookupA retrieves IPv4 addresses.
	LookupA(ctx context.Context, name string) (Result[net.IP], error)

	// LookupAAAA retrieves IPv6 addresses.
	LookupAAAA(ctx context.Context, name string) (Result[net.IP], error)

	// LookupMX retrieves MX records.
	LookupMX(ctx context.Context, name string) (Result[*net.MX], error)
}
