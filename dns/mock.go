package dns

import (
	"context"
	"net"
	"slices"
)

// MockResolver is a Resolver used for testing.
// Set DNS records in the fields, which map FQDNs (with trailing dot) to values.
type MockResolver struct {
	A    map[string][]string
	AAAA map[string][]string
	TXT  map[string][]string
	MX   map[string][]*net.MX

	// Fail contains records that will return a temporary error (SERVFAIL).
	// Format: "type name", e.g. "txt example.com." where type is lowercase.
	Fail []string

	// Timeout contains records that will time out, in the same format as Fail.
	Timeout []string

	// AllAuthentic sets the default value for Authentic in responses.
	// Overridden by Authentic and Inauthentic lists.
	AllAuthentic bool

	// Authentic contains records that will have Authentic=true.
	Authentic []string

	// Inauthentic contains records that will have Authentic=false.
	Inauthentic []string
}

var _ Resolver = MockResolver{}

// mockReq represents a mock DNS request.
type mockReq struct {
	Type string // E.g. "txt", "a", "aaaa", "mx"
	Name string // FQDN with trailing dot
}

func (mr mockReq) String() string {
	return mr.Type + " " + mr.Name
}

// ensureFQDN ensures the name ends with a dot.
func ensureFQDN(name string) string {
	if len(name) == 0 || name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}

// check returns configured failures and the authentic status for a request.
func (r MockResolver) check(ctx context.Context, mr mockReq) (bool, error) {
	authentic := r.AllAuthentic

	if err := ctx.Err(); err != nil {
		return authentic, err
	}
	if slices.Contains(r.Fail, mr.String()) {
		return authentic, ErrDNSServFail
	}
	if slices.Contains(r.Timeout, mr.String()) {
		return authentic, ErrDNSTimeout
	}
	if slices.Contains(r.Authentic, mr.String()) {
		authentic = true
	}
	if slices.Contains(r.Inauthentic, mr.String()) {
		authentic = false
	}
	return authentic, nil
}

// LookupTXT returns TXT records for the given name.
func (r MockResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	fqdn := ensureFQDN(name)
	authentic, err := r.check(ctx, mockReq{"txt", fqdn})
	if err != nil {
		return Result[string]{Authentic: authentic}, err
	}

	records, ok := r.TXT[fqdn]
	if !ok || len(records) == 0 {
		return Result[string]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[string]{Records: records, Authentic: authentic}, nil
}

// LookupA returns A records for the given name.
func (r MockResolver) LookupA(ctx context.Context, name string) (Result[net.IP], error) {
	return r.lookupIP(ctx, "a", r.A, name)
}

// LookupAAAA returns AAAA records for the given name.
func (r MockResolver) LookupAAAA(ctx context.Context, name string) (Result[net.IP], error) {
	return r.lookupIP(ctx, "aaaa", r.AAAA, name)
}

func (r MockResolver) lookupIP(ctx context.Context, typ string, m map[string][]string, name string) (Result[net.IP], error) {
	fqdn := ensureFQDN(name)
	authentic, err := r.check(ctx, mockReq{typ, fqdn})
	if err != nil {
		return Result[net.IP]{Authentic: authentic}, err
	}

	var ips []net.IP
	for _, ip := range m[fqdn] {
		ips = append(ips, net.ParseIP(ip))
	}
	if len(ips) == 0 {
		return Result[net.IP]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[net.IP]{Records: ips, Authentic: authentic}, nil
}

// LookupMX returns MX records for the given name.
func (r MockResolver) LookupMX(ctx context.Context, name string) (Result[*net.MX], error) {
	fqdn := ensureFQDN(name)
	authentic, err := r.check(ctx, mockReq{"mx", fqdn})
	if err != nil {
		return Result[*net.MX]{Authentic: authentic}, err
	}

	records, ok := r.MX[fqdn]
	if !ok || len(records) == 0 {
		return Result[*net.MX]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[*net.MX]{Records: records, Authentic: authentic}, nil
}
