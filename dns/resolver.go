package dns

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	mdns "github.com/miekg/dns"
)

// ResolverConfig contains configuration for the DNS resolver.
type ResolverConfig struct {
	// Nameservers is a list of DNS servers to query (e.g., "8.8.8.8:53").
	// If empty, system resolvers from /etc/resolv.conf are used,
	// falling back to public DNS (8.8.8.8, 1.1.1.1).
	Nameservers []string

	// DNSSEC sets the DNSSEC OK bit on queries.
	// Requires DNSSEC-validating upstream resolvers.
	// When enabled, the Authentic field in Result indicates validation status.
	DNSSEC bool

	// Timeout is the timeout for individual DNS queries. Default is 5 seconds.
	Timeout time.Duration

	// Retries is the number of retries for failed queries. Default is 2.
	Retries int
}

// DNSResolver implements the Resolver interface using github.com/miekg/dns.
type DNSResolver struct {
	config ResolverConfig
	client *mdns.Client
}

// NewResolver creates a new DNS resolver.
func NewResolver(config ResolverConfig) *DNSResolver {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Retries == 0 {
		config.Retries = 2
	}
	if len(config.Nameservers) == 0 {
		config.Nameservers = getSystemNameservers()
	}

	return &DNSResolver{
		config: config,
		client: &mdns.Client{
			Timeout: config.Timeout,
		},
	}
}

// getSystemNameservers tries to get system DNS servers from resolv.conf.
func getSystemNameservers() []string {
	config, err := mdns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		return []string{"8.8.8.8:53", "1.1.1.1:53"}
	}

	servers := make([]string, 0, len(config.Servers))
	for _, s := range config.Servers {
		servers = append(servers, net.JoinHostPort(s, config.Port))
	}
	return servers
}

// ensureAbsolute ensures the domain name ends with a dot (FQDN format).
func ensureAbsolute(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}

// query performs a DNS query with retries.
func (r *DNSResolver) query(ctx context.Context, name string, qtype uint16) (*mdns.Msg, bool, error) {
	m := new(mdns.Msg)
	m.SetQuestion(ensureAbsolute(name), qtype)
	m.RecursionDesired = true

	if r.config.DNSSEC {
		m.SetEdns0(4096, true)
	}

	var lastErr error
	authentic := false

	for i := 0; i <= r.config.Retries; i++ {
		for _, server := range r.config.Nameservers {
			select {
			case <-ctx.Done():
				return nil, false, fmt.Errorf("%w: %v", ErrDNSTimeout, ctx.Err())
			default:
			}

			resp, _, err := r.client.ExchangeContext(ctx, m, server)
			if err != nil {
				if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
					lastErr = fmt.Errorf("%w: %v", ErrDNSTimeout, err)
				} else {
					lastErr = fmt.Errorf("dns query failed: %w", err)
				}
				continue
			}

			if r.config.DNSSEC && resp.AuthenticatedData {
				authentic = true
			}

			switch resp.Rcode {
			case mdns.RcodeSuccess:
				return resp, authentic, nil
			case mdns.RcodeNameError:
				return nil, authentic, ErrDNSNotFound
			case mdns.RcodeServerFailure:
				if r.config.DNSSEC {
					lastErr = ErrDNSBogus
				} else {
					lastErr = ErrDNSServFail
				}
				continue
			case mdns.RcodeRefused:
				lastErr = ErrDNSRefused
				continue
			default:
				lastErr = fmt.Errorf("dns: unexpected rcode %s", mdns.RcodeToString[resp.Rcode])
				continue
			}
		}
	}

	if lastErr != nil {
		return nil, false, lastErr
	}
	return nil, false, ErrDNSServFail
}

// LookupTXT retrieves TXT records for the given name.
func (r *DNSResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	resp, authentic, err := r.query(ctx, name, mdns.TypeTXT)
	if err != nil {
		return Result[string]{Authentic: authentic}, err
	}

	var records []string
	for _, rr := range resp.Answer {
		if txt, ok := rr.(*mdns.TXT); ok {
			records = append(records, strings.Join(txt.Txt, ""))
		}
	}

	if len(records) == 0 {
		return Result[string]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[string]{Records: records, Authentic: authentic}, nil
}

// LookupA retrieves A records for the given name.
func (r *DNSResolver) LookupA(ctx context.Context, name string) (Result[net.IP], error) {
	resp, authentic, err := r.query(ctx, name, mdns.TypeA)
	if err != nil {
		return Result[net.IP]{Authentic: authentic}, err
	}

	var ips []net.IP
	for _, rr := range resp.Answer {
		if a, ok := rr.(*mdns.A); ok {
			ips = append(ips, a.A)
		}
	}

	if len(ips) == 0 {
		return Result[net.IP]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[net.IP]{Records: ips, Authentic: authentic}, nil
}

// LookupAAAA retrieves AAAA records for the given name.
func (r *DNSResolver) LookupAAAA(ctx context.Context, name string) (Result[net.IP], error) {
	resp, authentic, err := r.query(ctx, name, mdns.TypeAAAA)
	if err != nil {
		return Result[net.IP]{Authentic: authentic}, err
	}

	var ips []net.IP
	for _, rr := range resp.Answer {
		if aaaa, ok := rr.(*mdns.AAAA); ok {
			ips = append(ips, aaaa.AAAA)
		}
	}

	if len(ips) == 0 {
		return Result[net.IP]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[net.IP]{Records: ips, Authentic: authentic}, nil
}

// LookupMX retrieves MX records for the given name.
func (r *DNSResolver) LookupMX(ctx context.Context, name string) (Result[*net.MX], error) {
	resp, authentic, err := r.query(ctx, name, mdns.TypeMX)
	if err != nil {
		return Result[*net.MX]{Authentic: authentic}, err
	}

	var records []*net.MX
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*mdns.MX); ok {
			records = append(records, &net.MX{
				Host: mx.Mx,
				Pref: mx.Preference,
			})
		}
	}

	if len(records) == 0 {
		return Result[*net.MX]{Authentic: authentic}, ErrDNSNotFound
	}
	return Result[*net.MX]{Records: records, Authentic: authentic}, nil
}

// Config returns the resolver's current configuration.
func (r *DNSResolver) Config() ResolverConfig {
	return r.config
}
