package psd

import (
	"context"
	"log/slog"

	"github.com/synqronlabs/dmarcpolicy/dns"
	"github.com/synqronlabs/dmarcpolicy/utils"
)

// RegistryZone is the DNS zone listing PSD DMARC participants.
const RegistryZone = "psddmarc.org"

// DNSSource looks up participation with a TXT query at
// "<name>.psddmarc.org". Any answer means participation.
type DNSSource struct {
	Resolver dns.Resolver
	Logger   *slog.Logger

	// Zone overrides RegistryZone.
	Zone string
}

var _ Source = DNSSource{}

// Lookup queries the registry zone for name. A missing answer, including
// one caused by a lookup failure, is NotParticipant.
func (s DNSSource) Lookup(ctx context.Context, name string) Membership {
	zone := s.Zone
	if zone == "" {
		zone = RegistryZone
	}
	name = utils.NormalizeDomain(name)
	if name == "" {
		return NotParticipant
	}

	q := dns.Querier{Resolver: s.Resolver, Logger: s.Logger}
	answer := q.Query(ctx, name+"."+zone, dns.TypeTXT)
	if answer.Absent() {
		if answer.Err != nil && s.Logger != nil {
			s.Logger.Debug("psd registry lookup failed", slog.String("name", name), slog.Any("error", answer.Err))
		}
		return NotParticipant
	}
	return Participant
}
