// Package config holds the configuration file for policy discovery and
// evaluation, in sconf format.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/mjl-/sconf"

	"github.com/synqronlabs/dmarcpolicy/dmarc"
	"github.com/synqronlabs/dmarcpolicy/dns"
	"github.com/synqronlabs/dmarcpolicy/psd"
	"github.com/synqronlabs/dmarcpolicy/publicsuffix"
)

// Config is the configuration file.
type Config struct {
	Mode             string `sconf:"optional" sconf-doc:"Policy discovery mode: dmarc (RFC 7489, the default), psd (RFC 9091) or dmarcbis (DNS tree walk)." validate:"omitempty,oneof=dmarc legacy psd dmarcbis treewalk"`
	MultiFrom        bool   `sconf:"optional" sconf-doc:"Evaluate messages with multiple From addresses, using the most restrictive policy. Without it, such messages are a permerror."`
	ParallelWalk     bool   `sconf:"optional" sconf-doc:"Run the DNS queries of a tree walk concurrently."`
	PublicSuffixList string `sconf:"optional" sconf-doc:"Path to a public suffix list file. If empty, the list compiled into the binary is used." validate:"omitempty,file"`
	ICANNOnly        bool   `sconf:"optional" sconf-doc:"Only use the ICANN section of the public suffix list file."`
	PSD              PSD    `sconf:"optional" sconf-doc:"PSD DMARC participant registry."`
	DNS              DNS    `sconf:"optional" sconf-doc:"DNS resolver."`
	LogLevel         string `sconf:"optional" sconf-doc:"Log level: debug, info, warn or error." validate:"omitempty,oneof=debug info warn error"`
	AuthservID       string `sconf:"optional" sconf-doc:"Authentication service identifier for Authentication-Results headers. Defaults to the host name." validate:"omitempty,hostname_rfc1123"`
}

// PSD configures the PSD DMARC participant registry.
type PSD struct {
	Dataset    string `sconf:"optional" sconf-doc:"Path to a CSV file with domain,status lines of PSD DMARC participants." validate:"omitempty"`
	Zone       string `sconf:"optional" sconf-doc:"DNS zone of the participant registry, queried when the dataset has no answer." validate:"omitempty,fqdn"`
	DisableDNS bool   `sconf:"optional" sconf-doc:"Do not query the registry zone."`
}

// DNS configures the resolver.
type DNS struct {
	Nameservers []string      `sconf:"optional" sconf-doc:"Nameservers as host:port. If empty, the nameservers from /etc/resolv.conf are used." validate:"dive,hostname_port"`
	Timeout     time.Duration `sconf:"optional" sconf-doc:"Timeout per query." validate:"gte=0"`
	Retries     int           `sconf:"optional" sconf-doc:"Retries for failed queries." validate:"gte=0,lte=10"`
	DNSSEC      bool          `sconf:"optional" sconf-doc:"Set the DNSSEC OK bit on queries."`
	CacheTTL    time.Duration `sconf:"optional" sconf-doc:"How long answers are cached. Zero disables the cache." validate:"gte=0"`
	Stdlib      bool          `sconf:"optional" sconf-doc:"Use the resolver of the Go standard library instead of querying Nameservers directly."`
}

// Default returns the configuration used for absent fields.
func Default() Config {
	return Config{
		Mode: "dmarc",
		PSD: PSD{
			Zone: psd.RegistryZone,
		},
		DNS: DNS{
			Timeout:  5 * time.Second,
			Retries:  2,
			CacheTTL: 5 * time.Minute,
		},
		LogLevel: "info",
	}
}

// Parse reads a configuration file from r. Absent fields keep their default.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	if err := sconf.Parse(r, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Describe writes an example configuration file with documentation to w.
func Describe(w io.Writer) error {
	c := Default()
	return sconf.Describe(w, &c)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalizes the configuration and checks its values.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var errs *multierror.Error
	for _, fe := range verrs {
		errs = multierror.Append(errs, fmt.Errorf("%s: invalid value %q (%s)", strings.TrimPrefix(fe.Namespace(), "Config."), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %w", errs.ErrorOrNil())
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Resolver returns the configured DNS resolver.
func (c Config) Resolver(log *slog.Logger) dns.Resolver {
	var r dns.Resolver
	if c.DNS.Stdlib {
		r = dns.NewStdResolver()
	} else {
		r = dns.NewResolver(dns.ResolverConfig{
			Nameservers: c.DNS.Nameservers,
			DNSSEC:      c.DNS.DNSSEC,
			Timeout:     c.DNS.Timeout,
			Retries:     c.DNS.Retries,
		})
	}
	if c.DNS.CacheTTL > 0 {
		r = dns.NewCachedResolver(r, c.DNS.CacheTTL, log)
	}
	return r
}

// Registry returns the PSD participant registry: the dataset if configured,
// followed by the registry zone. An unreadable dataset is logged and skipped.
func (c Config) Registry(log *slog.Logger, resolver dns.Resolver) *psd.Registry {
	var sources []psd.Source
	if c.PSD.Dataset != "" {
		if ds, err := psd.LoadDataset(c.PSD.Dataset); err != nil {
			log.Warn("psd dataset not available, using dns registry", slog.String("path", c.PSD.Dataset), slog.Any("error", err))
		} else {
			log.Debug("loaded psd dataset", slog.String("path", c.PSD.Dataset), slog.Int("domains", ds.Len()))
			sources = append(sources, ds)
		}
	}
	if !c.PSD.DisableDNS {
		sources = append(sources, psd.DNSSource{Resolver: resolver, Logger: log, Zone: c.PSD.Zone})
	}
	return psd.NewRegistry(log, sources...)
}

// Build returns an Authenticator following the configuration.
func (c Config) Build(log *slog.Logger) (*dmarc.Authenticator, error) {
	if log == nil {
		log = slog.Default()
	}
	mode, err := dmarc.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	var suffixes publicsuffix.Ruleset
	if c.PublicSuffixList != "" {
		l, err := publicsuffix.ParseFile(log, c.PublicSuffixList, publicsuffix.ParseOptions{ICANNOnly: c.ICANNOnly})
		if err != nil {
			return nil, fmt.Errorf("loading public suffix list: %w", err)
		}
		log.Debug("loaded public suffix list", slog.String("path", c.PublicSuffixList), slog.Int("rules", l.Len()))
		suffixes = l
	}

	resolver := c.Resolver(log)
	return &dmarc.Authenticator{
		Discoverer: &dmarc.Discoverer{
			Resolver:     resolver,
			Suffixes:     suffixes,
			Registry:     c.Registry(log, resolver),
			Logger:       log,
			ParallelWalk: c.ParallelWalk,
		},
		Mode:      mode,
		MultiFrom: c.MultiFrom,
		Logger:    log,
	}, nil
}
