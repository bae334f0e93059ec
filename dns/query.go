package dns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricLookup = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "dmarcpolicy_dns_lookup_duration_seconds",
		Help:    "DNS lookups done for policy discovery, by record type and result.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.100, 0.5, 1, 5, 10, 20},
	},
	[]string{
		"type",
		"result", // ok, notfound, timeout, servfail, canceled, error
	},
)

// RecordType is a DNS record type the discovery engine asks for.
type RecordType string

const (
	TypeTXT  RecordType = "TXT"
	TypeA    RecordType = "A"
	TypeMX   RecordType = "MX"
	TypeAAAA RecordType = "AAAA"
)

// Answer is the outcome of a Query.
type Answer struct {
	// Records holds the answers as text. TXT answers are the record text, A and
	// AAAA answers are IP addresses, MX answers are the exchange host names.
	Records []string

	// Authentic indicates the answer was DNSSEC-validated.
	Authentic bool

	// Err is the reason the answer is absent when the lookup failed for
	// something other than non-existence. For diagnostics only.
	Err error
}

// Absent returns true if there is no usable answer.
func (a Answer) Absent() bool {
	return len(a.Records) == 0
}

// Querier adapts a Resolver to name/type queries that never fail: every
// error, including timeouts and server failures, results in an absent answer.
// Retry policy belongs to the Resolver.
type Querier struct {
	Resolver Resolver
	Logger   *slog.Logger
}

func (q Querier) logger() *slog.Logger {
	if q.Logger == nil {
		return slog.Default()
	}
	return q.Logger
}

// Query looks up records of type t at name.
func (q Querier) Query(ctx context.Context, name string, t RecordType) (answer Answer) {
	start := time.Now()
	defer func() {
		metricLookup.WithLabelValues(string(t), lookupResult(answer.Err, answer.Absent())).Observe(time.Since(start).Seconds())
		q.logger().Debug("dns query",
			slog.String("name", name),
			slog.String("type", string(t)),
			slog.Int("answers", len(answer.Records)),
			slog.Any("error", answer.Err),
			slog.Duration("duration", time.Since(start)),
		)
	}()

	var err error
	switch t {
	case TypeTXT:
		var r Result[string]
		r, err = q.Resolver.LookupTXT(ctx, name)
		answer.Records, answer.Authentic = r.Records, r.Authentic
	case TypeA, TypeAAAA:
		lookup := q.Resolver.LookupA
		if t == TypeAAAA {
			lookup = q.Resolver.LookupAAAA
		}
		r, lerr := lookup(ctx, name)
		err = lerr
		answer.Authentic = r.Authentic
		for _, ip := range r.Records {
			answer.Records = append(answer.Records, ip.String())
		}
	case TypeMX:
		r, lerr := q.Resolver.LookupMX(ctx, name)
		err = lerr
		answer.Authentic = r.Authentic
		for _, mx := range r.Records {
			answer.Records = append(answer.Records, strings.TrimSuffix(mx.Host, "."))
		}
	default:
		err = fmt.Errorf("dns: unsupported record type %q", t)
	}

	if err != nil {
		answer.Records = nil
		if !IsNotFound(err) {
			answer.Err = err
		}
	}
	return answer
}

func lookupResult(err error, absent bool) string {
	switch {
	case err == nil && absent:
		return "notfound"
	case err == nil:
		return "ok"
	case IsTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case IsServFail(err):
		return "servfail"
	default:
		return "error"
	}
}
