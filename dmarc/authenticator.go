package dmarc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/emersion/go-message/textproto"

	"github.com/synqronlabs/dmarcpolicy/utils"
)

// Authenticator combines policy discovery and alignment evaluation for the
// From domains of a message.
type Authenticator struct {
	// Discoverer is used for policy discovery. Required.
	Discoverer *Discoverer

	// Mode is the discovery mode.
	Mode Mode

	// MultiFrom enables evaluation of messages with multiple From addresses,
	// per RFC 7489 Section 6.6.1. Without it, such messages are a permerror.
	MultiFrom bool

	// Logger for authentication events. Optional.
	Logger *slog.Logger
}

// AggregateResult is the DMARC result for a message.
type AggregateResult struct {
	// RequestID identifies the check in log records.
	RequestID string

	Status     Status
	Comment    string
	FromDomain string
	Policy     Policy
}

func (a *Authenticator) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// request returns a logger for a single check, and its request ID.
func (a *Authenticator) request() (*slog.Logger, string) {
	id := utils.GenerateID()
	return a.logger().With(slog.String("request_id", id)), id
}

// CheckDomain discovers the policy for fromDomain and evaluates the SPF and
// DKIM outcomes against it.
func (a *Authenticator) CheckDomain(ctx context.Context, fromDomain string, outcomes Outcomes) AggregateResult {
	log, id := a.request()
	res := a.checkDomain(ctx, log, fromDomain, outcomes)
	res.RequestID = id
	a.logResult(log, res)
	return res
}

func (a *Authenticator) checkDomain(ctx context.Context, log *slog.Logger, fromDomain string, outcomes Outcomes) AggregateResult {
	disc := *a.Discoverer
	disc.Logger = log

	dec := disc.Discover(ctx, fromDomain, a.Mode)
	if !dec.Found() {
		metricEvaluation.WithLabelValues(string(StatusNone)).Inc()
		return AggregateResult{Status: StatusNone, FromDomain: dec.FromDomain}
	}

	ev := EvaluateOutcomes(disc.Suffixes, dec.Record, dec.FromDomain, outcomes)
	log.Debug("dmarc alignment",
		slog.String("from_domain", dec.FromDomain),
		slog.Bool("aligned_spf", ev.AlignedSPF),
		slog.Bool("aligned_dkim", ev.AlignedDKIM),
	)
	return AggregateResult{
		Status:     ev.Status,
		Comment:    dec.Comment,
		FromDomain: dec.FromDomain,
		Policy:     dec.Policy,
	}
}

// permerror returns the result for a From header without usable domain.
func permerror(value string) AggregateResult {
	metricEvaluation.WithLabelValues(string(StatusPermerror)).Inc()
	return AggregateResult{
		Status:  StatusPermerror,
		Comment: "Unable to extract From domain: " + value,
	}
}

// Check evaluates the message with the given From header values.
//
// Without MultiFrom, the headers must hold exactly one address. With
// MultiFrom, each address is evaluated and the first result with the most
// restrictive policy is returned. An address without domain is a permerror.
func (a *Authenticator) Check(ctx context.Context, fromHeaders []string, outcomes Outcomes) AggregateResult {
	log, id := a.request()
	res := a.check(ctx, log, fromHeaders, outcomes)
	res.RequestID = id
	a.logResult(log, res)
	return res
}

func (a *Authenticator) check(ctx context.Context, log *slog.Logger, fromHeaders []string, outcomes Outcomes) AggregateResult {
	header := strings.Join(fromHeaders, ", ")

	addrs, err := fromAddresses(fromHeaders)
	if err != nil {
		log.Debug("parsing from header", slog.Any("error", err))
		return permerror(header)
	}
	if len(addrs) == 0 {
		log.Debug("no from address", slog.String("header", header), slog.Any("error", ErrNoFromHeader))
		return permerror(header)
	}
	if len(addrs) > 1 && !a.MultiFrom {
		log.Debug("multiple from addresses", slog.String("header", header), slog.Any("error", ErrMultipleFromAddresses))
		return permerror(header)
	}

	var best AggregateResult
	for i, addr := range addrs {
		domain, err := utils.DomainPart(addr)
		if err != nil {
			log.Debug("from address without domain", slog.String("address", addr), slog.Any("error", err))
			return permerror(addr)
		}
		res := a.checkDomain(ctx, log, domain, outcomes)
		if i == 0 || res.Policy.Severity() > best.Policy.Severity() {
			best = res
		}
	}
	return best
}

// CheckMessage reads the header of a message from r and evaluates it with
// Check. Only the header section is read.
func (a *Authenticator) CheckMessage(ctx context.Context, r io.Reader, outcomes Outcomes) (AggregateResult, error) {
	hdr, err := textproto.ReadHeader(bufio.NewReader(r))
	if err != nil {
		return AggregateResult{}, fmt.Errorf("reading message header: %w", err)
	}
	return a.Check(ctx, FromHeaders(hdr), outcomes), nil
}

func (a *Authenticator) logResult(log *slog.Logger, res AggregateResult) {
	log.Info("dmarc check",
		slog.String("mode", a.Mode.String()),
		slog.String("from_domain", res.FromDomain),
		slog.String("status", string(res.Status)),
		slog.String("policy", string(res.Policy)),
		slog.String("comment", res.Comment),
	)
}
