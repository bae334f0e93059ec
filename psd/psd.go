// Package psd answers whether a domain participates in Public Suffix Domain
// DMARC (RFC 9091).
//
// Participation is looked up in an explicit, ordered chain of sources: a local
// copy of the psddmarc.org registry, followed by DNS queries to the registry
// zone. A source that cannot answer says so with Unavailable, and the next
// source is tried.
package psd

import (
	"context"
	"log/slog"
)

// Membership is the answer of a Source about a domain.
type Membership int

const (
	// Unavailable means the source could not answer, e.g. because its data
	// could not be loaded.
	Unavailable Membership = iota

	// NotParticipant means the source positively knows the domain is not a
	// participant.
	NotParticipant

	// Participant means the domain is a registered PSD DMARC participant.
	Participant
)

func (m Membership) String() string {
	switch m {
	case NotParticipant:
		return "not-participant"
	case Participant:
		return "participant"
	default:
		return "unavailable"
	}
}

// Source answers participation questions for a domain name.
type Source interface {
	Lookup(ctx context.Context, name string) Membership
}

// Registry consults its sources in order. The first answer that is not
// Unavailable wins.
type Registry struct {
	sources []Source
	logger  *slog.Logger
}

// NewRegistry returns a registry trying sources in the given order. Nil
// sources are skipped.
func NewRegistry(logger *slog.Logger, sources ...Source) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{logger: logger.With(slog.String("pkg", "psd"))}
	for _, s := range sources {
		if s != nil {
			r.sources = append(r.sources, s)
		}
	}
	return r
}

// Lookup returns the first answer from the sources that is not Unavailable.
func (r *Registry) Lookup(ctx context.Context, name string) Membership {
	if r == nil {
		return Unavailable
	}
	for i, s := range r.sources {
		m := s.Lookup(ctx, name)
		if m == Unavailable {
			r.logger.Debug("psd source unavailable, trying next", slog.String("name", name), slog.Int("source", i))
			continue
		}
		r.logger.Debug("psd membership", slog.String("name", name), slog.String("membership", m.String()), slog.Int("source", i))
		return m
	}
	return Unavailable
}

// IsParticipant returns whether name is a PSD DMARC participant. When no
// source can answer, the name is not a participant.
func (r *Registry) IsParticipant(ctx context.Context, name string) bool {
	return r.Lookup(ctx, name) == Participant
}
