package dmarc

import (
	"github.com/emersion/go-msgauth/authres"
)

// Kind is the authentication method an AuthOutcome is about.
type Kind string

const (
	KindSPF   Kind = "spf"
	KindDKIM  Kind = "dkim"
	KindARC   Kind = "arc"
	KindDMARC Kind = "dmarc"
)

// AuthOutcome is the result of an authentication method that was evaluated
// elsewhere, such as SPF or DKIM verification.
type AuthOutcome struct {
	Kind Kind

	// Result is e.g. pass, fail, none, neutral, temperror or permerror.
	Result authres.ResultValue

	// Domain is the domain asserted by the method. For SPF the MAIL FROM
	// domain, which may include a local part. For DKIM the d= signing domain.
	// For DMARC the From domain. Empty for ARC.
	Domain string

	// Reason is an optional comment.
	Reason string
}

// Passed returns whether the outcome is pass.
func (o AuthOutcome) Passed() bool {
	return o.Result == authres.ResultPass
}

// Outcomes is a set of authentication outcomes for a message.
type Outcomes []AuthOutcome

// Find returns the first outcome of kind.
func (l Outcomes) Find(kind Kind) (AuthOutcome, bool) {
	for _, o := range l {
		if o.Kind == kind {
			return o, true
		}
	}
	return AuthOutcome{}, false
}
