package dmarc

import (
	"errors"
)

// DMARC lookup and verification errors.
var (
	// ErrNoRecord indicates no DMARC DNS record was found.
	ErrNoRecord = errors.New("dmarc: no DMARC DNS record found")

	// ErrMultipleRecords indicates multiple DMARC DNS records were found.
	// Per RFC 7489, this must be treated as if the domain does not implement DMARC.
	ErrMultipleRecords = errors.New("dmarc: multiple DMARC DNS records found")

	// ErrMalformedRecord indicates a DMARC record with a segment that is not a
	// tag=value pair.
	ErrMalformedRecord = errors.New("dmarc: malformed DMARC DNS record")

	// ErrNoPolicy indicates a DMARC record without the mandatory p tag.
	ErrNoPolicy = errors.New("dmarc: DMARC record has no policy")

	// ErrNoFromHeader indicates the message has no From header.
	ErrNoFromHeader = errors.New("dmarc: no From header in message")

	// ErrInvalidFromHeader indicates the From header could not be parsed.
	ErrInvalidFromHeader = errors.New("dmarc: invalid From header")

	// ErrMultipleFromAddresses indicates multiple addresses in From header
	// while multi-From handling is disabled.
	ErrMultipleFromAddresses = errors.New("dmarc: multiple addresses in From header")
)

// Status is the result of DMARC policy evaluation, for use in an
// Authentication-Results header per RFC 8601.
type Status string

const (
	// StatusNone indicates no usable DMARC TXT DNS record was found.
	StatusNone Status = "none"

	// StatusPass indicates SPF and/or DKIM passed with identifier alignment.
	StatusPass Status = "pass"

	// StatusFail indicates either both SPF and DKIM failed or the identifier
	// did not align with a pass.
	StatusFail Status = "fail"

	// StatusPermerror indicates a permanent error, an unusable From header.
	StatusPermerror Status = "permerror"
)

// Policy determines how receivers should handle messages that fail DMARC.
type Policy string

const (
	// PolicyEmpty is the policy of a decision without a usable record.
	PolicyEmpty Policy = ""

	// PolicyNone requests no specific action be taken for failing messages.
	// This is typically used for monitoring/reporting during initial deployment.
	PolicyNone Policy = "none"

	// PolicyQuarantine requests that failing messages be treated as suspicious.
	// Receivers may deliver to spam folder or add additional scrutiny.
	PolicyQuarantine Policy = "quarantine"

	// PolicyReject requests that failing messages be rejected.
	PolicyReject Policy = "reject"
)

// Severity ranks policies for choosing the most restrictive one.
type Severity int

const (
	SeverityNone       Severity = 0
	SeverityQuarantine Severity = 1
	SeverityReject     Severity = 2
)

// Severity returns the rank of the policy. Unknown and empty policies rank as
// none.
func (p Policy) Severity() Severity {
	switch p {
	case PolicyReject:
		return SeverityReject
	case PolicyQuarantine:
		return SeverityQuarantine
	default:
		return SeverityNone
	}
}

// Align specifies the alignment mode for identifier comparison.
type Align string

const (
	// AlignRelaxed requires the organizational domains to match.
	// This is the default mode.
	AlignRelaxed Align = "r"

	// AlignStrict requires exact domain matches.
	AlignStrict Align = "s"
)
