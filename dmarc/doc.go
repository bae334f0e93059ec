// Package dmarc discovers the DMARC policy governing a From domain and
// evaluates SPF and DKIM outcomes against it, per RFC 7489.
//
// DMARC compares the "From" domain against the SPF and/or DKIM-validated
// domains, based on the DMARC policy that a domain has published in DNS as a TXT
// record under "_dmarc.<domain>". Which record governs a domain depends on the
// discovery convention:
//
//   - ModeLegacy (RFC 7489): the From domain, then its organizational domain.
//   - ModePSD (RFC 9091): as legacy, then the public suffix domain above the
//     organizational domain, if it participates in PSD DMARC.
//   - ModeTreeWalk (DMARCbis): the From domain and up to four of its ancestors.
//
// SPF and DKIM verification happen elsewhere, their outcomes are passed in as
// AuthOutcome values, for example parsed from a prior Authentication-Results
// header with OutcomesFromHeader.
//
// # Basic Usage
//
// Discovering a policy:
//
//	d := &dmarc.Discoverer{
//	    Resolver: dns.NewResolver(dns.ResolverConfig{}),
//	    Suffixes: publicsuffix.Builtin(),
//	}
//	decision := d.Discover(ctx, "sub.example.com", dmarc.ModeLegacy)
//	if decision.Found() {
//	    fmt.Println(decision.Comment, decision.Policy)
//	}
//
// Evaluating a message:
//
//	a := &dmarc.Authenticator{Discoverer: d, Mode: dmarc.ModePSD, MultiFrom: true}
//	result, err := a.CheckMessage(ctx, msg, dmarc.Outcomes{
//	    {Kind: dmarc.KindDKIM, Result: authres.ResultPass, Domain: "example.com"},
//	})
//	header := dmarc.FormatHeader("mx.example.net", nil, result.AuthResult())
//
// # DMARC Alignment
//
// DMARC requires "alignment" between the domain in the From header and the domains
// authenticated by SPF and/or DKIM:
//
//   - SPF alignment: The RFC5321.MailFrom domain (envelope sender) must match
//     the RFC5322.From domain (message header).
//
//   - DKIM alignment: A passing DKIM signature must have a d= domain that
//     matches the RFC5322.From domain.
//
// Alignment can be "strict" (exact match) or "relaxed" (organizational domain match).
// The default is relaxed alignment for both SPF and DKIM.
//
// # References
//
//   - RFC 7489: Domain-based Message Authentication, Reporting, and Conformance (DMARC)
//   - RFC 9091: Experimental DMARC Extension for Public Suffix Domains
//   - RFC 8601: Message Header Field for Indicating Message Authentication Status
//   - draft-ietf-dmarc-dmarcbis: DNS Tree Walk
package dmarc
