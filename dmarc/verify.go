package dmarc

import (
	"strings"

	"github.com/synqronlabs/dmarcpolicy/publicsuffix"
	"github.com/synqronlabs/dmarcpolicy/utils"
)

// Evaluation is the result of checking SPF and DKIM outcomes against a DMARC
// record.
type Evaluation struct {
	// Status is pass if SPF or DKIM passed with alignment, fail if neither did,
	// and none if there is no usable record.
	Status Status

	// AlignedSPF indicates SPF passed with proper alignment.
	AlignedSPF bool

	// AlignedDKIM indicates DKIM passed with proper alignment.
	AlignedDKIM bool
}

// Evaluate checks the SPF and DKIM outcomes for alignment with fromDomain,
// following the alignment modes of record. Rules determines organizational
// domains for relaxed alignment, the builtin list is used when nil.
//
// Outcomes that did not pass are ignored, as are outcomes of other kinds.
func Evaluate(rules publicsuffix.Ruleset, record Record, fromDomain string, spf, dkim AuthOutcome) Evaluation {
	return evaluate(rules, record, fromDomain, spf, []AuthOutcome{dkim})
}

// EvaluateOutcomes is like Evaluate, but takes the first SPF outcome and all
// DKIM outcomes of a message. One aligned passing DKIM signature suffices.
func EvaluateOutcomes(rules publicsuffix.Ruleset, record Record, fromDomain string, outcomes Outcomes) Evaluation {
	spf, _ := outcomes.Find(KindSPF)
	var dkims []AuthOutcome
	for _, o := range outcomes {
		if o.Kind == KindDKIM {
			dkims = append(dkims, o)
		}
	}
	return evaluate(rules, record, fromDomain, spf, dkims)
}

func evaluate(rules publicsuffix.Ruleset, record Record, fromDomain string, spf AuthOutcome, dkims []AuthOutcome) Evaluation {
	if !record.HasPolicy() {
		metricEvaluation.WithLabelValues(string(StatusNone)).Inc()
		return Evaluation{Status: StatusNone}
	}

	ev := Evaluation{Status: StatusFail}

	if spf.Kind == KindSPF && spf.Passed() {
		// The domain in SPF results often includes the local part, even though
		// generally it SHOULD NOT (RFC 7601, Section 2.7.2, last paragraph).
		ev.AlignedSPF = DomainsAligned(rules, fromDomain, mailFromDomain(spf.Domain), record.ASPF())
	}
	for _, dkim := range dkims {
		if dkim.Kind == KindDKIM && dkim.Passed() && DomainsAligned(rules, fromDomain, dkim.Domain, record.ADKIM()) {
			ev.AlignedDKIM = true
			break
		}
	}

	if ev.AlignedSPF || ev.AlignedDKIM {
		ev.Status = StatusPass
	}
	metricEvaluation.WithLabelValues(string(ev.Status)).Inc()
	return ev
}

// mailFromDomain returns the domain of a MAIL FROM address. Values without
// "@" are taken to be a domain.
func mailFromDomain(s string) string {
	if !strings.Contains(s, "@") {
		return normalizeDomain(strings.Trim(strings.TrimSpace(s), "<>"))
	}
	domain, err := utils.DomainPart(s)
	if err != nil {
		return ""
	}
	return domain
}
