package dmarc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/emersion/go-msgauth/authres"

	"github.com/synqronlabs/dmarcpolicy/utils"
)

// AuthResult returns the DMARC result for an Authentication-Results header.
func (r AggregateResult) AuthResult() authres.Result {
	params := map[string]string{}
	if r.Comment != "" {
		params["reason"] = r.Comment
	}
	if r.FromDomain != "" {
		params["header.from"] = r.FromDomain
	}
	if r.Policy != PolicyEmpty {
		params["policy.dmarc"] = string(r.Policy)
	}
	return &authres.GenericResult{
		Method: string(KindDMARC),
		Value:  authres.ResultValue(r.Status),
		Params: params,
	}
}

// AuthResult returns the outcome as Authentication-Results result.
func (o AuthOutcome) AuthResult() authres.Result {
	switch o.Kind {
	case KindSPF:
		return &authres.SPFResult{Value: o.Result, Reason: o.Reason, From: o.Domain}
	case KindDKIM:
		return &authres.DKIMResult{Value: o.Result, Reason: o.Reason, Domain: o.Domain}
	case KindDMARC:
		return &authres.DMARCResult{Value: o.Result, Reason: o.Reason, From: o.Domain}
	default:
		var params map[string]string
		if o.Reason != "" {
			params = map[string]string{"reason": o.Reason}
		}
		return &authres.GenericResult{Method: string(o.Kind), Value: o.Result, Params: params}
	}
}

// AuthResults returns the outcomes as Authentication-Results results.
func (l Outcomes) AuthResults() []authres.Result {
	results := make([]authres.Result, 0, len(l))
	for _, o := range l {
		results = append(results, o.AuthResult())
	}
	return results
}

// resultMethod returns the method of a parsed result for the kinds of
// outcomes, and the method name of generic results.
func resultMethod(res authres.Result) string {
	switch r := res.(type) {
	case *authres.SPFResult:
		return string(KindSPF)
	case *authres.DKIMResult:
		return string(KindDKIM)
	case *authres.DMARCResult:
		return string(KindDMARC)
	case *authres.GenericResult:
		return strings.ToLower(r.Method)
	}
	return ""
}

// FilterResults returns the results that are not of one of kinds. Results of
// methods without a Kind, such as iprev or auth, are always kept.
func FilterResults(results []authres.Result, kinds ...Kind) []authres.Result {
	var l []authres.Result
	for _, res := range results {
		if !slices.Contains(kinds, Kind(resultMethod(res))) {
			l = append(l, res)
		}
	}
	return l
}

// FormatHeader returns the value of an Authentication-Results header with the
// prior results followed by the DMARC result.
func FormatHeader(authservID string, prior []authres.Result, dmarc authres.Result) string {
	results := slices.Clone(prior)
	if dmarc != nil {
		results = append(results, dmarc)
	}
	return authres.Format(authservID, results)
}

// OutcomesFromResults converts parsed Authentication-Results results into
// outcomes. Results of other methods are skipped.
func OutcomesFromResults(results []authres.Result) Outcomes {
	var outcomes Outcomes
	for _, res := range results {
		switch r := res.(type) {
		case *authres.SPFResult:
			outcomes = append(outcomes, AuthOutcome{Kind: KindSPF, Result: r.Value, Domain: r.From, Reason: r.Reason})
		case *authres.DKIMResult:
			domain := r.Domain
			if domain == "" && r.Identifier != "" {
				// header.i=@example.com
				if d, err := utils.DomainPart(r.Identifier); err == nil {
					domain = d
				}
			}
			outcomes = append(outcomes, AuthOutcome{Kind: KindDKIM, Result: r.Value, Domain: domain, Reason: r.Reason})
		case *authres.DMARCResult:
			outcomes = append(outcomes, AuthOutcome{Kind: KindDMARC, Result: r.Value, Domain: r.From, Reason: r.Reason})
		case *authres.GenericResult:
			if strings.EqualFold(r.Method, string(KindARC)) {
				outcomes = append(outcomes, AuthOutcome{Kind: KindARC, Result: r.Value, Reason: r.Params["reason"]})
			}
		}
	}
	return outcomes
}

// OutcomesFromHeader parses the value of an Authentication-Results header,
// returning the authserv-id, the outcomes and the parsed results.
func OutcomesFromHeader(value string) (authservID string, outcomes Outcomes, results []authres.Result, err error) {
	authservID, results, err = authres.Parse(value)
	if err != nil {
		return "", nil, nil, fmt.Errorf("parsing authentication-results: %w", err)
	}
	return authservID, OutcomesFromResults(results), results, nil
}
