package dmarc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/emersion/go-msgauth/authres"
)

func TestFormatHeader(t *testing.T) {
	res := AggregateResult{
		Status:     StatusPass,
		Comment:    CommentFromDomain,
		FromDomain: "example.com",
		Policy:     PolicyReject,
	}
	prior := Outcomes{
		{Kind: KindSPF, Result: authres.ResultPass, Domain: "example.com"},
		{Kind: KindDKIM, Result: authres.ResultPass, Domain: "example.com"},
	}

	hdr := FormatHeader("mx.example.net", prior.AuthResults(), res.AuthResult())
	if !strings.Contains(hdr, "policy.dmarc=reject") {
		t.Errorf("header %q is missing the policy", hdr)
	}

	id, outcomes, results, err := OutcomesFromHeader(hdr)
	if err != nil {
		t.Fatalf("parsing %q: %v", hdr, err)
	}
	if id != "mx.example.net" {
		t.Errorf("authserv-id: got %q, want mx.example.net", id)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	want := Outcomes{
		{Kind: KindSPF, Result: authres.ResultPass, Domain: "example.com"},
		{Kind: KindDKIM, Result: authres.ResultPass, Domain: "example.com"},
		{Kind: KindDMARC, Result: authres.ResultPass, Domain: "example.com"},
	}
	for i := range outcomes {
		outcomes[i].Reason = ""
	}
	if !reflect.DeepEqual(outcomes, want) {
		t.Errorf("outcomes: got %+v, want %+v", outcomes, want)
	}
}

func TestOutcomesFromHeader(t *testing.T) {
	value := "mx.google.com; dkim=pass header.i=@allsetnow.com; spf=pass smtp.mailfrom=dimitri.n@allsetnow.com; arc=pass"

	id, outcomes, _, err := OutcomesFromHeader(value)
	if err != nil {
		t.Fatalf("OutcomesFromHeader: %v", err)
	}
	if id != "mx.google.com" {
		t.Errorf("authserv-id: got %q", id)
	}

	dkim, ok := outcomes.Find(KindDKIM)
	if !ok || !dkim.Passed() || dkim.Domain != "allsetnow.com" {
		t.Errorf("dkim: got %+v, %v", dkim, ok)
	}
	spf, ok := outcomes.Find(KindSPF)
	if !ok || !spf.Passed() || spf.Domain != "dimitri.n@allsetnow.com" {
		t.Errorf("spf: got %+v, %v", spf, ok)
	}
	if arc, ok := outcomes.Find(KindARC); !ok || !arc.Passed() {
		t.Errorf("arc: got %+v, %v", arc, ok)
	}

	// The outcomes feed straight into evaluation.
	ev := Evaluate(nil, Record{"v": "DMARC1", "p": "reject", "adkim": "s"}, "allsetnow.com", spf, dkim)
	if ev.Status != StatusPass || !ev.AlignedSPF || !ev.AlignedDKIM {
		t.Errorf("evaluation: got %+v", ev)
	}
}

func TestAggregateAuthResult(t *testing.T) {
	got := AggregateResult{Status: StatusNone}.AuthResult()
	want := &authres.GenericResult{Method: "dmarc", Value: authres.ResultNone, Params: map[string]string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = AggregateResult{Status: StatusPermerror, Comment: "Unable to extract From domain: x"}.AuthResult()
	g, ok := got.(*authres.GenericResult)
	if !ok || g.Value != authres.ResultPermError || g.Params["reason"] != "Unable to extract From domain: x" {
		t.Errorf("got %+v", got)
	}
	if _, ok := g.Params["header.from"]; ok {
		t.Error("unexpected header.from for permerror")
	}
}

func TestFilterResults(t *testing.T) {
	results := []authres.Result{
		&authres.DKIMResult{Value: authres.ResultFail, Domain: "other.com"},
		&authres.DKIMResult{Value: authres.ResultPass, Domain: "example.com"},
		&authres.GenericResult{Method: "iprev", Value: authres.ResultPass},
		&authres.SPFResult{Value: authres.ResultPass, From: "example.com"},
		&authres.GenericResult{Method: "ARC", Value: authres.ResultNone},
		&authres.DMARCResult{Value: authres.ResultPass, From: "example.com"},
	}

	tests := []struct {
		name  string
		kinds []Kind
		want  []authres.Result
	}{
		{"nothing removed", nil, results},
		{"dmarc", []Kind{KindDMARC}, results[:5]},
		{"dkim and arc", []Kind{KindDKIM, KindARC}, []authres.Result{results[2], results[3], results[5]}},
		{"spf dkim dmarc", []Kind{KindSPF, KindDKIM, KindDMARC}, []authres.Result{results[2], results[4]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterResults(results, tt.kinds...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %d results %v, want %d", len(got), got, len(tt.want))
			}
		})
	}
}
