package main

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/emersion/go-msgauth/authres"

	"github.com/synqronlabs/dmarcpolicy/dmarc"
	"github.com/synqronlabs/dmarcpolicy/dns"
)

const message = "Return-Path: <dimitri.n@allsetnow.com>\r\n" +
	"Authentication-Results: mx.google.com;\r\n" +
	"       dkim=pass header.i=@allsetnow-com.20150623.gappssmtp.com;\r\n" +
	"       spf=pass smtp.mailfrom=dimitri.n@allsetnow.com;\r\n" +
	"       dmarc=pass header.from=allsetnow.com\r\n" +
	"From: Dimitri Nikulin <dimitri.n@allsetnow.com>\r\n" +
	"Date: Mon, 23 Jan 2017 16:49:02 +0000\r\n" +
	"Subject: Just checking in\r\n" +
	"To: gene@valimail.com\r\n" +
	"\r\n" +
	"Hi Gene,\r\n"

const signedMessage = "Authentication-Results: mx.google.com;\r\n" +
	"       dkim=fail header.d=other.com;\r\n" +
	"       dkim=pass header.d=allsetnow.com;\r\n" +
	"       iprev=pass policy.iprev=192.0.2.1;\r\n" +
	"       spf=pass smtp.mailfrom=allsetnow.com\r\n" +
	"From: Dimitri Nikulin <dimitri.n@allsetnow.com>\r\n" +
	"Subject: Just checking in\r\n" +
	"\r\n" +
	"Hi Gene,\r\n"

func methodCount(header, method string) int {
	re := regexp.MustCompile(`(?:^|[\s;])` + regexp.QuoteMeta(method) + `=`)
	return len(re.FindAllString(header, -1))
}

func testAuthenticator() *dmarc.Authenticator {
	return &dmarc.Authenticator{
		Discoverer: &dmarc.Discoverer{Resolver: dns.MockResolver{
			TXT: map[string][]string{
				"_dmarc.allsetnow.com.": {"v=DMARC1; p=none"},
			},
		}},
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name   string
		opts   options
		status dmarc.Status
		want   []string
	}{
		{
			name:   "previous results",
			opts:   options{authservID: "mx.example.net", prev: true},
			status: dmarc.StatusPass,
			want:   []string{"mx.example.net", "spf=pass", "dkim=pass", "dmarc=pass", "header.from=allsetnow.com", "policy.dmarc=none"},
		},
		{
			name:   "flags",
			opts:   options{authservID: "mx.example.net", dkim: "pass", dkimDomain: "allsetnow.com"},
			status: dmarc.StatusPass,
			want:   []string{"dkim=pass", "dmarc=pass"},
		},
		{
			name:   "flags win over previous results",
			opts:   options{authservID: "mx.example.net", spf: "fail", mailFrom: "allsetnow.com", prev: true},
			status: dmarc.StatusFail,
			want:   []string{"spf=fail", "dmarc=fail"},
		},
		{
			name:   "no results",
			opts:   options{authservID: "mx.example.net"},
			status: dmarc.StatusFail,
			want:   []string{"dmarc=fail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, header, err := authenticate(context.Background(), strings.NewReader(message), testAuthenticator(), tt.opts)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if res.Status != tt.status {
				t.Errorf("status: got %q, want %q", res.Status, tt.status)
			}
			for _, s := range tt.want {
				if !strings.Contains(header, s) {
					t.Errorf("header %q lacks %q", header, s)
				}
			}
			if n := methodCount(header, "dmarc"); n != 1 {
				t.Errorf("header %q has %d dmarc results, want 1", header, n)
			}
		})
	}
}

func TestAuthenticatePriorResults(t *testing.T) {
	tests := []struct {
		name   string
		opts   options
		status dmarc.Status
		counts map[string]int
	}{
		{
			name:   "all prior results kept",
			opts:   options{authservID: "mx.example.net", prev: true},
			status: dmarc.StatusPass,
			counts: map[string]int{"dkim": 2, "iprev": 1, "spf": 1, "dmarc": 1},
		},
		{
			name:   "flag replaces prior results of its kind",
			opts:   options{authservID: "mx.example.net", dkim: "fail", dkimDomain: "allsetnow.com", prev: true},
			status: dmarc.StatusPass,
			counts: map[string]int{"dkim": 1, "iprev": 1, "spf": 1, "dmarc": 1},
		},
		{
			name:   "without prev",
			opts:   options{authservID: "mx.example.net"},
			status: dmarc.StatusFail,
			counts: map[string]int{"dkim": 0, "iprev": 0, "spf": 0, "dmarc": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, header, err := authenticate(context.Background(), strings.NewReader(signedMessage), testAuthenticator(), tt.opts)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if res.Status != tt.status {
				t.Errorf("status: got %q, want %q", res.Status, tt.status)
			}
			for method, want := range tt.counts {
				if n := methodCount(header, method); n != want {
					t.Errorf("header %q has %d %s results, want %d", header, n, method, want)
				}
			}
		})
	}
}

func TestFlagOutcomes(t *testing.T) {
	l := options{spf: "PASS", mailFrom: "a@example.com", arc: "none"}.flagOutcomes()
	if len(l) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(l))
	}
	if spf, ok := l.Find(dmarc.KindSPF); !ok || spf.Result != authres.ResultPass || spf.Domain != "a@example.com" {
		t.Errorf("spf: got %+v", spf)
	}
	if _, ok := l.Find(dmarc.KindDKIM); ok {
		t.Error("unexpected dkim outcome")
	}
}
