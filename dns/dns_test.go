package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"reflect"
	"testing"
	"time"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isNotFound bool
		isTimeout  bool
		isServFail bool
		isTemp     bool
	}{
		{
			name:       "not found error",
			err:        ErrDNSNotFound,
			isNotFound: true,
		},
		{
			name:      "timeout error",
			err:       ErrDNSTimeout,
			isTimeout: true,
			isTemp:    true,
		},
		{
			name:       "server failure",
			err:        ErrDNSServFail,
			isServFail: true,
			isTemp:     true,
		},
		{
			name:       "dnssec bogus",
			err:        ErrDNSBogus,
			isServFail: true,
			isTemp:     true,
		},
		{
			name:   "refused",
			err:    ErrDNSRefused,
			isTemp: true,
		},
		{
			name:      "wrapped timeout",
			err:       fmt.Errorf("%w: i/o timeout", ErrDNSTimeout),
			isTimeout: true,
			isTemp:    true,
		},
		{
			name: "text of not found",
			err:  errors.New("wrapper: " + ErrDNSNotFound.Error()),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.isNotFound)
			}
			if got := IsTimeout(tt.err); got != tt.isTimeout {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.isTimeout)
			}
			if got := IsServFail(tt.err); got != tt.isServFail {
				t.Errorf("IsServFail() = %v, want %v", got, tt.isServFail)
			}
			if got := IsTemporary(tt.err); got != tt.isTemp {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.isTemp)
			}
		})
	}
}

// TestResolverInterface verifies that our types implement Resolver
func TestResolverInterface(t *testing.T) {
	var _ Resolver = (*DNSResolver)(nil)
	var _ Resolver = (*StdResolver)(nil)
	var _ Resolver = (*CachedResolver)(nil)
	var _ Resolver = MockResolver{}
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(ResolverConfig{})

	if r.config.Timeout == 0 {
		t.Error("expected default timeout to be set")
	}
	if r.config.Retries == 0 {
		t.Error("expected default retries to be set")
	}
	if len(r.config.Nameservers) == 0 {
		t.Error("expected nameservers to be set")
	}
}

func TestNewStdResolver(t *testing.T) {
	r := NewStdResolver()
	if r == nil {
		t.Fatal("expected non-nil resolver")
	}
	if r.resolver == nil {
		t.Error("expected non-nil internal resolver")
	}
}

func TestMockResolver(t *testing.T) {
	ctx := context.Background()
	r := MockResolver{
		TXT:  map[string][]string{"_dmarc.example.com.": {"v=DMARC1; p=none"}},
		A:    map[string][]string{"example.com.": {"192.0.2.1"}},
		AAAA: map[string][]string{"example.com.": {"2001:db8::1"}},
		MX:   map[string][]*net.MX{"example.com.": {{Host: "mx.example.com.", Pref: 10}}},
		Fail: []string{"txt broken.example."},
	}

	txt, err := r.LookupTXT(ctx, "_dmarc.example.com")
	if err != nil || len(txt.Records) != 1 {
		t.Fatalf("LookupTXT = %v, %v", txt, err)
	}

	a, err := r.LookupA(ctx, "example.com.")
	if err != nil || len(a.Records) != 1 || a.Records[0].To4() == nil {
		t.Fatalf("LookupA = %v, %v", a, err)
	}

	aaaa, err := r.LookupAAAA(ctx, "example.com.")
	if err != nil || len(aaaa.Records) != 1 || aaaa.Records[0].To4() != nil {
		t.Fatalf("LookupAAAA = %v, %v", aaaa, err)
	}

	if _, err := r.LookupMX(ctx, "other.example."); !IsNotFound(err) {
		t.Errorf("LookupMX for missing name: got %v, want not found", err)
	}
	if _, err := r.LookupTXT(ctx, "broken.example"); !IsServFail(err) {
		t.Errorf("LookupTXT for failing name: got %v, want servfail", err)
	}
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	q := Querier{Resolver: MockResolver{
		TXT:     map[string][]string{"example.com.": {"hello"}},
		A:       map[string][]string{"example.com.": {"192.0.2.1"}},
		AAAA:    map[string][]string{"example.com.": {"2001:db8::1"}},
		MX:      map[string][]*net.MX{"example.com.": {{Host: "mx.example.com.", Pref: 10}}},
		Fail:    []string{"txt servfail.example."},
		Timeout: []string{"a timeout.example."},
	}}

	tests := []struct {
		name    string
		qname   string
		qtype   RecordType
		records []string
		absent  bool
		failed  bool
	}{
		{"txt", "example.com", TypeTXT, []string{"hello"}, false, false},
		{"a", "example.com", TypeA, []string{"192.0.2.1"}, false, false},
		{"aaaa", "example.com", TypeAAAA, []string{"2001:db8::1"}, false, false},
		{"mx", "example.com", TypeMX, []string{"mx.example.com"}, false, false},
		{"nxdomain", "missing.example", TypeTXT, nil, true, false},
		{"servfail", "servfail.example", TypeTXT, nil, true, true},
		{"timeout", "timeout.example", TypeA, nil, true, true},
		{"unsupported", "example.com", RecordType("SRV"), nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := q.Query(ctx, tt.qname, tt.qtype)
			if !reflect.DeepEqual(answer.Records, tt.records) {
				t.Errorf("records = %v, want %v", answer.Records, tt.records)
			}
			if answer.Absent() != tt.absent {
				t.Errorf("absent = %v, want %v", answer.Absent(), tt.absent)
			}
			if (answer.Err != nil) != tt.failed {
				t.Errorf("err = %v, want failure %v", answer.Err, tt.failed)
			}
		})
	}
}

// countingResolver counts TXT lookups.
type countingResolver struct {
	MockResolver
	txt int
}

func (r *countingResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	r.txt++
	return r.MockResolver.LookupTXT(ctx, name)
}

func TestCachedResolver(t *testing.T) {
	ctx := context.Background()
	inner := &countingResolver{MockResolver: MockResolver{
		TXT:  map[string][]string{"_dmarc.example.com.": {"v=DMARC1; p=reject"}},
		Fail: []string{"txt _dmarc.broken.example."},
	}}

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewCachedResolver(inner, time.Hour, nil)
	r.now = func() time.Time { return now }

	for range 3 {
		res, err := r.LookupTXT(ctx, "_dmarc.example.com")
		if err != nil || len(res.Records) != 1 {
			t.Fatalf("LookupTXT = %v, %v", res, err)
		}
	}
	if inner.txt != 1 {
		t.Fatalf("got %d upstream lookups, want 1", inner.txt)
	}

	// Negative answers are cached too.
	for range 2 {
		if _, err := r.LookupTXT(ctx, "_dmarc.missing.example."); !IsNotFound(err) {
			t.Fatalf("got %v, want not found", err)
		}
	}
	if inner.txt != 2 {
		t.Fatalf("got %d upstream lookups, want 2", inner.txt)
	}

	// Temporary failures are not.
	for range 2 {
		if _, err := r.LookupTXT(ctx, "_dmarc.broken.example."); !IsServFail(err) {
			t.Fatalf("got %v, want servfail", err)
		}
	}
	if inner.txt != 4 {
		t.Fatalf("got %d upstream lookups, want 4", inner.txt)
	}
	if r.Len() != 2 {
		t.Fatalf("cache has %d entries, want 2", r.Len())
	}

	// Expire.
	now = now.Add(2 * time.Hour)
	if _, err := r.LookupTXT(ctx, "_dmarc.example.com."); err != nil {
		t.Fatalf("LookupTXT after expiry: %v", err)
	}
	if inner.txt != 5 {
		t.Fatalf("got %d upstream lookups after expiry, want 5", inner.txt)
	}
}

func TestCachedResolverRefreshDuringExpiry(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := start.Add(2 * time.Hour)
	key := cacheKey{"txt", "_dmarc.example.com."}
	fresh := Result[string]{Records: []string{"v=DMARC1; p=reject"}}

	r := NewCachedResolver(MockResolver{}, time.Hour, nil)
	r.now = func() time.Time { return start }
	r.put(key, Result[string]{Records: []string{"v=DMARC1; p=none"}}, nil)

	// Another lookup stores a fresh answer while get is deciding the old one
	// is stale.
	r.now = func() time.Time {
		r.now = func() time.Time { return later }
		r.put(key, fresh, nil)
		return later
	}
	if _, ok := r.get(key); ok {
		t.Fatal("stale entry returned")
	}

	entry, ok := r.get(key)
	if !ok {
		t.Fatal("fresh entry was evicted")
	}
	if !reflect.DeepEqual(entry.result, fresh) {
		t.Errorf("got %v, want %v", entry.result, fresh)
	}
}

// Integration test - skip if no network
func TestDNSResolverIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	r := NewResolver(ResolverConfig{
		Nameservers: []string{"8.8.8.8:53"},
	})

	ctx := context.Background()

	txtResult, err := r.LookupTXT(ctx, "_dmarc.google.com")
	if err != nil {
		t.Logf("TXT lookup failed (may be expected): %v", err)
	} else if len(txtResult.Records) == 0 {
		t.Log("No TXT records found for _dmarc.google.com")
	}

	if _, err := r.LookupA(ctx, "google.com"); err != nil {
		t.Logf("A lookup failed (may be expected): %v", err)
	}
}
