package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{"logfmt", FormatLogfmt, false},
		{"text", FormatText, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	var b bytes.Buffer
	log := New(&b, slog.LevelInfo, FormatJSON)
	log.Debug("hidden")
	log.Info("dmarc check", slog.String("from_domain", "example.com"))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), b.String())
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("parsing %q: %v", lines[0], err)
	}
	if m["msg"] != "dmarc check" || m["from_domain"] != "example.com" {
		t.Errorf("got %v", m)
	}
}

func TestNewAuto(t *testing.T) {
	// A buffer is not a terminal, so logfmt is written.
	var b bytes.Buffer
	New(&b, slog.LevelDebug, FormatAuto).Debug("dns query", slog.String("name", "_dmarc.example.com"))
	if !strings.Contains(b.String(), "name=_dmarc.example.com") {
		t.Errorf("got %q, want logfmt", b.String())
	}
}
