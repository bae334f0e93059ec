package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dmarcpolicy.conf")
	if err := os.WriteFile(path, []byte("Mode: psd\nLogLevel: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		common  Common
		mode    string
		level   string
		wantErr bool
	}{
		{"defaults", Common{}, "dmarc", "info", false},
		{"config file", Common{ConfigPath: path}, "psd", "warn", false},
		{"verbose overrides level", Common{ConfigPath: path, Verbose: true}, "psd", "debug", false},
		{"missing config", Common{ConfigPath: filepath.Join(dir, "missing.conf")}, "", "", true},
		{"bad log format", Common{LogFormat: "xml"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			conf, log, err := tt.common.Load(&b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if conf.Mode != tt.mode || conf.LogLevel != tt.level {
				t.Errorf("got mode %q level %q", conf.Mode, conf.LogLevel)
			}
			if log == nil {
				t.Error("nil logger")
			}
		})
	}
}

func TestDescribeConfigCmd(t *testing.T) {
	cmd := DescribeConfigCmd()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(b.String(), "Mode:") {
		t.Errorf("got %q", b.String())
	}
}
