// Package publicsuffix determines organizational domains using the public
// suffix list.
//
// Example.com has a public suffix "com", and example.co.uk has a public
// suffix "co.uk". The organizational domain of sub.example.com is
// example.com, and the organizational domain of sub.example.co.uk is
// example.co.uk.
//
// A List is parsed from a file in the standard public suffix list format,
// whose location is part of the configuration. Builtin returns a ruleset
// using the list compiled into golang.org/x/net/publicsuffix, for callers
// without a list file.
package publicsuffix

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/idna"

	"github.com/synqronlabs/dmarcpolicy/utils"
)

// Ruleset computes public suffixes and organizational domains.
// Implementations are immutable and safe for concurrent use.
type Ruleset interface {
	// PublicSuffix returns the public suffix of domain.
	PublicSuffix(domain string) string

	// OrganizationalDomain returns the public suffix of domain plus one label.
	// A domain that is a public suffix itself is returned unchanged.
	OrganizationalDomain(domain string) string
}

// Labels map from labels to labels for subdomains.
// The end of a rule is marked with an empty string as label.
type labels map[string]labels

// List is a parsed public suffix list.
type List struct {
	includes, excludes labels
	rules              int
}

var _ Ruleset = (*List)(nil)

// ParseOptions controls which rules of a list are used.
type ParseOptions struct {
	// ICANNOnly restricts the list to the "ICANN DOMAINS" section, leaving out
	// the privately registered suffixes.
	ICANNOnly bool
}

// ParseFile parses the public suffix list at path.
func ParseFile(log *slog.Logger, path string, opts ParseOptions) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening public suffix list: %w", err)
	}
	defer f.Close()
	return ParseList(log, f, opts)
}

// ParseList parses a public suffix list. Invalid rules are logged and skipped.
func ParseList(log *slog.Logger, r io.Reader, opts ParseOptions) (*List, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("pkg", "publicsuffix"))

	list := &List{includes: labels{}, excludes: labels{}}
	br := bufio.NewReader(r)

	var icannDomains bool
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "// ===BEGIN ICANN DOMAINS==="):
				icannDomains = true
			case strings.HasPrefix(line, "// ===END ICANN DOMAINS==="):
				icannDomains = false
			case line == "" || strings.HasPrefix(line, "//"):
			case opts.ICANNOnly && !icannDomains:
			default:
				// Rules end at the first whitespace.
				if i := strings.IndexAny(line, " \t"); i >= 0 {
					line = line[:i]
				}
				list.add(log, line)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading public suffix list: %w", err)
		}
	}
	return list, nil
}

func (l *List) add(log *slog.Logger, line string) {
	tree := l.includes
	rule := line
	if strings.HasPrefix(rule, "!") {
		rule = rule[1:]
		tree = l.excludes
		if !strings.Contains(rule, ".") {
			log.Warn("exclude rule with single label, skipping", slog.String("line", line))
			return
		}
	}

	t := strings.Split(rule, ".")
	for i, w := range t {
		if w == "" {
			log.Warn("empty label in rule, skipping", slog.String("line", line))
			return
		}
		if w == "*" {
			continue
		}
		ascii, err := idna.Lookup.ToASCII(w)
		if err != nil {
			log.Warn("invalid label in rule, skipping", slog.String("line", line), slog.Any("error", err))
			return
		}
		t[i] = strings.ToLower(ascii)
	}

	for i := len(t) - 1; i >= 0; i-- {
		m, ok := tree[t[i]]
		if !ok {
			m = labels{}
			tree[t[i]] = m
		}
		tree = m
	}
	if _, dup := tree[""]; dup {
		log.Debug("duplicate rule", slog.String("line", line))
		return
	}
	tree[""] = nil
	l.rules++
}

// Len returns the number of rules in the list.
func (l *List) Len() int {
	return l.rules
}

// suffixLabels returns the number of labels of the public suffix of t.
func (l *List) suffixLabels(t []string) int {
	if nexcl, ok := match(l.excludes, t); ok {
		return nexcl - 1
	}
	if nincl, ok := match(l.includes, t); ok && nincl > 0 {
		return nincl
	}
	// Implicit "*" rule.
	return 1
}

// PublicSuffix returns the public suffix of domain.
func (l *List) PublicSuffix(domain string) string {
	domain = normalize(domain)
	t := utils.Labels(domain)
	return utils.LastLabels(domain, l.suffixLabels(t))
}

// OrganizationalDomain returns the organizational domain. If domain is an
// organizational domain, or higher-level, the same domain is returned.
func (l *List) OrganizationalDomain(domain string) string {
	domain = normalize(domain)
	t := utils.Labels(domain)
	return utils.LastLabels(domain, l.suffixLabels(t)+1)
}

// normalize lower-cases domain and converts internationalized labels to
// their ASCII form, the form rules are stored in.
func normalize(domain string) string {
	domain = utils.NormalizeDomain(domain)
	if utils.ContainsNonASCII(domain) {
		if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
			domain = strings.ToLower(ascii)
		}
	}
	return domain
}

// match returns the number of trailing labels of t matching a rule in l, and
// whether a rule matched.
func match(l labels, t []string) (int, bool) {
	if len(t) == 0 {
		_, ok := l[""]
		return 0, ok
	}
	s := t[len(t)-1]
	t = t[:len(t)-1]
	n := 0
	if m, mok := l[s]; mok {
		if nn, sok := match(m, t); sok {
			n = 1 + nn
		}
	}
	if m, mok := l["*"]; mok {
		if nn, sok := match(m, t); sok && nn >= n {
			n = 1 + nn
		}
	}
	_, mok := l[""]
	return n, n > 0 || mok
}
