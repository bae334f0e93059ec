package dmarc

import (
	"slices"
	"strings"
)

// Tags with meaning for policy discovery and alignment. Other tags, like rua
// and ruf, are kept in the record as published.
const (
	TagVersion           = "v"
	TagPolicy            = "p"
	TagSubdomainPolicy   = "sp"
	TagNonexistentPolicy = "np"
	TagADKIM             = "adkim"
	TagASPF              = "aspf"
	TagPSD               = "psd"
)

// Version is the only supported value of the v tag.
const Version = "DMARC1"

// Record is a parsed DMARC DNS TXT record, a mapping of tag to value. Tags
// and values are lower case, except for the v tag, which is always "DMARC1".
//
// Example record:
//
//	v=DMARC1; p=reject; rua=mailto:dmarc@example.com
type Record map[string]string

// canonicalOrder is the order of tags in String, other tags follow sorted.
var canonicalOrder = []string{TagVersion, TagPolicy, TagSubdomainPolicy, TagNonexistentPolicy, TagADKIM, TagASPF, TagPSD}

// value returns the value of tag without a trailing backslash left by zone
// file escaping.
func (r Record) value(tag string) string {
	return strings.TrimSuffix(r[tag], `\`)
}

// Policy returns the p tag. A record without it is unusable.
func (r Record) Policy() Policy {
	return Policy(r.value(TagPolicy))
}

// HasPolicy returns whether the mandatory p tag is present and non-empty.
func (r Record) HasPolicy() bool {
	return r.Policy() != PolicyEmpty
}

// SubdomainPolicy returns the sp tag, or p if sp is absent.
func (r Record) SubdomainPolicy() Policy {
	if sp, ok := r[TagSubdomainPolicy]; ok && sp != "" {
		return Policy(r.value(TagSubdomainPolicy))
	}
	return r.Policy()
}

// NonexistentPolicy returns the np tag and whether it was published. Use
// EffectiveNonexistentPolicy for the value with fallback.
func (r Record) NonexistentPolicy() (Policy, bool) {
	np, ok := r[TagNonexistentPolicy]
	if !ok || np == "" {
		return PolicyEmpty, false
	}
	return Policy(r.value(TagNonexistentPolicy)), true
}

// EffectiveNonexistentPolicy returns the np tag, or the subdomain policy if
// np is absent.
func (r Record) EffectiveNonexistentPolicy() Policy {
	if np, ok := r.NonexistentPolicy(); ok {
		return np
	}
	return r.SubdomainPolicy()
}

// ADKIM returns the DKIM alignment mode, relaxed by default.
func (r Record) ADKIM() Align {
	return alignment(r.value(TagADKIM))
}

// ASPF returns the SPF alignment mode, relaxed by default.
func (r Record) ASPF() Align {
	return alignment(r.value(TagASPF))
}

func alignment(v string) Align {
	if Align(v) == AlignStrict {
		return AlignStrict
	}
	return AlignRelaxed
}

// PSD returns the psd tag: "y", "n", "u" or empty when absent.
func (r Record) PSD() string {
	return r.value(TagPSD)
}

// String returns the DMARC record formatted for DNS TXT.
func (r Record) String() string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	write := func(tag string) {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(tag)
		b.WriteString("=")
		b.WriteString(r[tag])
	}

	for _, tag := range canonicalOrder {
		if _, ok := r[tag]; ok {
			write(tag)
		}
	}
	var other []string
	for tag := range r {
		if !slices.Contains(canonicalOrder, tag) {
			other = append(other, tag)
		}
	}
	slices.Sort(other)
	for _, tag := range other {
		write(tag)
	}
	return b.String()
}
