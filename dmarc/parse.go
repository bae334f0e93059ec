package dmarc

import (
	"fmt"
	"strings"
)

// ParseRecord parses a DMARC TXT record string.
//
// The first segment must be "v=DMARC1", with the tag exactly "v" and the value
// compared case-insensitively. Otherwise the text is not a DMARC record and
// isDMARC is false. Tags and values are returned in lower case for easy
// comparison. If a tag occurs multiple times, the last occurrence wins.
//
// A segment that is not a tag=value pair makes the whole record invalid: the
// record is nil and err wraps ErrMalformedRecord.
func ParseRecord(s string) (record Record, isDMARC bool, err error) {
	// Zone files escape the separator, "v=DMARC1\; p=none" is seen in the wild.
	s = strings.ReplaceAll(s, `\;`, ";")
	segments := strings.Split(s, ";")

	tag, value, ok := strings.Cut(segments[0], "=")
	if !ok || strings.TrimSpace(tag) != TagVersion {
		return nil, false, nil
	}
	if !strings.EqualFold(strings.TrimSuffix(strings.TrimSpace(value), `\`), Version) {
		return nil, false, nil
	}

	r := Record{TagVersion: Version}
	for i, seg := range segments[1:] {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		tag, value, ok := strings.Cut(seg, "=")
		if !ok {
			return nil, true, fmt.Errorf("%w: segment %d %q is not a tag=value pair", ErrMalformedRecord, i+2, strings.TrimSpace(seg))
		}
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			return nil, true, fmt.Errorf("%w: segment %d has empty tag", ErrMalformedRecord, i+2)
		}
		if tag == TagVersion {
			continue
		}
		r[tag] = strings.ToLower(strings.TrimSpace(value))
	}
	return r, true, nil
}
