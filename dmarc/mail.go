package dmarc

import (
	"fmt"
	"strings"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
)

// FromHeaders returns the values of all From header fields, unfolded.
func FromHeaders(hdr textproto.Header) []string {
	var values []string
	for fields := hdr.FieldsByKey("From"); fields.Next(); {
		v := strings.NewReplacer("\r\n", "", "\n", "").Replace(fields.Value())
		values = append(values, strings.TrimSpace(v))
	}
	return values
}

// fromAddresses parses the addresses of all From header values, in order.
func fromAddresses(values []string) ([]string, error) {
	var addrs []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		list, err := mail.ParseAddressList(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrInvalidFromHeader, v, strings.TrimPrefix(err.Error(), "mail: "))
		}
		for _, a := range list {
			addrs = append(addrs, a.Address)
		}
	}
	return addrs, nil
}
