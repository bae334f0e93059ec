package psd

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/synqronlabs/dmarcpolicy/utils"
)

// Dataset is a local copy of the PSD DMARC registry: a two-column CSV file
// of domain and status, as published by psddmarc.org.
//
// A Dataset is immutable once parsed and safe for concurrent use.
type Dataset struct {
	status map[string]string
}

var _ Source = (*Dataset)(nil)

// Statuses under which a listed domain counts as participant.
var participantStatus = []string{"current", "active"}

// LoadDataset reads the dataset at path. If the file cannot be read, the
// returned dataset is nil and answers Unavailable. Invalid lines are skipped,
// the returned dataset is then usable and the error lists the bad lines.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening psd dataset: %w", err)
	}
	defer f.Close()
	return ParseDataset(f)
}

// ParseDataset parses a dataset. Lines are "domain,status", an optional
// header line is skipped, names may be quoted and have a leading dot.
func ParseDataset(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	d := &Dataset{status: map[string]string{}}
	var errs *multierror.Error
	for first := true; ; first = false {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				errs = multierror.Append(errs, err)
				continue
			}
			return nil, fmt.Errorf("reading psd dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(fields) < 2 {
			errs = multierror.Append(errs, fmt.Errorf("line %d: expected domain and status, got %d fields", line, len(fields)))
			continue
		}
		name := utils.NormalizeDomain(strings.TrimPrefix(strings.TrimSpace(fields[0]), "."))
		status := strings.ToLower(strings.TrimSpace(fields[1]))
		if first && (name == "domain" || name == "name") {
			continue
		}
		if name == "" {
			errs = multierror.Append(errs, fmt.Errorf("line %d: empty domain", line))
			continue
		}
		d.status[name] = status
	}
	return d, errs.ErrorOrNil()
}

// Len returns the number of listed domains.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.status)
}

// Lookup returns Participant if name is listed with a current or active
// status, NotParticipant otherwise. A nil dataset is Unavailable.
func (d *Dataset) Lookup(ctx context.Context, name string) Membership {
	if d == nil {
		return Unavailable
	}
	status, ok := d.status[utils.NormalizeDomain(name)]
	if !ok {
		return NotParticipant
	}
	for _, s := range participantStatus {
		if status == s {
			return Participant
		}
	}
	return NotParticipant
}
