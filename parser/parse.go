package parser

import (
	"booking-assistant/errors"
	"booking-assistant/models"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
)

// profileFile mirrors the on-disk layout of the technician data file.
type profileFile struct {
	TechnicianProfiles []rawProfile `json:"Technician_Profiles"`
}

type rawProfile struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Zones         []string `json:"zones"`
	BusinessUnits []string `json:"business_units"`
}

// Parse reads technician profile data from the reader and returns the
// roster in file order. That order is significant: it is the tie-break
// used when several technicians match a booking request.
// Each record is validated before conversion; a bad record fails the
// whole load with a ProfileError naming the offending entry.
func Parse(r io.Reader) ([]models.Technician, error) {
	var file profileFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("error decoding profile data: %w", err)
	}

	if len(file.TechnicianProfiles) == 0 {
		return nil, errors.ErrEmptyProfiles
	}

	technicians := make([]models.Technician, 0, len(file.TechnicianProfiles))
	for i, p := range file.TechnicianProfiles {
		if p.ID <= 0 {
			return nil, &errors.ProfileError{
				Index: i,
				Name:  p.Name,
				Err:   fmt.Errorf("%w: %d", errors.ErrInvalidID, p.ID),
			}
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, &errors.ProfileError{
				Index: i,
				Err:   errors.ErrMissingName,
			}
		}
		for _, z := range p.Zones {
			if _, ok := NormalizeZip(z); !ok {
				return nil, &errors.ProfileError{
					Index: i,
					Name:  p.Name,
					Err:   fmt.Errorf("%w: %q", errors.ErrInvalidZone, z),
				}
			}
		}
		technicians = append(technicians, models.NewTechnician(
			p.ID, strings.TrimSpace(p.Name), p.Zones, p.BusinessUnits))
	}

	return technicians, nil
}

// requestedTimeLayouts are the accepted forms for a requested start time,
// tried in order. Anything else is rejected.
var requestedTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseRequestedTime parses a requested appointment start from user input.
// The second return value is false when the text matches no accepted
// layout; the caller re-prompts rather than treating that as an error.
func ParseRequestedTime(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range requestedTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeZip extracts the digits from user input and accepts the result
// only if it is exactly five digits long.
func NormalizeZip(value string) (string, bool) {
	var sb strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	zip := sb.String()
	if len(zip) != 5 {
		return "", false
	}
	return zip, true
}
