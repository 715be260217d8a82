package formatter_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"booking-assistant/formatter"
	"booking-assistant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.BookingResult {
	return &models.BookingResult{
		Technician: models.NewTechnician(7, "Alice", []string{"10001"}, []string{"plumbing"}),
		Appointment: models.Appointment{
			ID:           "conf-123",
			TechnicianID: 7,
			Start:        time.Date(2025, 10, 21, 14, 0, 0, 0, time.UTC),
			End:          time.Date(2025, 10, 21, 15, 0, 0, 0, time.UTC),
			Trade:        "plumbing",
		},
	}
}

func TestFormatConfirmation(t *testing.T) {
	out := formatter.FormatConfirmation(sampleResult(), "10001")

	contains := []string{
		"You're all set!",
		"- Confirmation: conf-123",
		"- Technician: Alice",
		"- Service: plumbing",
		"- When: 2025-10-21 14:00",
		"- Where (zip): 10001",
	}
	for _, s := range contains {
		assert.True(t, strings.Contains(out, s), "output missing %q:\n%s", s, out)
	}
}

func TestFormatConfirmationJSON(t *testing.T) {
	out := formatter.FormatConfirmationJSON(sampleResult(), "10001")

	var c formatter.Confirmation
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "conf-123", c.ConfirmationID)
	assert.Equal(t, "Alice", c.Technician)
	assert.Equal(t, 7, c.TechnicianID)
	assert.Equal(t, "plumbing", c.Service)
	assert.Equal(t, "2025-10-21 14:00", c.Start)
	assert.Equal(t, "2025-10-21 15:00", c.End)
	assert.Equal(t, "10001", c.Zip)
}

func TestFormatNoAvailability(t *testing.T) {
	out := formatter.FormatNoAvailability("plumbing", "10001",
		time.Date(2025, 10, 21, 14, 30, 0, 0, time.UTC))

	assert.Contains(t, out, "no availability")
	assert.Contains(t, out, "plumbing")
	assert.Contains(t, out, "10001")
	assert.Contains(t, out, "2025-10-21 14:30")
}

func TestFormatCoverage(t *testing.T) {
	tests := map[string]struct {
		hoursByZone map[string]string
		contains    []string
	}{
		"Empty": {
			hoursByZone: nil,
			contains:    []string{"not currently serving any locations"},
		},
		"SortedZones": {
			hoursByZone: map[string]string{
				"20002": "Mon-Fri 09:00-17:00",
				"10001": "Mon-Sat 08:00-18:00",
			},
			contains: []string{
				"- 10001: Mon-Sat 08:00-18:00\n- 20002: Mon-Fri 09:00-17:00",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := formatter.FormatCoverage(tc.hoursByZone)
			for _, s := range tc.contains {
				assert.True(t, strings.Contains(out, s), "output missing %q:\n%s", s, out)
			}
		})
	}
}

func TestFormatServices(t *testing.T) {
	tests := map[string]struct {
		services []string
		contains []string
	}{
		"Empty": {
			services: nil,
			contains: []string{"don't have any services listed"},
		},
		"List": {
			services: []string{"electrical", "hvac", "plumbing"},
			contains: []string{"- electrical\n- hvac\n- plumbing"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := formatter.FormatServices(tc.services)
			for _, s := range tc.contains {
				assert.True(t, strings.Contains(out, s), "output missing %q:\n%s", s, out)
			}
		})
	}
}
