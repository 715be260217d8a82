package formatter

import (
	"booking-assistant/models"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04"

// Confirmation is the JSON shape of a booking confirmation.
type Confirmation struct {
	ConfirmationID string `json:"confirmation_id"`
	Technician     string `json:"technician"`
	TechnicianID   int    `json:"technician_id"`
	Service        string `json:"service"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Zip            string `json:"zip"`
}

// prepareConfirmation extracts the caller-facing fields from a booking result.
func prepareConfirmation(result *models.BookingResult, zip string) Confirmation {
	return Confirmation{
		ConfirmationID: result.Appointment.ID,
		Technician:     result.Technician.Name,
		TechnicianID:   result.Technician.ID,
		Service:        result.Appointment.Trade,
		Start:          result.Appointment.Start.Format(timeLayout),
		End:            result.Appointment.End.Format(timeLayout),
		Zip:            zip,
	}
}

// FormatConfirmation returns the text representation of a booking confirmation.
func FormatConfirmation(result *models.BookingResult, zip string) string {
	c := prepareConfirmation(result, zip)
	var sb strings.Builder

	sb.WriteString("You're all set!\n")
	sb.WriteString(fmt.Sprintf("- Confirmation: %s\n", c.ConfirmationID))
	sb.WriteString(fmt.Sprintf("- Technician: %s\n", c.Technician))
	sb.WriteString(fmt.Sprintf("- Service: %s\n", c.Service))
	sb.WriteString(fmt.Sprintf("- When: %s\n", c.Start))
	sb.WriteString(fmt.Sprintf("- Where (zip): %s\n", c.Zip))
	return sb.String()
}

// FormatConfirmationJSON returns the JSON representation of a booking confirmation.
func FormatConfirmationJSON(result *models.BookingResult, zip string) string {
	c := prepareConfirmation(result, zip)
	jsonBytes, _ := json.MarshalIndent(c, "", "  ")
	return string(jsonBytes)
}

// FormatNoAvailability returns the message shown when no technician could
// take the request.
func FormatNoAvailability(trade, zip string, start time.Time) string {
	return fmt.Sprintf(
		"Thanks! I checked our schedule and service area, but there is no availability matching %s in %s at %s. Please try a different time or service zip.",
		trade, zip, start.Format(timeLayout))
}

// FormatCoverage renders the zones-to-hours map with zones in sorted order.
func FormatCoverage(hoursByZone map[string]string) string {
	if len(hoursByZone) == 0 {
		return "We are not currently serving any locations.\n"
	}

	zones := make([]string, 0, len(hoursByZone))
	for z := range hoursByZone {
		zones = append(zones, z)
	}
	sort.Strings(zones)

	var sb strings.Builder
	sb.WriteString("We currently serve these zip codes with the following hours:\n")
	for _, z := range zones {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", z, hoursByZone[z]))
	}
	return sb.String()
}

// FormatServices renders the offered services list.
func FormatServices(services []string) string {
	if len(services) == 0 {
		return "We don't have any services listed at the moment.\n"
	}

	var sb strings.Builder
	sb.WriteString("We offer the following services:\n")
	for _, s := range services {
		sb.WriteString(fmt.Sprintf("- %s\n", s))
	}
	return sb.String()
}
