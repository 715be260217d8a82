package models

import (
	"strings"
	"time"
)

// Technician represents one member of the field-service roster.
// It is loaded once from the profile data file and never mutated.
type Technician struct {
	ID            int
	Name          string
	Zones         map[string]struct{}
	BusinessUnits map[string]struct{}
}

// NewTechnician builds a Technician from raw profile fields. Business units
// are lower-cased so matching against canonical trade tags is exact.
func NewTechnician(id int, name string, zones, businessUnits []string) Technician {
	t := Technician{
		ID:            id,
		Name:          name,
		Zones:         make(map[string]struct{}, len(zones)),
		BusinessUnits: make(map[string]struct{}, len(businessUnits)),
	}
	for _, z := range zones {
		t.Zones[strings.TrimSpace(z)] = struct{}{}
	}
	for _, bu := range businessUnits {
		t.BusinessUnits[strings.ToLower(strings.TrimSpace(bu))] = struct{}{}
	}
	return t
}

// CoversZone reports whether the technician serves the given zip code.
func (t Technician) CoversZone(zip string) bool {
	_, ok := t.Zones[zip]
	return ok
}

// Supports reports whether the technician handles the given canonical trade tag.
func (t Technician) Supports(trade string) bool {
	_, ok := t.BusinessUnits[trade]
	return ok
}

// Appointment is a confirmed booking record. Immutable once created.
// Start and End form a half-open interval [Start, End).
type Appointment struct {
	ID           string    `json:"id"`
	TechnicianID int       `json:"technician_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Trade        string    `json:"trade"`
}

// BookingResult pairs the selected technician with the appointment created
// for them.
type BookingResult struct {
	Technician  Technician
	Appointment Appointment
}
