package scheduler

import (
	"sort"
	"time"

	"booking-assistant/ledger"
	"booking-assistant/metrics"
	"booking-assistant/models"

	"github.com/google/uuid"
)

// SlotDuration is the fixed length of every appointment in this version.
const SlotDuration = time.Hour

// Coverage hour labels. Zones covered by two or more technicians get the
// extended schedule.
const (
	extendedHours = "Mon-Sat 08:00-18:00"
	standardHours = "Mon-Fri 09:00-17:00"
)

// FindMatching filters the roster to technicians that handle the trade and
// serve the zip code. The returned order is the roster order, which is the
// tie-break used by booking: first match in roster order wins.
func FindMatching(trade, zip string, technicians []models.Technician) []models.Technician {
	var matches []models.Technician
	for _, t := range technicians {
		if t.Supports(trade) && t.CoversZone(zip) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. An appointment ending exactly when another starts does not
// conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return e1.After(s2) && e2.After(s1)
}

// IsAvailable reports whether the technician has no appointment overlapping
// [start,end). This is an O(n) scan over the full ledger per check, which
// is fine at this scale.
func IsAvailable(technicianID int, start, end time.Time, led *ledger.Ledger) bool {
	for _, appt := range led.Appointments() {
		if appt.TechnicianID != technicianID {
			continue
		}
		if Overlaps(appt.Start, appt.End, start, end) {
			return false
		}
	}
	return true
}

// BookFirstAvailable books the first technician in roster order that
// matches the trade and zip and has no conflicting appointment in the
// requested one-hour window. On success the new appointment is appended to
// the ledger and returned; on no availability the ledger is left untouched
// and ok is false. First-fit, not best-fit: given the same roster order and
// ledger state the same technician is always selected.
func BookFirstAvailable(trade, zip string, requestedStart time.Time, technicians []models.Technician, led *ledger.Ledger) (*models.BookingResult, bool) {
	timer := time.Now()
	defer func() {
		metrics.BookingDurationSeconds.Observe(time.Since(timer).Seconds())
	}()
	metrics.TradeRequestsTotal.WithLabelValues(trade).Inc()

	candidates := FindMatching(trade, zip, technicians)
	metrics.CandidatesPerRequest.Observe(float64(len(candidates)))
	if len(candidates) == 0 {
		metrics.NoAvailabilityTotal.Inc()
		return nil, false
	}

	end := requestedStart.Add(SlotDuration)
	for _, tech := range candidates {
		if !IsAvailable(tech.ID, requestedStart, end, led) {
			continue
		}
		appt := models.Appointment{
			ID:           uuid.NewString(),
			TechnicianID: tech.ID,
			Start:        requestedStart,
			End:          end,
			Trade:        trade,
		}
		led.Append(appt)
		metrics.BookingsTotal.Inc()
		return &models.BookingResult{Technician: tech, Appointment: appt}, true
	}

	metrics.NoAvailabilityTotal.Inc()
	return nil, false
}

// DeriveLocations returns the sorted union of all zones covered by the
// roster.
func DeriveLocations(technicians []models.Technician) []string {
	seen := make(map[string]struct{})
	for _, t := range technicians {
		for z := range t.Zones {
			seen[z] = struct{}{}
		}
	}
	zones := make([]string, 0, len(seen))
	for z := range seen {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}

// DeriveServicesOffered returns the sorted union of all business units
// across the roster.
func DeriveServicesOffered(technicians []models.Technician) []string {
	seen := make(map[string]struct{})
	for _, t := range technicians {
		for bu := range t.BusinessUnits {
			seen[bu] = struct{}{}
		}
	}
	services := make([]string, 0, len(seen))
	for s := range seen {
		services = append(services, s)
	}
	sort.Strings(services)
	return services
}

// DeriveCoverageHours maps each covered zone to its service hours. Zones
// covered by multiple technicians are assumed to have extended hours due
// to the greater coverage.
func DeriveCoverageHours(technicians []models.Technician) map[string]string {
	counts := make(map[string]int)
	for _, t := range technicians {
		for z := range t.Zones {
			counts[z]++
		}
	}
	hours := make(map[string]string, len(counts))
	for zone, count := range counts {
		if count >= 2 {
			hours[zone] = extendedHours
		} else {
			hours[zone] = standardHours
		}
	}
	return hours
}
