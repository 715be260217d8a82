// Package ledger persists appointment records as one JSON object per line.
// The full ledger rewrite is the unit of durability: a save either replaces
// the previous file completely or leaves it untouched.
package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"booking-assistant/metrics"
	"booking-assistant/models"

	"go.uber.org/zap"
)

const filePermissions = 0o644

// Ledger is the session-owned, insertion-ordered collection of appointments.
// It is not safe for concurrent use; the assistant is single-session.
type Ledger struct {
	path         string
	appointments []models.Appointment
}

// New returns an empty ledger backed by the given path.
func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Load reads the ledger from stable storage. A missing file yields an empty
// ledger. Unreadable or corrupt storage also degrades to what could be
// recovered rather than failing: because records are written one per line,
// a truncated tail only costs the malformed line and everything after it,
// and the intact prefix is kept. Degradation is logged so the operator can
// see that records were dropped.
func Load(path string, log *zap.Logger) *Ledger {
	l := New(path)

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("appointment storage unreadable, starting with empty ledger",
				zap.String("path", path), zap.Error(err))
		}
		return l
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var appt models.Appointment
		if err := json.Unmarshal(line, &appt); err != nil {
			log.Warn("malformed appointment record, dropping it and the rest of the file",
				zap.String("path", path), zap.Int("line", lineNum), zap.Error(err))
			break
		}
		l.appointments = append(l.appointments, appt)
	}
	if err := scanner.Err(); err != nil {
		log.Warn("error reading appointment storage, keeping records read so far",
			zap.String("path", path), zap.Error(err))
	}

	metrics.LedgerRecoveredRecords.Set(float64(len(l.appointments)))
	metrics.LedgerAppointments.Set(float64(len(l.appointments)))
	return l
}

// Append adds an appointment to the in-memory ledger. Durability is
// deferred to the next Save call.
func (l *Ledger) Append(appt models.Appointment) {
	l.appointments = append(l.appointments, appt)
	metrics.LedgerAppointments.Set(float64(len(l.appointments)))
}

// Appointments returns the records in insertion order. Callers must not
// mutate the returned slice.
func (l *Ledger) Appointments() []models.Appointment {
	return l.appointments
}

// Len returns the number of appointments in the ledger.
func (l *Ledger) Len() int {
	return len(l.appointments)
}

// ForTechnician returns the appointments booked against one technician,
// in insertion order.
func (l *Ledger) ForTechnician(technicianID int) []models.Appointment {
	var out []models.Appointment
	for _, appt := range l.appointments {
		if appt.TechnicianID == technicianID {
			out = append(out, appt)
		}
	}
	return out
}

// Save rewrites the full ledger to stable storage. The records are written
// to a temp file first and renamed over the target, so the on-disk state is
// always the last completed save. A failed save is a genuine fault and is
// returned to the caller.
func (l *Ledger) Save() error {
	var buf []byte
	for _, appt := range l.appointments {
		line, err := json.Marshal(appt)
		if err != nil {
			metrics.LedgerSaveErrorsTotal.Inc()
			return fmt.Errorf("error marshaling appointment %s: %w", appt.ID, err)
		}
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}

	tmpFile := l.path + ".tmp"
	if err := os.WriteFile(tmpFile, buf, filePermissions); err != nil {
		metrics.LedgerSaveErrorsTotal.Inc()
		return fmt.Errorf("error writing appointment storage: %w", err)
	}
	if err := os.Rename(tmpFile, l.path); err != nil {
		metrics.LedgerSaveErrorsTotal.Inc()
		return fmt.Errorf("error replacing appointment storage: %w", err)
	}
	return nil
}
