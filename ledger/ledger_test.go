package ledger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"booking-assistant/ledger"
	"booking-assistant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:           "appt-1",
			TechnicianID: 7,
			Start:        time.Date(2025, 10, 21, 14, 0, 0, 0, time.UTC),
			End:          time.Date(2025, 10, 21, 15, 0, 0, 0, time.UTC),
			Trade:        "plumbing",
		},
		{
			ID:           "appt-2",
			TechnicianID: 8,
			Start:        time.Date(2025, 10, 22, 9, 30, 0, 0, time.UTC),
			End:          time.Date(2025, 10, 22, 10, 30, 0, 0, time.UTC),
			Trade:        "hvac",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.jsonl")

	led := ledger.New(path)
	for _, appt := range sampleAppointments() {
		led.Append(appt)
	}
	require.NoError(t, led.Save())

	loaded := ledger.Load(path, zap.NewNop())
	require.Equal(t, led.Len(), loaded.Len())
	for i, want := range led.Appointments() {
		got := loaded.Appointments()[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.TechnicianID, got.TechnicianID)
		assert.Equal(t, want.Trade, got.Trade)
		assert.True(t, want.Start.Equal(got.Start), "start timestamp drifted")
		assert.True(t, want.End.Equal(got.End), "end timestamp drifted")
	}
}

func TestSaveWritesOneRecordPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.jsonl")

	led := ledger.New(path)
	for _, appt := range sampleAppointments() {
		led.Append(appt)
	}
	require.NoError(t, led.Save())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "{"))
		assert.True(t, strings.HasSuffix(line, "}"))
	}
}

func TestSaveOverwritesPriorContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.jsonl")

	led := ledger.New(path)
	led.Append(sampleAppointments()[0])
	require.NoError(t, led.Save())
	led.Append(sampleAppointments()[1])
	require.NoError(t, led.Save())

	loaded := ledger.Load(path, zap.NewNop())
	assert.Equal(t, 2, loaded.Len())
}

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		content     *string // nil = no file
		expectedIDs []string
	}{
		"MissingFile_EmptyLedger": {
			content:     nil,
			expectedIDs: nil,
		},
		"EmptyFile_EmptyLedger": {
			content:     ptr(""),
			expectedIDs: nil,
		},
		"GarbageFile_EmptyLedger": {
			content:     ptr("not json at all\n"),
			expectedIDs: nil,
		},
		"TruncatedTrailingRecord_KeepsIntactPrefix": {
			content: ptr(`{"id":"appt-1","technician_id":7,"start":"2025-10-21T14:00:00Z","end":"2025-10-21T15:00:00Z","trade":"plumbing"}
{"id":"appt-2","technician_id":8,"start":"2025-10-22T09:30:00Z","end"`),
			expectedIDs: []string{"appt-1"},
		},
		"BlankLinesIgnored": {
			content: ptr(`{"id":"appt-1","technician_id":7,"start":"2025-10-21T14:00:00Z","end":"2025-10-21T15:00:00Z","trade":"plumbing"}

{"id":"appt-2","technician_id":8,"start":"2025-10-22T09:30:00Z","end":"2025-10-22T10:30:00Z","trade":"hvac"}
`),
			expectedIDs: []string{"appt-1", "appt-2"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "appointments.jsonl")
			if tc.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tc.content), 0o644))
			}

			loaded := ledger.Load(path, zap.NewNop())
			ids := make([]string, 0, loaded.Len())
			for _, appt := range loaded.Appointments() {
				ids = append(ids, appt.ID)
			}
			if tc.expectedIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tc.expectedIDs, ids)
			}
		})
	}
}

func TestForTechnician(t *testing.T) {
	led := ledger.New("")
	for _, appt := range sampleAppointments() {
		led.Append(appt)
	}

	assert.Len(t, led.ForTechnician(7), 1)
	assert.Len(t, led.ForTechnician(8), 1)
	assert.Empty(t, led.ForTechnician(99))
}

func TestSaveFailureSurfaces(t *testing.T) {
	// The ledger path points into a directory that does not exist, so the
	// temp-file write must fail and the error must reach the caller.
	led := ledger.New(filepath.Join(t.TempDir(), "missing-dir", "appointments.jsonl"))
	led.Append(sampleAppointments()[0])
	assert.Error(t, led.Save())
}

func ptr(s string) *string { return &s }
