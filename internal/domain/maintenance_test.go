package domain

import (
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestMaintenanceRecord_HistoryBetween(t *testing.T) {
	day := func(d int) *time.Time {
		return common.Ptr(time.Date(2026, 1, d, 9, 0, 0, 0, time.UTC))
	}
	record := MaintenanceRecord{
		DeviceID: "chiller_1",
		History: []MaintenanceTicket{
			{Description: "newest", ReportedAt: day(20)},
			{Description: "middle", ReportedAt: day(10)},
			{Description: "undated"},
			{Description: "oldest", ReportedAt: day(1)},
		},
	}

	tests := map[string]struct {
		from, to time.Time
		expected []string
	}{
		"open-range-keeps-everything": {
			expected: []string{"newest", "middle", "undated", "oldest"},
		},
		"lower-bound-only": {
			from:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			expected: []string{"newest", "middle"},
		},
		"upper-bound-only": {
			to:       time.Date(2026, 1, 10, 23, 59, 59, 0, time.UTC),
			expected: []string{"middle", "oldest"},
		},
		"closed-range": {
			from:     time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2026, 1, 10, 23, 59, 59, 0, time.UTC),
			expected: []string{"middle"},
		},
		"empty-range": {
			from:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := record.HistoryBetween(tt.from, tt.to)
			descriptions := make([]string, 0, len(got))
			for _, ticket := range got {
				descriptions = append(descriptions, ticket.Description)
			}
			assert.Equal(t, tt.expected, descriptions)
		})
	}
}

func TestMaintenanceRecord_Latest(t *testing.T) {
	_, ok := MaintenanceRecord{}.Latest()
	assert.False(t, ok)

	record := MaintenanceRecord{History: []MaintenanceTicket{{Technician: "Somchai"}, {Technician: "Anan"}}}
	latest, ok := record.Latest()
	assert.True(t, ok)
	assert.Equal(t, "Somchai", latest.Technician)
	assert.True(t, latest.IsOpen())
}
