package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidScheduleTime(t *testing.T) {
	tests := map[string]struct {
		value string
		valid bool
	}{
		"zero-padded":        {value: "08:00", valid: true},
		"last-minute":        {value: "23:59", valid: true},
		"single-digit-hour":  {value: "8:30", valid: true},
		"midnight":           {value: "00:00", valid: true},
		"hour-24":            {value: "24:00", valid: false},
		"minute-60":          {value: "8:60", valid: false},
		"single-digit-min":   {value: "8:5", valid: false},
		"seconds-not-taken":  {value: "08:00:00", valid: false},
		"empty":              {value: "", valid: false},
		"trailing-space":     {value: "08:00 ", valid: false},
		"dot-separator":      {value: "08.00", valid: false},
		"three-digit-hour":   {value: "123:00", valid: false},
		"negative-like-text": {value: "-1:00", valid: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidScheduleTime(tt.value))
		})
	}
}

func TestParseScheduleProfile(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected ScheduleProfile
		wantErr  bool
	}{
		"stored-key":       {input: "weekday_profile", expected: ScheduleProfile_Weekday},
		"short-form":       {input: "holiday", expected: ScheduleProfile_Holiday},
		"capitalized-ui":   {input: "Weekend", expected: ScheduleProfile_Weekend},
		"surrounding-ws":   {input: " weekend_profile ", expected: ScheduleProfile_Weekend},
		"unknown-profile":  {input: "monthly", wantErr: true},
		"empty-profile":    {input: "", wantErr: true},
		"double-suffix":    {input: "weekday_profile_profile", wantErr: true},
		"normal-is-bucket": {input: "normal", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseScheduleProfile(tt.input)
			if tt.wantErr {
				var vErr *ValidationErr
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateScheduleEntries(t *testing.T) {
	tests := map[string]struct {
		entries []ScheduleEntry
		wantErr string
	}{
		"valid": {
			entries: []ScheduleEntry{{Start: "08:00", Stop: "18:00"}, {Start: "19:00", Stop: "23:30"}},
		},
		"empty-list": {
			entries: nil,
			wantErr: "at least one schedule entry is required",
		},
		"bad-stop": {
			entries: []ScheduleEntry{{Start: "08:00", Stop: "24:00"}},
			wantErr: "Invalid time format",
		},
		"placeholder-is-invalid": {
			entries: []ScheduleEntry{{}},
			wantErr: "Invalid time format",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateScheduleEntries(tt.entries)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSameScheduleEntries(t *testing.T) {
	assert.True(t, SameScheduleEntries([]ScheduleEntry{{}}, nil))
	assert.True(t, SameScheduleEntries(
		[]ScheduleEntry{{Start: "08:00", Stop: "18:00"}},
		[]ScheduleEntry{{Start: "08:00", Stop: "18:00"}, {}},
	))
	assert.False(t, SameScheduleEntries(
		[]ScheduleEntry{{Start: "08:00", Stop: "18:00"}},
		[]ScheduleEntry{{Start: "08:00", Stop: "17:00"}},
	))
}

func TestProfileSchedule_Availability(t *testing.T) {
	ps := ProfileSchedule{
		NormalChiller: []ScheduleEntry{{Start: "00:00", Stop: "23:59"}},
		ExcludedChiller: map[string][]ScheduleEntry{
			"chiller_3": {},
		},
	}

	assert.Equal(t, ScheduleAvailability{Available: true, Message: "Available for scheduling"}, ps.Availability("chiller_3"))
	assert.Equal(t, ScheduleAvailability{Message: "Chiller not in excluded list"}, ps.Availability("chiller_1"))
}

func TestChillerLabel(t *testing.T) {
	assert.Equal(t, "CH-1", ChillerLabel("chiller_1"))
	assert.Equal(t, "pchp_1", ChillerLabel("pchp_1"))
	assert.True(t, IsKnownChiller("chiller_8"))
	assert.False(t, IsKnownChiller("chiller_5"))
}
