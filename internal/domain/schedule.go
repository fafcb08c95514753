package domain

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ScheduleProfile identifies the day-type profile a schedule belongs to.
type ScheduleProfile string

const (
	ScheduleProfile_Weekday ScheduleProfile = "weekday_profile"
	ScheduleProfile_Weekend ScheduleProfile = "weekend_profile"
	ScheduleProfile_Holiday ScheduleProfile = "holiday_profile"
)

// ScheduleProfiles lists every known profile in display order.
var ScheduleProfiles = []ScheduleProfile{
	ScheduleProfile_Weekday,
	ScheduleProfile_Weekend,
	ScheduleProfile_Holiday,
}

// ParseScheduleProfile accepts the stored key ("weekend_profile") as well as the
// short form used by the UI ("weekend", "Weekend").
func ParseScheduleProfile(s string) (ScheduleProfile, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasSuffix(key, "_profile") {
		key += "_profile"
	}
	p := ScheduleProfile(key)
	if !slices.Contains(ScheduleProfiles, p) {
		return "", NewValidationErr(fmt.Sprintf("invalid profile type %q", s))
	}
	return p, nil
}

// NormalChillerBucket is the pseudo chiller id addressing the shared normal schedule.
// Entries in this bucket are never editable through the mutation path.
const NormalChillerBucket = "normal"

// ChillerIDs lists the chillers installed at the plant.
var ChillerIDs = []string{
	"chiller_1",
	"chiller_2",
	"chiller_3",
	"chiller_4",
	"chiller_6",
	"chiller_7",
	"chiller_8",
}

// IsKnownChiller reports whether id names an installed chiller.
func IsKnownChiller(id string) bool {
	return slices.Contains(ChillerIDs, id)
}

// ChillerLabel returns the operator facing label of a chiller, e.g. "chiller_1" -> "CH-1".
func ChillerLabel(id string) string {
	if n, ok := strings.CutPrefix(id, "chiller_"); ok {
		return "CH-" + n
	}
	return id
}

// ScheduleTimePattern is the accepted HH:MM format of schedule times.
const ScheduleTimePattern = `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`

var scheduleTimeRe = regexp.MustCompile(ScheduleTimePattern)

// IsValidScheduleTime reports whether s matches ScheduleTimePattern.
func IsValidScheduleTime(s string) bool {
	return scheduleTimeRe.MatchString(s)
}

// ScheduleEntry is one start/stop window in HH:MM.
type ScheduleEntry struct {
	Start string `json:"start" bson:"start"`
	Stop  string `json:"stop" bson:"stop"`
}

// IsEmpty reports whether the entry is the placeholder used for "no schedule".
func (e ScheduleEntry) IsEmpty() bool {
	return e.Start == "" && e.Stop == ""
}

// Validate checks both times against ScheduleTimePattern.
func (e ScheduleEntry) Validate() error {
	if !IsValidScheduleTime(e.Start) || !IsValidScheduleTime(e.Stop) {
		return NewValidationErr("Invalid time format")
	}
	return nil
}

// ValidateScheduleEntries checks a non-empty list of entries.
func ValidateScheduleEntries(entries []ScheduleEntry) error {
	if len(entries) == 0 {
		return NewValidationErr("at least one schedule entry is required")
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CompactScheduleEntries drops placeholder entries so that [{null,null}] and [] compare equal.
func CompactScheduleEntries(entries []ScheduleEntry) []ScheduleEntry {
	res := make([]ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsEmpty() {
			res = append(res, e)
		}
	}
	return res
}

// SameScheduleEntries compares two entry lists ignoring placeholders.
func SameScheduleEntries(a, b []ScheduleEntry) bool {
	return slices.Equal(CompactScheduleEntries(a), CompactScheduleEntries(b))
}

// ProfileSchedule is the schedule of one profile.
type ProfileSchedule struct {
	Profile         ScheduleProfile
	NormalChiller   []ScheduleEntry
	ExcludedChiller map[string][]ScheduleEntry
	// Version is the revision of the settings document the profile was read from.
	Version int64
}

// ScheduleAvailability is the outcome of checking whether a chiller can be rescheduled.
type ScheduleAvailability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

const (
	ScheduleAvailability_NotFound    = "Schedule not found"
	ScheduleAvailability_NotExcluded = "Chiller not in excluded list"
	ScheduleAvailability_Available   = "Available for scheduling"
)

// Availability reports whether chillerID can be rescheduled within this profile.
// Only chillers present in the excluded set can be.
func (ps ProfileSchedule) Availability(chillerID string) ScheduleAvailability {
	if _, ok := ps.ExcludedChiller[chillerID]; !ok {
		return ScheduleAvailability{Message: ScheduleAvailability_NotExcluded}
	}
	return ScheduleAvailability{Available: true, Message: ScheduleAvailability_Available}
}

// ScheduleReplacement replaces the entry list of one excluded chiller.
type ScheduleReplacement struct {
	Profile   ScheduleProfile
	ChillerID string
	Entries   []ScheduleEntry
	// ExpectedVersion, when set, makes the write conditional on the stored version.
	ExpectedVersion *int64
}

// ScheduleWriteResult carries the store write metadata.
type ScheduleWriteResult struct {
	ModifiedCount int64   `json:"modified_count"`
	UpsertedID    *string `json:"upserted_id"`
}

// ScheduleRepository reads and writes the automation schedule settings.
type ScheduleRepository interface {
	// GetProfileSchedule returns the schedule of a profile. found is false when the
	// settings document or the profile does not exist.
	GetProfileSchedule(ctx context.Context, profile ScheduleProfile) (ProfileSchedule, bool, error)
	// ReplaceExcludedChillerSchedule replaces one chiller entry list with a key-scoped update.
	// It returns a ConflictErr when ExpectedVersion does not match the stored version.
	ReplaceExcludedChillerSchedule(ctx context.Context, r ScheduleReplacement) (ScheduleWriteResult, error)
}
