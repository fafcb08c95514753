package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var daysAgoRe = regexp.MustCompile(`^(\d{1,3})\s+days?\s+ago$`)

// ParseDay resolves a day expression into midnight of that day in loc.
// It understands "today", "yesterday", "tomorrow", "last <weekday>", "<n> days ago"
// and any absolute date dateparse recognizes (e.g. "2026-01-27", "Jan 27, 2026").
func ParseDay(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	token := strings.ToLower(strings.TrimSpace(text))
	if token == "" {
		return time.Time{}, false
	}

	if t, ok := resolveRelativeDay(token, ref, loc); ok {
		return t, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return dateOnly(t.In(loc)), true
}

// EndOfDay returns the last nanosecond of the day t belongs to.
func EndOfDay(t time.Time) time.Time {
	return dateOnly(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseTimestamp parses an absolute timestamp. Values without a zone are read in loc.
func ParseTimestamp(text string, loc *time.Location) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func resolveRelativeDay(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = dateOnly(ref.In(loc))

	switch token {
	case "today":
		return ref, true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	}

	if m := daysAgoRe.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return ref.AddDate(0, 0, -n), true
	}

	if after, ok := strings.CutPrefix(token, "last "); ok {
		wd, ok := parseWeekday(after)
		if !ok {
			return time.Time{}, false
		}
		return previousWeekday(ref, wd), true
	}

	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(s, wd.String()) {
			return wd, true
		}
	}
	return 0, false
}

func previousWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(ref.Weekday()) - int(target) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, -delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
