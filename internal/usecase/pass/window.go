package pass

import (
	"fmt"
	"time"

	"gatepass-backend/internal/domain/settings"
)

// Window is the submission gate: a weekday set plus an inclusive
// time-of-day range. It is wall-clock-relative, so callers evaluate it
// immediately before creating a pass, never on a cached verdict.
type Window struct {
	Days  settings.Weekdays
	Start string // "HH:MM"
	End   string // "HH:MM"
}

func WindowFor(s *settings.Settings, aud settings.Audience) Window {
	days, start, end := s.WindowFor(aud)
	return Window{Days: days, Start: start, End: end}
}

// Evaluate reports whether submission is open at the given instant and,
// when closed, which check failed.
func (w Window) Evaluate(now time.Time) (bool, string) {
	day := now.Weekday().String()
	found := false
	for _, d := range w.Days {
		if d == day {
			found = true
			break
		}
	}
	if !found {
		return false, "Gate pass requests are only available on working days."
	}

	start, err := parseClock(w.Start)
	if err != nil {
		return false, fmt.Sprintf("invalid window start %q", w.Start)
	}
	end, err := parseClock(w.End)
	if err != nil {
		return false, fmt.Sprintf("invalid window end %q", w.End)
	}
	minute := now.Hour()*60 + now.Minute()
	if minute < start || minute > end {
		return false, fmt.Sprintf("Gate pass requests are only accepted between %s and %s.", w.Start, w.End)
	}
	return true, ""
}

// parseClock turns "HH:MM" into minutes since midnight.
func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
