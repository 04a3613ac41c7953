package scheduling

import (
	apperrors "shift-planning-backend/internal/errors"
)

// Night-shift legality thresholds: an inverted start/end pair is only accepted
// when work plausibly crosses midnight.
var (
	nightShiftEarliestStart = TimeOfDay(16 * 60) // 16:00
	nightShiftLatestEnd     = TimeOfDay(12 * 60) // 12:00
)

// TimeWindow is a daily start/end clock-time pair. An end time numerically
// earlier than the start time denotes a shift that wraps past midnight.
type TimeWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// IsNightShift reports whether the window wraps to the next day.
func (w TimeWindow) IsNightShift() bool {
	return w.Start > w.End
}

// DurationHours returns the elapsed time of the window in fractional hours.
// Night shifts count the time to midnight plus the time after it.
func (w TimeWindow) DurationHours() float64 {
	if w.IsNightShift() {
		return (24.0 - w.Start.Hours()) + w.End.Hours()
	}
	return w.End.Hours() - w.Start.Hours()
}

// Validate rejects windows that neither run forward within a day nor qualify
// as a legitimate night shift (start at or after 16:00, end at or before 12:00).
func (w TimeWindow) Validate() error {
	if w.Start < w.End {
		return nil
	}
	if w.Start >= nightShiftEarliestStart && w.End <= nightShiftLatestEnd {
		return nil
	}
	return &apperrors.MalformedRangeError{
		Field:   "end_time",
		Message: "end time " + w.End.String() + " must be after start time " + w.Start.String() + " unless the window is a night shift (start >= 16:00 and end <= 12:00)",
	}
}

func (w TimeWindow) String() string {
	return w.Start.String() + " - " + w.End.String()
}
