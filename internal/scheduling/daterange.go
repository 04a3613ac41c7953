package scheduling

import (
	"time"

	apperrors "shift-planning-backend/internal/errors"
)

// DateRange is an inclusive start/end calendar date pair. Times of day on the
// bounds are ignored; both bounds are part of the range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a validated range; the end date may equal the start date.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: truncateToDay(start), End: truncateToDay(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate rejects ranges whose end date precedes their start date.
func (r DateRange) Validate() error {
	if truncateToDay(r.End).Before(truncateToDay(r.Start)) {
		return &apperrors.MalformedRangeError{
			Field:   "end_date",
			Message: "end date " + r.End.Format("2006-01-02") + " is before start date " + r.Start.Format("2006-01-02"),
		}
	}
	return nil
}

// Overlaps is the closed-interval intersection test: ranges sharing a single
// boundary day overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !truncateToDay(r.Start).After(truncateToDay(other.End)) &&
		!truncateToDay(r.End).Before(truncateToDay(other.Start))
}

// DurationDays counts days inclusively; a one-day range has duration 1.
func (r DateRange) DurationDays() int {
	return int(truncateToDay(r.End).Sub(truncateToDay(r.Start)).Hours()/24) + 1
}

// IsActive reports whether the range has not yet expired relative to today.
// Ranges that started in the past but have not ended are active.
func (r DateRange) IsActive(today time.Time) bool {
	return !truncateToDay(r.End).Before(truncateToDay(today))
}

// Contains reports whether day falls within the range, bounds included.
func (r DateRange) Contains(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(truncateToDay(r.Start)) && !d.After(truncateToDay(r.End))
}

func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + " - " + r.End.Format("2006-01-02")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
