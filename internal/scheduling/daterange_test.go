package scheduling

import (
	"testing"
	"time"

	apperrors "shift-planning-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("single day range is legal", func(t *testing.T) {
		r, err := NewDateRange(day(2026, time.March, 10), day(2026, time.March, 10))
		require.NoError(t, err)
		assert.Equal(t, day(2026, time.March, 10), r.Start)
		assert.Equal(t, day(2026, time.March, 10), r.End)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := NewDateRange(day(2026, time.March, 10), day(2026, time.March, 9))
		require.Error(t, err)
		assert.True(t, apperrors.IsMalformedRange(err))

		var rangeErr *apperrors.MalformedRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "end_date", rangeErr.Field)
	})

	t.Run("times of day on the bounds are discarded", func(t *testing.T) {
		late := time.Date(2026, time.March, 10, 23, 45, 0, 0, time.UTC)
		early := time.Date(2026, time.March, 12, 1, 5, 0, 0, time.UTC)

		r, err := NewDateRange(late, early)
		require.NoError(t, err)
		assert.Equal(t, day(2026, time.March, 10), r.Start)
		assert.Equal(t, day(2026, time.March, 12), r.End)
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := func(t *testing.T) DateRange {
		return mustRange(t, day(2026, time.April, 10), day(2026, time.April, 20))
	}

	tests := []struct {
		name     string
		other    DateRange
		overlaps bool
	}{
		{"disjoint before", DateRange{Start: day(2026, time.April, 1), End: day(2026, time.April, 9)}, false},
		{"disjoint after", DateRange{Start: day(2026, time.April, 21), End: day(2026, time.April, 30)}, false},
		{"shared boundary day at start", DateRange{Start: day(2026, time.April, 5), End: day(2026, time.April, 10)}, true},
		{"shared boundary day at end", DateRange{Start: day(2026, time.April, 20), End: day(2026, time.April, 25)}, true},
		{"fully contained", DateRange{Start: day(2026, time.April, 12), End: day(2026, time.April, 15)}, true},
		{"fully containing", DateRange{Start: day(2026, time.April, 1), End: day(2026, time.April, 30)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base(t)
			assert.Equal(t, tt.overlaps, r.Overlaps(tt.other))
			// Intersection is symmetric
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(r))
		})
	}

	t.Run("range overlaps itself", func(t *testing.T) {
		r := base(t)
		assert.True(t, r.Overlaps(r))
	})
}

func TestDateRange_DurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		days  int
	}{
		{"single day counts as one", day(2026, time.May, 1), day(2026, time.May, 1), 1},
		{"full week", day(2026, time.May, 4), day(2026, time.May, 10), 7},
		{"across month boundary", day(2026, time.May, 30), day(2026, time.June, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRange(t, tt.start, tt.end)
			assert.Equal(t, tt.days, r.DurationDays())
		})
	}
}

func TestDateRange_IsActive(t *testing.T) {
	r := mustRange(t, day(2026, time.June, 1), day(2026, time.June, 30))

	assert.True(t, r.IsActive(day(2026, time.May, 15)), "future range is active")
	assert.True(t, r.IsActive(day(2026, time.June, 15)), "running range is active")
	assert.True(t, r.IsActive(day(2026, time.June, 30)), "range is active on its last day")
	assert.False(t, r.IsActive(day(2026, time.July, 1)), "expired range is inactive")
}

func TestDateRange_Contains(t *testing.T) {
	r := mustRange(t, day(2026, time.June, 1), day(2026, time.June, 30))

	assert.True(t, r.Contains(day(2026, time.June, 1)))
	assert.True(t, r.Contains(day(2026, time.June, 30)))
	assert.True(t, r.Contains(time.Date(2026, time.June, 15, 18, 30, 0, 0, time.UTC)))
	assert.False(t, r.Contains(day(2026, time.May, 31)))
	assert.False(t, r.Contains(day(2026, time.July, 1)))
}
