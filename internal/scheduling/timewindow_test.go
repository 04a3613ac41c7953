package scheduling

import (
	"testing"

	apperrors "shift-planning-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) TimeWindow {
	return TimeWindow{Start: MustTimeOfDay(start), End: MustTimeOfDay(end)}
}

func TestTimeWindow_IsNightShift(t *testing.T) {
	tests := []struct {
		name   string
		window TimeWindow
		night  bool
	}{
		{"standard day shift", window("08:00", "16:00"), false},
		{"evening into morning", window("22:00", "06:00"), true},
		{"starts at midnight", window("00:00", "08:00"), false},
		{"ends at midnight boundary", window("16:00", "00:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.night, tt.window.IsNightShift())
		})
	}
}

func TestTimeWindow_DurationHours(t *testing.T) {
	tests := []struct {
		name   string
		window TimeWindow
		hours  float64
	}{
		{"standard day shift", window("08:00", "16:00"), 8.0},
		{"night shift wraps midnight", window("22:00", "06:00"), 8.0},
		{"long night shift", window("16:00", "12:00"), 20.0},
		{"half hour granularity", window("08:30", "12:00"), 3.5},
		{"short morning", window("06:00", "06:30"), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.hours, tt.window.DurationHours(), 1e-9)
		})
	}
}

func TestTimeWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		window  TimeWindow
		wantErr bool
	}{
		{"forward window is legal", window("08:00", "16:00"), false},
		{"classic night shift is legal", window("22:00", "06:00"), false},
		{"earliest legal night start", window("16:00", "12:00"), false},
		{"night ending exactly at noon", window("20:00", "12:00"), false},
		{"inverted but starts too early", window("14:00", "10:00"), true},
		{"inverted but ends too late", window("18:00", "13:00"), true},
		{"start just before night threshold", window("15:59", "06:00"), true},
		{"zero-length window", window("08:00", "08:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsMalformedRange(err))

			var rangeErr *apperrors.MalformedRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, "end_time", rangeErr.Field)
		})
	}
}

func TestTimeWindow_String(t *testing.T) {
	assert.Equal(t, "22:00 - 06:00", window("22:00", "06:00").String())
}
