package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowFrom_ThirtyDayHorizon(t *testing.T) {
	now := time.Date(2030, time.January, 1, 14, 30, 0, 0, time.UTC)
	w := WindowFrom(now)

	assert.Equal(t, time.Date(2030, time.January, 2, 0, 0, 0, 0, time.UTC), w.Min)
	assert.Equal(t, time.Date(2030, time.January, 31, 0, 0, 0, 0, time.UTC), w.Max)
}

func TestWindowContains(t *testing.T) {
	w := WindowFrom(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		date string
		want bool
	}{
		{"2030-01-01", false}, // same-day booking excluded
		{"2030-01-02", true},  // minimum selectable
		{"2030-01-15", true},
		{"2030-01-31", true},  // maximum selectable
		{"2030-02-01", false}, // past the horizon
		{"2029-12-31", false},
		{"not-a-date", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, w.Contains(tt.date), "date %q", tt.date)
	}
}

func TestWindowFrom_MonthBoundary(t *testing.T) {
	w := WindowFrom(time.Date(2030, time.January, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2030, time.February, 1, 0, 0, 0, 0, time.UTC), w.Min)
	assert.Equal(t, time.Date(2030, time.March, 2, 0, 0, 0, 0, time.UTC), w.Max)
}
