package timeentry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveRegularHours(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     string
	}{
		{name: "full day", clockIn: base, clockOut: base.Add(8 * time.Hour), want: "8"},
		{name: "partial hour rounds to 2dp", clockIn: base, clockOut: base.Add(7*time.Hour + 50*time.Minute), want: "7.83"},
		{name: "zero duration", clockIn: base, clockOut: base, want: "0"},
		{name: "clock out before clock in", clockIn: base, clockOut: base.Add(-time.Hour), want: "0"},
		{name: "one minute", clockIn: base, clockOut: base.Add(time.Minute), want: "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveRegularHours(tt.clockIn, tt.clockOut)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
