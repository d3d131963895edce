package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical slots", "14:00", "15:00", "14:00", "15:00", true},
		{"partial overlap", "14:00", "15:00", "14:30", "15:30", true},
		{"contained", "14:00", "16:00", "14:30", "15:00", true},
		{"touching boundary", "14:00", "15:00", "15:00", "16:00", false},
		{"touching boundary reversed", "15:00", "16:00", "14:00", "15:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
		{"one minute overlap", "14:00", "15:01", "15:00", "16:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("18:30")
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	for _, bad := range []string{"9:30", "24:00", "12:60", "noon", "12:5", ""} {
		_, err = ParseClock(bad)
		assert.ErrorIs(t, err, ErrValidation, "input %q", bad)
	}
}

func TestValidateSlot(t *testing.T) {
	require.NoError(t, ValidateSlot("2025-06-01", "14:00", "15:00"))

	assert.ErrorIs(t, ValidateSlot("01.06.2025", "14:00", "15:00"), ErrValidation)
	assert.ErrorIs(t, ValidateSlot("2025-06-01", "15:00", "14:00"), ErrValidation)
	assert.ErrorIs(t, ValidateSlot("2025-06-01", "14:00", "14:00"), ErrValidation)
	assert.ErrorIs(t, ValidateSlot("2025-06-01", "2pm", "15:00"), ErrValidation)
}

func TestSlotDurationHours(t *testing.T) {
	hours, err := SlotDurationHours("18:00", "19:30")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, hours, 1e-9)

	hours, err = SlotDurationHours("10:00", "11:00")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, hours, 1e-9)
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())

	assert.True(t, BookingStatusPending.Valid())
	assert.False(t, BookingStatus("expired").Valid())
}
