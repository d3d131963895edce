package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

const clockLayout = "15:04"

// ParseClock converts a zero-padded 24h "HH:MM" string to minutes since
// midnight. Non-canonical forms ("9:30") are rejected so that stored times
// stay lexicographically comparable.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil || t.Format(clockLayout) != s {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A booking ending at 10:00 does not conflict with
// one starting at 10:00. Arguments must be canonical "HH:MM" strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ValidateSlot checks the (date, startTime, endTime) triple of a booking
// request: a parseable date, canonical times and startTime < endTime.
func ValidateSlot(date, startTime, endTime string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, date)
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}
	return nil
}

// SlotDurationHours returns the length of [startTime, endTime) in hours.
func SlotDurationHours(startTime, endTime string) (float64, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	return float64(end-start) / 60, nil
}

// Today returns the current UTC date in DateLayout. Past-date checks compare
// dates only, the time of day is ignored.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
