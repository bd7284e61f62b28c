package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock arithmetic over plain "HH:MM" 24-hour strings. All times are local
// to the day being planned; there is no timezone handling.

// ClockMinutes parses an "HH:MM" string into minutes since midnight.
// Hours past 23 are accepted so that values produced by FormatClock for a
// day running past midnight round-trip. A malformed string is a caller
// contract violation and panics.
func ClockMinutes(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		panic(fmt.Sprintf("clock: malformed time %q", clock))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		panic(fmt.Sprintf("clock: malformed hours in %q", clock))
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		panic(fmt.Sprintf("clock: malformed minutes in %q", clock))
	}

	return hours*60 + minutes
}

// FormatClock renders minutes since midnight as "HH:MM". Hours are not
// wrapped at midnight, so a day ending late can read "25:30".
func FormatClock(minutes int) string {
	if minutes < 0 {
		panic(fmt.Sprintf("clock: negative minutes %d", minutes))
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts an "HH:MM" string forward by the given minutes.
func AddMinutes(clock string, minutes int) string {
	return FormatClock(ClockMinutes(clock) + minutes)
}
