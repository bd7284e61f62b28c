package domain

import "testing"

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:05", 545},
		{"21:00", 1260},
		{"25:30", 1530}, // past-midnight values round-trip
	}

	for _, c := range cases {
		if got := ClockMinutes(c.clock); got != c.want {
			t.Errorf("ClockMinutes(%q) = %d, want %d", c.clock, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{1530, "25:30"},
	}

	for _, c := range cases {
		if got := FormatClock(c.minutes); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	if got := AddMinutes("09:00", 75); got != "10:15" {
		t.Errorf("AddMinutes = %q, want 10:15", got)
	}
}

func TestClockMinutesPanicsOnMalformedInput(t *testing.T) {
	for _, clock := range []string{"", "9", "ab:cd", "09:60", "09:-1"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ClockMinutes(%q) did not panic", clock)
				}
			}()
			ClockMinutes(clock)
		}()
	}
}
