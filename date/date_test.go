package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name   string
		start  Date
		months int
		want   Date
	}{
		{"same month", New(2025, time.January, 15), 0, New(2025, time.January, 15)},
		{"next month", New(2025, time.January, 15), 1, New(2025, time.February, 15)},
		{"across year end", New(2025, time.November, 1), 3, New(2026, time.February, 1)},
		{"normalized overflow", New(2025, time.January, 31), 1, New(2025, time.March, 3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.AddMonths(tc.months); got != tc.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if got, want := d.String(), "2025-07-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
