package dateutil

import (
	"testing"
	"time"
)

func TestDateKey_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 6, 2, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 6, 2, 23, 59, 59, 0, time.Local)

	if DateKey(morning) != "2024-06-02" {
		t.Fatalf("expected 2024-06-02, got %s", DateKey(morning))
	}
	if DateKey(morning) != DateKey(night) {
		t.Fatalf("same calendar day must produce same key: %s vs %s", DateKey(morning), DateKey(night))
	}
}

func TestDaysBetweenInclusive_LengthAndEndpoints(t *testing.T) {
	start := time.Date(2024, 6, 1, 15, 30, 0, 0, time.Local)
	end := time.Date(2024, 6, 5, 8, 0, 0, 0, time.Local)

	days := DaysBetweenInclusive(start, end)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if DateKey(days[0]) != "2024-06-01" {
		t.Fatalf("first day must match start, got %s", DateKey(days[0]))
	}
	if DateKey(days[len(days)-1]) != "2024-06-05" {
		t.Fatalf("last day must match end, got %s", DateKey(days[len(days)-1]))
	}

	// Ascendente y normalizado a medianoche
	for i, d := range days {
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Fatalf("day %d not at midnight: %v", i, d)
		}
		if i > 0 && !days[i-1].Before(d) {
			t.Fatalf("days not ascending at index %d", i)
		}
	}
}

func TestDaysBetweenInclusive_SingleDay(t *testing.T) {
	d := time.Date(2024, 7, 10, 0, 0, 0, 0, time.Local)
	days := DaysBetweenInclusive(d, d)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if DateKey(days[0]) != "2024-07-10" {
		t.Fatalf("expected 2024-07-10, got %s", DateKey(days[0]))
	}
}

func TestDaysBetweenInclusive_EndBeforeStart(t *testing.T) {
	start := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	if got := DaysBetweenInclusive(start, end); len(got) != 0 {
		t.Fatalf("expected empty range for end < start, got %d days", len(got))
	}
}

func TestDaysBetweenInclusive_CrossesMonthBoundary(t *testing.T) {
	start := time.Date(2024, 6, 29, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 7, 2, 0, 0, 0, 0, time.Local)

	days := DaysBetweenInclusive(start, end)
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	if DateKey(days[1]) != "2024-06-30" || DateKey(days[2]) != "2024-07-01" {
		t.Fatalf("month boundary not enumerated correctly: %s, %s", DateKey(days[1]), DateKey(days[2]))
	}
}

func TestIsFutureDay(t *testing.T) {
	today := time.Date(2024, 6, 2, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"yesterday", time.Date(2024, 6, 1, 23, 0, 0, 0, time.Local), false},
		{"same day earlier hour", time.Date(2024, 6, 2, 1, 0, 0, 0, time.Local), false},
		{"same day later hour", time.Date(2024, 6, 2, 23, 0, 0, 0, time.Local), false},
		{"tomorrow at midnight", time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local), true},
	}

	for _, tc := range cases {
		if got := IsFutureDay(tc.d, today); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 7, 10, 9, 0, 0, 0, time.Local)
	b := time.Date(2024, 7, 10, 21, 0, 0, 0, time.Local)
	c := time.Date(2024, 7, 11, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Fatalf("expected same day for %v and %v", a, b)
	}
	if SameDay(a, c) {
		t.Fatalf("expected different day for %v and %v", a, c)
	}
}
