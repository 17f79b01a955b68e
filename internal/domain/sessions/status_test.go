package sessions

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

func TestDeriveStatus(t *testing.T) {
	start := d(2024, 6, 10)
	end := d(2024, 6, 15)

	cases := []struct {
		name  string
		today time.Time
		want  Status
	}{
		{"before start", d(2024, 6, 9), StatusPlanned},
		{"well before start", d(2024, 1, 1), StatusPlanned},
		{"on start", d(2024, 6, 10), StatusActive},
		{"mid range", d(2024, 6, 12), StatusActive},
		{"on end", d(2024, 6, 15), StatusActive},
		{"after end", d(2024, 6, 16), StatusCompleted},
		{"well after end", d(2025, 1, 1), StatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(start, end, tc.today); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDeriveStatus_SingleDaySession(t *testing.T) {
	// Sesión de un día: los dos bordes coinciden y el día es active.
	day := d(2024, 7, 10)
	if got := DeriveStatus(day, day, day); got != StatusActive {
		t.Fatalf("expected active on single-day session, got %s", got)
	}
}

func TestDeriveStatus_IgnoresTimeOfDay(t *testing.T) {
	// La hora del día no cambia el estado: solo cuenta el día calendario.
	start := d(2024, 6, 10)
	end := d(2024, 6, 15)
	lateToday := time.Date(2024, 6, 15, 23, 59, 0, 0, time.Local)

	if got := DeriveStatus(start, end, lateToday); got != StatusActive {
		t.Fatalf("expected active at 23:59 of end date, got %s", got)
	}
}
