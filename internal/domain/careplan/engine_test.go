package careplan

import (
	"testing"
	"time"

	"pettabl/internal/domain/activities"
	"pettabl/internal/domain/schedules"
	"pettabl/internal/domain/sessions"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func act(activity schedules.ActivityType, period schedules.TimePeriod, date time.Time) activities.Activity {
	return activities.Activity{
		ID:        "act-" + string(activity) + "-" + string(period) + "-" + date.Format("20060102"),
		SessionID: "sess-1",
		PetID:     "pet-1",
		Activity:  activity,
		Period:    period,
		Date:      date,
	}
}

func session(start, end time.Time) sessions.Session {
	return sessions.Session{
		ID:          "sess-1",
		PetID:       "pet-1",
		OwnerUserID: "owner-1",
		StartDate:   start,
		EndDate:     end,
	}
}

func statusByDate(t *testing.T, days []DayStatus) map[string]DayState {
	t.Helper()
	out := make(map[string]DayState, len(days))
	for _, d := range days {
		out[d.Date] = d.Status
	}
	return out
}

func TestComputeDayStatuses_TwoSlots_PartialCompleteFuture(t *testing.T) {
	// Sesión de 3 días, 2 slots configurados, hoy es el día del medio.
	sess := session(day(2024, 6, 1), day(2024, 6, 3))
	today := day(2024, 6, 2)

	acts := []activities.Activity{
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 1)),
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 2)),
		act(schedules.ActivityWalk, schedules.PeriodEvening, day(2024, 6, 2)),
	}

	days := ComputeDayStatuses(sess, 2, acts, today)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	got := statusByDate(t, days)
	if got["2024-06-01"] != DayPartial {
		t.Fatalf("expected 06-01 partial (1/2), got %s", got["2024-06-01"])
	}
	if got["2024-06-02"] != DayComplete {
		t.Fatalf("expected 06-02 complete (2/2), got %s", got["2024-06-02"])
	}
	if got["2024-06-03"] != DayFuture {
		t.Fatalf("expected 06-03 future, got %s", got["2024-06-03"])
	}
}

func TestComputeDayStatuses_ZeroSlots(t *testing.T) {
	// Sin horario configurado: los días sin registros quedan future aunque
	// ya hayan pasado; un registro suelto marca el día complete.
	sess := session(day(2024, 6, 1), day(2024, 6, 3))
	today := day(2024, 6, 2)

	acts := []activities.Activity{
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 2)),
	}

	got := statusByDate(t, ComputeDayStatuses(sess, 0, acts, today))
	if got["2024-06-01"] != DayFuture {
		t.Fatalf("expected 06-01 future, got %s", got["2024-06-01"])
	}
	if got["2024-06-02"] != DayComplete {
		t.Fatalf("expected 06-02 complete, got %s", got["2024-06-02"])
	}
	if got["2024-06-03"] != DayFuture {
		t.Fatalf("expected 06-03 future, got %s", got["2024-06-03"])
	}
}

func TestComputeDayStatuses_DuplicateRows_CountAsTwo(t *testing.T) {
	// Dos cuidadores registran el mismo slot el mismo día: cuentan como
	// 2 filas contra 1 slot requerido. Es el comportamiento documentado
	// (conteo de filas crudas, no slots distintos).
	sess := session(day(2024, 6, 1), day(2024, 6, 1))
	today := day(2024, 6, 1)

	a1 := act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 1))
	a1.CaretakerID = "agent-1"
	a2 := act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 1))
	a2.ID = "act-dup"
	a2.CaretakerID = "agent-2"

	got := statusByDate(t, ComputeDayStatuses(sess, 1, []activities.Activity{a1, a2}, today))
	if got["2024-06-01"] != DayComplete {
		t.Fatalf("expected complete with 2 rows vs 1 slot, got %s", got["2024-06-01"])
	}

	byDay := CompletionsByDay([]activities.Activity{a1, a2})
	if byDay["2024-06-01"] != 2 {
		t.Fatalf("expected raw count 2, got %d", byDay["2024-06-01"])
	}
}

func TestComputeDayStatuses_Idempotent(t *testing.T) {
	sess := session(day(2024, 6, 1), day(2024, 6, 5))
	today := day(2024, 6, 3)
	acts := []activities.Activity{
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 1)),
		act(schedules.ActivityWalk, schedules.PeriodEvening, day(2024, 6, 3)),
	}

	first := ComputeDayStatuses(sess, 2, acts, today)
	second := ComputeDayStatuses(sess, 2, acts, today)

	if len(first) != len(second) {
		t.Fatalf("length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d changed between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDayState_MonotonicProgression(t *testing.T) {
	// Con required > 0, subir completed de 0 a required recorre
	// none → partial → complete sin retroceder.
	const required = 3

	prevRank := -1
	rank := map[DayState]int{DayNone: 0, DayPartial: 1, DayComplete: 2}

	for completed := 0; completed <= required; completed++ {
		st := dayState(completed, required, false)
		r, ok := rank[st]
		if !ok {
			t.Fatalf("unexpected state %s for completed=%d", st, completed)
		}
		if r < prevRank {
			t.Fatalf("state went backward at completed=%d: %s", completed, st)
		}
		prevRank = r
	}

	if dayState(0, required, false) != DayNone {
		t.Fatalf("expected none at 0")
	}
	if dayState(required, required, false) != DayComplete {
		t.Fatalf("expected complete at required")
	}
}

func TestDayState_FutureWinsOverEverything(t *testing.T) {
	if st := dayState(5, 2, true); st != DayFuture {
		t.Fatalf("expected future for future day regardless of counts, got %s", st)
	}
}

func TestComputeTodayProgress(t *testing.T) {
	cases := []struct {
		name        string
		slots, done int
		percent     int
	}{
		{"zero slots zero done", 0, 0, 0},
		{"zero slots some done", 0, 3, 100},
		{"half", 2, 1, 50},
		{"complete", 2, 2, 100},
		{"rounds", 3, 1, 33},
		{"rounds up", 3, 2, 67},
		{"over 100 uncapped", 2, 5, 250},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ComputeTodayProgress(tc.slots, tc.done)
			if p.Percent != tc.percent {
				t.Fatalf("expected %d%%, got %d%%", tc.percent, p.Percent)
			}
			if p.Count != tc.done || p.Total != tc.slots {
				t.Fatalf("count/total mismatch: %+v", p)
			}
		})
	}
}

func TestComputeSessionFlags(t *testing.T) {
	sess := session(day(2024, 7, 10), day(2024, 7, 10))

	// Un día antes: upcoming, no último día.
	f := ComputeSessionFlags(sess, day(2024, 7, 9))
	if !f.IsUpcoming || f.IsLastDayToday {
		t.Fatalf("expected upcoming only, got %+v", f)
	}

	// Mismo día: sesión de un solo día, hoy es el último día.
	f = ComputeSessionFlags(sess, day(2024, 7, 10))
	if f.IsUpcoming {
		t.Fatalf("expected not upcoming on start day, got %+v", f)
	}
	if !f.IsLastDayToday {
		t.Fatalf("expected last day today, got %+v", f)
	}

	// Después del fin: nada.
	f = ComputeSessionFlags(sess, day(2024, 7, 11))
	if f.IsUpcoming || f.IsLastDayToday {
		t.Fatalf("expected no flags after end, got %+v", f)
	}
}

func TestSlotCompletions(t *testing.T) {
	acts := []activities.Activity{
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 1)),
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 1)), // duplicado
		act(schedules.ActivityWalk, schedules.PeriodEvening, day(2024, 6, 2)),
	}

	bySlot := SlotCompletions(acts)

	feedKey := schedules.SlotKey{Activity: schedules.ActivityFeed, Period: schedules.PeriodMorning}
	walkKey := schedules.SlotKey{Activity: schedules.ActivityWalk, Period: schedules.PeriodEvening}

	if !bySlot["2024-06-01"][feedKey] {
		t.Fatalf("expected feed/morning completed on 06-01")
	}
	if bySlot["2024-06-01"][walkKey] {
		t.Fatalf("walk/evening should not be completed on 06-01")
	}
	if !bySlot["2024-06-02"][walkKey] {
		t.Fatalf("expected walk/evening completed on 06-02")
	}
}
