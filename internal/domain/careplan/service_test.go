package careplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"pettabl/internal/domain/activities"
	"pettabl/internal/domain/schedules"
	"pettabl/internal/domain/sessions"
)

type fakeSessions struct {
	sess sessions.Session
	err  error
}

func (f *fakeSessions) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	if f.err != nil {
		return sessions.Session{}, f.err
	}
	return f.sess, nil
}

type fakeSchedules struct {
	sch *schedules.Schedule
}

func (f *fakeSchedules) ResolveForPet(ctx context.Context, petID string) (schedules.SlotSet, error) {
	return schedules.Resolve(f.sch), nil
}

type fakeActivities struct {
	acts []activities.Activity
}

func (f *fakeActivities) ListBySession(ctx context.Context, sessionID string, filter activities.ListFilter) ([]activities.Activity, error) {
	return f.acts, nil
}

func TestService_Dashboard_AssemblesView(t *testing.T) {
	sess := session(day(2024, 6, 1), day(2024, 6, 3))
	sch := &schedules.Schedule{
		PetID: "pet-1",
		Slots: []schedules.Slot{
			{Activity: schedules.ActivityFeed, Period: schedules.PeriodMorning},
			{Activity: schedules.ActivityWalk, Period: schedules.PeriodEvening},
		},
	}
	acts := []activities.Activity{
		act(schedules.ActivityFeed, schedules.PeriodMorning, day(2024, 6, 2)),
	}

	svc := NewService(&fakeSessions{sess: sess}, &fakeSchedules{sch: sch}, &fakeActivities{acts: acts})
	svc.now = func() time.Time { return day(2024, 6, 2) }

	dash, err := svc.Dashboard(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}

	if dash.Status != sessions.StatusActive {
		t.Fatalf("expected active status, got %s", dash.Status)
	}
	if dash.SlotCount != 2 {
		t.Fatalf("expected slot count 2, got %d", dash.SlotCount)
	}
	if dash.TodayDate != "2024-06-02" {
		t.Fatalf("expected today 2024-06-02, got %s", dash.TodayDate)
	}
	if dash.Today.Count != 1 || dash.Today.Percent != 50 {
		t.Fatalf("expected 1/2 (50%%), got %+v", dash.Today)
	}
	if len(dash.Days) != 3 {
		t.Fatalf("expected 3 day entries, got %d", len(dash.Days))
	}

	// TodaySlots refleja el estado de hoy por slot, en orden configurado.
	if len(dash.TodaySlots) != 2 {
		t.Fatalf("expected 2 today slots, got %d", len(dash.TodaySlots))
	}
	if !dash.TodaySlots[0].Completed {
		t.Fatalf("expected feed/morning completed today")
	}
	if dash.TodaySlots[1].Completed {
		t.Fatalf("expected walk/evening pending today")
	}
}

func TestService_Dashboard_SessionMissing(t *testing.T) {
	svc := NewService(
		&fakeSessions{err: errors.New("boom")},
		&fakeSchedules{},
		&fakeActivities{},
	)

	if _, err := svc.Dashboard(context.Background(), "sess-x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_DayStatuses_NoSchedule(t *testing.T) {
	sess := session(day(2024, 6, 1), day(2024, 6, 2))

	svc := NewService(&fakeSessions{sess: sess}, &fakeSchedules{sch: nil}, &fakeActivities{})
	svc.now = func() time.Time { return day(2024, 6, 2) }

	days, err := svc.DayStatuses(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("DayStatuses error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	// sin horario y sin registros: todo future, incluso el día pasado
	for _, d := range days {
		if d.Status != DayFuture {
			t.Fatalf("expected future for %s, got %s", d.Date, d.Status)
		}
	}
}
