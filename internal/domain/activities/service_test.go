package activities

import (
	"context"
	"errors"
	"testing"
	"time"

	"pettabl/internal/domain/schedules"
	"pettabl/internal/platform/dateutil"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Activity
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Activity{}}
}

func (r *testRepo) Create(ctx context.Context, a Activity) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Activity, error) {
	a, ok := r.byID[id]
	if !ok {
		return Activity{}, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) ListBySession(ctx context.Context, sessionID string, filter ListFilter) ([]Activity, error) {
	out := make([]Activity, 0)
	for _, a := range r.byID {
		if a.SessionID != sessionID {
			continue
		}
		if filter.Date != nil && !dateutil.SameDay(a.Date, *filter.Date) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

func TestService_Log_NormalizesDate(t *testing.T) {
	svc := NewService(newTestRepo())

	a, err := svc.Log(context.Background(), "sess-1", "pet-1", "agent-1", LogInput{
		Activity: schedules.ActivityFeed,
		Period:   schedules.PeriodMorning,
		Date:     time.Date(2024, 6, 2, 18, 45, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if dateutil.DateKey(a.Date) != "2024-06-02" {
		t.Fatalf("expected date key 2024-06-02, got %s", dateutil.DateKey(a.Date))
	}
	if a.Date.Hour() != 0 {
		t.Fatalf("expected midnight date, got %v", a.Date)
	}
}

func TestService_Log_RejectsBadEnums(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Log(context.Background(), "sess-1", "pet-1", "agent-1", LogInput{
		Activity: schedules.ActivityType("groom"),
		Period:   schedules.PeriodMorning,
		Date:     d(2024, 6, 2),
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Log_DuplicatesCreateTwoRows(t *testing.T) {
	// Dos registros del mismo slot el mismo día son dos filas: el log es
	// crudo, la semántica de conteo la decide el motor de estados.
	repo := newTestRepo()
	svc := NewService(repo)

	in := LogInput{
		Activity: schedules.ActivityFeed,
		Period:   schedules.PeriodMorning,
		Date:     d(2024, 6, 2),
	}

	a1, err := svc.Log(context.Background(), "sess-1", "pet-1", "agent-1", in)
	if err != nil {
		t.Fatalf("Log #1 error: %v", err)
	}
	a2, err := svc.Log(context.Background(), "sess-1", "pet-1", "agent-2", in)
	if err != nil {
		t.Fatalf("Log #2 error: %v", err)
	}

	if a1.ID == a2.ID {
		t.Fatalf("expected distinct rows for duplicate slot")
	}
	items, err := svc.ListBySession(context.Background(), "sess-1", ListFilter{})
	if err != nil {
		t.Fatalf("ListBySession error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
}

func TestService_ListBySession_DateFilter(t *testing.T) {
	svc := NewService(newTestRepo())

	for _, date := range []time.Time{d(2024, 6, 1), d(2024, 6, 2), d(2024, 6, 2)} {
		if _, err := svc.Log(context.Background(), "sess-1", "pet-1", "agent-1", LogInput{
			Activity: schedules.ActivityWalk,
			Period:   schedules.PeriodEvening,
			Date:     date,
		}); err != nil {
			t.Fatalf("Log error: %v", err)
		}
	}

	day2 := d(2024, 6, 2)
	items, err := svc.ListBySession(context.Background(), "sess-1", ListFilter{Date: &day2})
	if err != nil {
		t.Fatalf("ListBySession error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows on 06-02, got %d", len(items))
	}
}

func TestService_Unmark_HardDeletes(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Log(context.Background(), "sess-1", "pet-1", "agent-1", LogInput{
		Activity: schedules.ActivityFeed,
		Period:   schedules.PeriodMorning,
		Date:     d(2024, 6, 2),
	})
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}

	if err := svc.Unmark(context.Background(), a.ID); err != nil {
		t.Fatalf("Unmark error: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), a.ID); err == nil {
		t.Fatalf("expected row gone after unmark")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected physical delete, rows left: %d", len(repo.byID))
	}
}
