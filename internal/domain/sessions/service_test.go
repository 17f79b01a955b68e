package sessions

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Session
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Session{}}
}

func (r *testRepo) Create(ctx context.Context, s Session) error {
	if s.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[s.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Update(ctx context.Context, s Session) error {
	if _, ok := r.byID[s.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return Session{}, errRepoNotFound
	}
	return s, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Session, error) {
	out := make([]Session, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Session, error) {
	out := make([]Session, 0)
	for _, s := range r.byID {
		if s.OwnerUserID == ownerUserID {
			out = append(out, s)
		}
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

func TestService_Create_DerivesInitialStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	today := d(2024, 6, 5)
	svc.now = func() time.Time { return today }

	s, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: d(2024, 6, 10),
		EndDate:   d(2024, 6, 15),
		Notes:     "  vacaciones  ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if s.Status != StatusPlanned {
		t.Fatalf("expected planned before start, got %s", s.Status)
	}
	if s.Notes != "vacaciones" {
		t.Fatalf("expected trimmed notes, got %q", s.Notes)
	}
	if s.ID == "" {
		t.Fatalf("expected generated ID")
	}
}

func TestService_Create_RejectsInvertedRange(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: d(2024, 6, 15),
		EndDate:   d(2024, 6, 10),
	})
	if err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestService_Create_AllowsSingleDayRange(t *testing.T) {
	// start == end es válido: el rechazo es estrictamente end < start.
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return d(2024, 7, 10) }

	s, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: d(2024, 7, 10),
		EndDate:   d(2024, 7, 10),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if s.Status != StatusActive {
		t.Fatalf("expected active, got %s", s.Status)
	}
}

func TestService_Create_NormalizesTimeOfDay(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return d(2024, 6, 1) }

	s, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local),
		EndDate:   time.Date(2024, 6, 15, 8, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if s.StartDate.Hour() != 0 || s.EndDate.Hour() != 0 {
		t.Fatalf("expected dates normalized to midnight, got %v / %v", s.StartDate, s.EndDate)
	}
}

func TestService_GetByID_RederivesStatusAcrossMidnight(t *testing.T) {
	// El status persistido es un cache: si cambió el día desde el último
	// write, la lectura debe devolver el derivado fresco.
	repo := newTestRepo()
	svc := NewService(repo)

	svc.now = func() time.Time { return d(2024, 6, 9) }
	s, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: d(2024, 6, 10),
		EndDate:   d(2024, 6, 10),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if s.Status != StatusPlanned {
		t.Fatalf("expected planned at creation, got %s", s.Status)
	}

	// "pasa la medianoche"
	svc.now = func() time.Time { return d(2024, 6, 10) }
	got, err := svc.GetByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Status != StatusActive {
		t.Fatalf("expected active after midnight rollover, got %s", got.Status)
	}

	// el valor almacenado sigue siendo el viejo; solo la lectura lo refresca
	if repo.byID[s.ID].Status != StatusPlanned {
		t.Fatalf("expected stored status untouched, got %s", repo.byID[s.ID].Status)
	}
}

func TestService_Update_PatchEndDate_RederivesStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	svc.now = func() time.Time { return d(2024, 6, 12) }
	s, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: d(2024, 6, 10),
		EndDate:   d(2024, 6, 15),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if s.Status != StatusActive {
		t.Fatalf("expected active, got %s", s.Status)
	}

	newEnd := d(2024, 6, 11)
	updated, err := svc.Update(context.Background(), s.ID, UpdateInput{EndDate: &newEnd})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected completed after shrinking range, got %s", updated.Status)
	}
}

func TestService_Update_RejectsInvertedRange(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return d(2024, 6, 1) }

	s, err := svc.Create(context.Background(), "pet-1", "owner-1", CreateInput{
		StartDate: d(2024, 6, 10),
		EndDate:   d(2024, 6, 15),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	badEnd := d(2024, 6, 5)
	if _, err := svc.Update(context.Background(), s.ID, UpdateInput{EndDate: &badEnd}); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestService_OwnerAndPetOf(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return d(2024, 6, 1) }

	s, err := svc.Create(context.Background(), "pet-7", "owner-3", CreateInput{
		StartDate: d(2024, 6, 10),
		EndDate:   d(2024, 6, 15),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	owner, pet, err := svc.OwnerAndPetOf(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("OwnerAndPetOf error: %v", err)
	}
	if owner != "owner-3" || pet != "pet-7" {
		t.Fatalf("expected owner-3/pet-7, got %s/%s", owner, pet)
	}
}
