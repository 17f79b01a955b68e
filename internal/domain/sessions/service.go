package sessions

import (
	"context"
	"errors"
	"strings"
	"time"

	"pettabl/internal/platform/dateutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInvalidRange = errors.New("start_date must be on or before end_date")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

// Create valida start <= end (rechazo en el borde; el motor de estados no
// vuelve a chequearlo) y deriva el status inicial antes de persistir.
func (s *Service) Create(ctx context.Context, petID, ownerUserID string, in CreateInput) (Session, error) {
	petID = strings.TrimSpace(petID)
	ownerUserID = strings.TrimSpace(ownerUserID)
	if petID == "" || ownerUserID == "" {
		return Session{}, ErrInvalidInput
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return Session{}, ErrInvalidInput
	}

	start := dateutil.AtMidnight(in.StartDate)
	end := dateutil.AtMidnight(in.EndDate)
	if end.Before(start) {
		return Session{}, ErrInvalidRange
	}

	now := s.now()
	sess := Session{
		ID:          uuid.NewString(),
		PetID:       petID,
		OwnerUserID: ownerUserID,
		StartDate:   start,
		EndDate:     end,
		Status:      DeriveStatus(start, end, now),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// GetByID devuelve la sesión con el status re-derivado a la fecha actual.
// El valor almacenado puede estar desactualizado si cambió el día desde el
// último write.
func (s *Service) GetByID(ctx context.Context, id string) (Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.Status = DeriveStatus(sess.StartDate, sess.EndDate, s.now())
	return sess, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Session, error) {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	s.refreshStatuses(items)
	return items, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Session, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	s.refreshStatuses(items)
	return items, nil
}

type UpdateInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
}

// Update aplica un PATCH parcial sobre fechas/notas y re-deriva el status.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrInvalidInput
	}

	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Session{}, ErrNotFound
	}

	if in.StartDate != nil {
		sess.StartDate = dateutil.AtMidnight(*in.StartDate)
	}
	if in.EndDate != nil {
		sess.EndDate = dateutil.AtMidnight(*in.EndDate)
	}
	if sess.EndDate.Before(sess.StartDate) {
		return Session{}, ErrInvalidRange
	}
	if in.Notes != nil {
		sess.Notes = strings.TrimSpace(*in.Notes)
	}

	now := s.now()
	sess.Status = DeriveStatus(sess.StartDate, sess.EndDate, now)
	sess.UpdatedAt = now

	if err := s.repo.Update(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// OwnerAndPetOf expone (owner, pet) de una sesión.
// Se usa para evitar ciclos de imports (sessions <-> agents/activities).
func (s *Service) OwnerAndPetOf(ctx context.Context, sessionID string) (ownerUserID, petID string, err error) {
	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return "", "", err
	}
	return sess.OwnerUserID, sess.PetID, nil
}

func (s *Service) refreshStatuses(items []Session) {
	now := s.now()
	for i := range items {
		items[i].Status = DeriveStatus(items[i].StartDate, items[i].EndDate, now)
	}
}
