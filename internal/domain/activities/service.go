package activities

import (
	"context"
	"errors"
	"strings"
	"time"

	"pettabl/internal/domain/schedules"
	"pettabl/internal/platform/dateutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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

type LogInput struct {
	Activity schedules.ActivityType
	Period   schedules.TimePeriod
	Date     time.Time
	PhotoURL string
	Notes    string
}

// Log registra la ocurrencia de un slot completado. No deduplica: cada
// registro es una fila nueva aunque el mismo slot ya esté marcado ese día.
func (s *Service) Log(ctx context.Context, sessionID, petID, caretakerID string, in LogInput) (Activity, error) {
	sessionID = strings.TrimSpace(sessionID)
	petID = strings.TrimSpace(petID)
	caretakerID = strings.TrimSpace(caretakerID)

	if sessionID == "" || petID == "" || caretakerID == "" {
		return Activity{}, ErrInvalidInput
	}
	if !schedules.ValidActivity(in.Activity) || !schedules.ValidPeriod(in.Period) {
		return Activity{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Activity{}, ErrInvalidInput
	}

	a := Activity{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		PetID:       petID,
		Activity:    in.Activity,
		Period:      in.Period,
		Date:        dateutil.AtMidnight(in.Date),
		CaretakerID: caretakerID,
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Activity{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBySession(ctx context.Context, sessionID string, filter ListFilter) ([]Activity, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID, filter)
}

// Unmark borra el registro (hard delete, sin tombstone). El motor de
// estados simplemente dejará de contarlo en la próxima pasada.
func (s *Service) Unmark(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
