package schedules

import (
	"context"
	"errors"
	"strings"
	"time"

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

type SlotInput struct {
	Activity     ActivityType
	Period       TimePeriod
	Instructions string
}

type PutInput struct {
	Slots []SlotInput
}

// Put crea o reemplaza el horario de la mascota.
// Valida enums estrictamente y deduplica pares (activity, period);
// un horario vacío es válido (mascota sin requerimientos).
func (s *Service) Put(ctx context.Context, petID string, in PutInput) (Schedule, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Schedule{}, ErrInvalidInput
	}

	slots, err := normalizeSlotsStrict(in.Slots)
	if err != nil {
		return Schedule{}, err
	}

	now := s.now()

	// Si ya existe, conservamos ID y created_at; solo cambian slots.
	sch := Schedule{
		ID:        uuid.NewString(),
		PetID:     petID,
		Slots:     slots,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.repo.GetByPet(ctx, petID); err == nil {
		sch.ID = existing.ID
		sch.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Put(ctx, sch); err != nil {
		return Schedule{}, err
	}
	return sch, nil
}

func (s *Service) GetByPet(ctx context.Context, petID string) (Schedule, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Schedule{}, ErrInvalidInput
	}
	return s.repo.GetByPet(ctx, petID)
}

// ResolveForPet devuelve el SlotSet de la mascota.
// Sin horario => set vacío (slotCount 0), no es error.
func (s *Service) ResolveForPet(ctx context.Context, petID string) (SlotSet, error) {
	sch, err := s.GetByPet(ctx, petID)
	if err != nil {
		return Resolve(nil), nil
	}
	return Resolve(&sch), nil
}

func normalizeSlotsStrict(in []SlotInput) ([]Slot, error) {
	seen := map[SlotKey]struct{}{}
	out := make([]Slot, 0, len(in))

	for _, raw := range in {
		a := ActivityType(strings.TrimSpace(string(raw.Activity)))
		p := TimePeriod(strings.TrimSpace(string(raw.Period)))

		if !ValidActivity(a) || !ValidPeriod(p) {
			return nil, ErrInvalidInput
		}

		k := SlotKey{Activity: a, Period: p}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		out = append(out, Slot{
			Activity:     a,
			Period:       p,
			Instructions: strings.TrimSpace(raw.Instructions),
		})
	}

	if len(out) > MaxSlots {
		return nil, ErrInvalidInput
	}
	return out, nil
}
