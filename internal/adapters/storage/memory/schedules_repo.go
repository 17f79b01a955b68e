package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pettabl/internal/domain/schedules"
)

type scheduleRepo struct {
	mu      sync.RWMutex
	byPetID map[string]schedules.Schedule
}

func NewScheduleRepo() schedules.Repository {
	return &scheduleRepo{
		byPetID: make(map[string]schedules.Schedule),
	}
}

func (r *scheduleRepo) Put(ctx context.Context, sch schedules.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(sch.PetID) == "" {
		return errors.New("schedule pet id required")
	}
	// Upsert: a lo más un horario por mascota
	r.byPetID[sch.PetID] = sch
	return nil
}

func (r *scheduleRepo) GetByPet(ctx context.Context, petID string) (schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sch, ok := r.byPetID[petID]
	if !ok {
		return schedules.Schedule{}, ErrNotFound
	}
	return sch, nil
}

func (r *scheduleRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPetID[petID]; !ok {
		return ErrNotFound
	}
	delete(r.byPetID, petID)
	return nil
}
