package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pettabl/internal/domain/activities"
	"pettabl/internal/platform/dateutil"
)

type activityRepo struct {
	mu   sync.RWMutex
	byID map[string]activities.Activity
}

func NewActivityRepo() activities.Repository {
	return &activityRepo{
		byID: make(map[string]activities.Activity),
	}
}

func (r *activityRepo) Create(ctx context.Context, a activities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("activity id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("activity already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (activities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return activities.Activity{}, ErrNotFound
	}
	return a, nil
}

func (r *activityRepo) ListBySession(ctx context.Context, sessionID string, filter activities.ListFilter) ([]activities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activities.Activity, 0)
	for _, a := range r.byID {
		if a.SessionID != sessionID {
			continue
		}
		if filter.Date != nil && !dateutil.SameDay(a.Date, *filter.Date) {
			continue
		}
		out = append(out, a)
	}

	// Orden estable: fecha asc, luego created_at asc
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *activityRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	// Hard delete: "desmarcar" no deja tombstone
	delete(r.byID, id)
	return nil
}
