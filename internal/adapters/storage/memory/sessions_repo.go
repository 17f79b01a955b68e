package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pettabl/internal/domain/sessions"
)

type sessionRepo struct {
	mu   sync.RWMutex
	byID map[string]sessions.Session
}

func NewSessionRepo() sessions.Repository {
	return &sessionRepo{
		byID: make(map[string]sessions.Session),
	}
}

func (r *sessionRepo) Create(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("session already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionRepo) Update(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sessions.Session{}, ErrNotFound
	}
	return s, nil
}

func (r *sessionRepo) ListByPet(ctx context.Context, petID string) ([]sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sessions.Session, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}

	// Próximas primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})

	return out, nil
}

func (r *sessionRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sessions.Session, 0)
	for _, s := range r.byID {
		if s.OwnerUserID == ownerUserID {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})

	return out, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
