package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pettabl/internal/domain/agents"
)

type agentRepo struct {
	mu   sync.RWMutex
	byID map[string]agents.Assignment
}

func NewAgentRepo() agents.Repository {
	return &agentRepo{
		byID: make(map[string]agents.Assignment),
	}
}

func (r *agentRepo) Create(ctx context.Context, a agents.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("assignment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("assignment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *agentRepo) Update(ctx context.Context, a agents.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("assignment id required")
	}
	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *agentRepo) GetByID(ctx context.Context, id string) (agents.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return agents.Assignment{}, ErrNotFound
	}
	return a, nil
}

func (r *agentRepo) ListBySession(ctx context.Context, sessionID string) ([]agents.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agents.Assignment, 0)
	for _, a := range r.byID {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *agentRepo) ListByAgent(ctx context.Context, agentUserID string) ([]agents.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agents.Assignment, 0)
	for _, a := range r.byID {
		if a.AgentUserID == agentUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *agentRepo) GetActive(ctx context.Context, sessionID, agentUserID string) (agents.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var winner agents.Assignment
	has := false

	for _, a := range r.byID {
		if a.SessionID != sessionID {
			continue
		}
		if a.AgentUserID != agentUserID {
			continue
		}
		if a.Status != agents.StatusActive {
			continue
		}

		if !has {
			winner = a
			has = true
			continue
		}
		if a.UpdatedAt.After(winner.UpdatedAt) {
			winner = a
		}
	}

	if !has {
		return agents.Assignment{}, ErrNotFound
	}
	return winner, nil
}
