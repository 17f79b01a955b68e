package agents

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
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

type InviteInput struct {
	SessionID   string
	PetID       string
	OwnerUserID string
	AgentUserID string
}

// Invite crea (o reusa) la invitación de un agente a una sesión.
// Re-invitar al mismo agente no duplica filas: se reusa el assignment
// vigente y se revoca cualquier duplicado sucio.
func (s *Service) Invite(ctx context.Context, in InviteInput) (Assignment, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	petID := strings.TrimSpace(in.PetID)
	ownerID := strings.TrimSpace(in.OwnerUserID)
	agentID := strings.TrimSpace(in.AgentUserID)

	if sessionID == "" || petID == "" || ownerID == "" || agentID == "" {
		return Assignment{}, ErrInvalidInput
	}
	if ownerID == agentID {
		return Assignment{}, ErrInvalidInput
	}

	now := s.now()

	// 1) Buscar assignments existentes para (sessionID, agentID)
	existing, allMatches, err := s.findLatestMatch(ctx, sessionID, agentID)
	if err == nil && existing.ID != "" {
		// Si el "winner" está revoked, permitimos re-invitar creando uno nuevo.
		if existing.Status != StatusRevoked {
			// 2) Deduplicar: revocar cualquier otro match no-revoked
			_ = s.revokeOtherMatches(ctx, existing.ID, allMatches, now)

			existing.UpdatedAt = now
			if err := s.repo.Update(ctx, existing); err != nil {
				return Assignment{}, err
			}
			return existing, nil
		}
	}

	a := Assignment{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		PetID:       petID,
		OwnerUserID: ownerID,
		AgentUserID: agentID,
		Status:      StatusInvited,
		CreatedAt:   now,
		UpdatedAt:   now,
		RevokedAt:   nil,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (s *Service) Accept(ctx context.Context, assignmentID, agentUserID string) (Assignment, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	agentUserID = strings.TrimSpace(agentUserID)

	if assignmentID == "" || agentUserID == "" {
		return Assignment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return Assignment{}, ErrNotFound
	}

	if a.AgentUserID != agentUserID {
		return Assignment{}, ErrForbidden
	}
	if a.Status == StatusRevoked {
		return Assignment{}, ErrBadState
	}

	// Idempotente
	if a.Status == StatusActive {
		return a, nil
	}
	if a.Status != StatusInvited {
		return Assignment{}, ErrBadState
	}

	now := s.now()
	a.Status = StatusActive
	a.UpdatedAt = now

	if err := s.repo.Update(ctx, a); err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (s *Service) Revoke(ctx context.Context, assignmentID, ownerUserID string) (Assignment, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	ownerUserID = strings.TrimSpace(ownerUserID)

	if assignmentID == "" || ownerUserID == "" {
		return Assignment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return Assignment{}, ErrNotFound
	}

	if a.OwnerUserID != ownerUserID {
		return Assignment{}, ErrForbidden
	}

	// Idempotente
	if a.Status == StatusRevoked {
		return a, nil
	}

	now := s.now()
	a.Status = StatusRevoked
	a.UpdatedAt = now
	a.RevokedAt = &now

	if err := s.repo.Update(ctx, a); err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (s *Service) ListBySession(ctx context.Context, sessionID string) ([]Assignment, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID)
}

func (s *Service) ListByAgent(ctx context.Context, agentUserID string) ([]Assignment, error) {
	agentUserID = strings.TrimSpace(agentUserID)
	if agentUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAgent(ctx, agentUserID)
}

func (s *Service) GetActiveAssignment(ctx context.Context, sessionID, agentUserID string) (Assignment, error) {
	sessionID = strings.TrimSpace(sessionID)
	agentUserID = strings.TrimSpace(agentUserID)

	if sessionID == "" || agentUserID == "" {
		return Assignment{}, ErrInvalidInput
	}
	a, err := s.repo.GetActive(ctx, sessionID, agentUserID)
	if err != nil {
		return Assignment{}, ErrNotFound
	}
	return a, nil
}

// IsActiveAgent implementa el check de acceso por sesión que usan los
// handlers de otros módulos (sessions, activities, careplan).
func (s *Service) IsActiveAgent(ctx context.Context, sessionID, agentUserID string) (bool, error) {
	_, err := s.GetActiveAssignment(ctx, sessionID, agentUserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HasActiveForPet indica si el agente tiene asignación activa en alguna
// sesión de la mascota. Usa el PetID denormalizado del assignment.
func (s *Service) HasActiveForPet(ctx context.Context, petID, agentUserID string) (bool, error) {
	petID = strings.TrimSpace(petID)
	agentUserID = strings.TrimSpace(agentUserID)
	if petID == "" || agentUserID == "" {
		return false, ErrInvalidInput
	}

	items, err := s.repo.ListByAgent(ctx, agentUserID)
	if err != nil {
		return false, err
	}
	for _, a := range items {
		if a.PetID == petID && a.Status == StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) findLatestMatch(ctx context.Context, sessionID, agentID string) (Assignment, []Assignment, error) {
	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return Assignment{}, nil, err
	}

	matches := make([]Assignment, 0)
	var winner Assignment
	hasWinner := false

	for _, a := range items {
		if a.SessionID != sessionID || a.AgentUserID != agentID {
			continue
		}
		matches = append(matches, a)

		if !hasWinner || a.UpdatedAt.After(winner.UpdatedAt) {
			winner = a
			hasWinner = true
		}
	}

	if !hasWinner {
		return Assignment{}, matches, ErrNotFound
	}
	return winner, matches, nil
}

func (s *Service) revokeOtherMatches(ctx context.Context, winnerID string, matches []Assignment, now time.Time) error {
	for _, a := range matches {
		if a.ID == "" || a.ID == winnerID {
			continue
		}
		if a.Status == StatusRevoked {
			continue
		}
		a.Status = StatusRevoked
		a.UpdatedAt = now
		a.RevokedAt = &now
		_ = s.repo.Update(ctx, a) // best-effort (MVP)
	}
	return nil
}
