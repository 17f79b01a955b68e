package agents

import "context"

type Repository interface {
	Create(ctx context.Context, a Assignment) error
	Update(ctx context.Context, a Assignment) error
	GetByID(ctx context.Context, id string) (Assignment, error)
	ListBySession(ctx context.Context, sessionID string) ([]Assignment, error)
	ListByAgent(ctx context.Context, agentUserID string) ([]Assignment, error)
	GetActive(ctx context.Context, sessionID, agentUserID string) (Assignment, error)
}
