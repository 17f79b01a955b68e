package activities

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Activity) error
	GetByID(ctx context.Context, id string) (Activity, error)
	ListBySession(ctx context.Context, sessionID string, filter ListFilter) ([]Activity, error)
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	// Date limita a un día calendario (para métricas de "hoy").
	Date *time.Time
}
