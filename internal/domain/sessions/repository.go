package sessions

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) error
	Update(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	ListByPet(ctx context.Context, petID string) ([]Session, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Session, error)
	Delete(ctx context.Context, id string) error
}
