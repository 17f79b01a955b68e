package schedules

import "context"

type Repository interface {
	// Put crea o reemplaza el horario de la mascota (upsert por pet_id).
	Put(ctx context.Context, sch Schedule) error
	GetByPet(ctx context.Context, petID string) (Schedule, error)
	DeleteByPet(ctx context.Context, petID string) error
}
