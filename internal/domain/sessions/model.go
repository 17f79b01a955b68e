package sessions

import "time"

// Status es el estado de ciclo de vida de la sesión.
// Se deriva de las fechas (ver DeriveStatus); el valor almacenado es un
// cache de esa derivación al momento del último write.
// @Enum planned, active, completed
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Session es un rango acotado de fechas de responsabilidad de cuidado
// para una mascota (el "pet watch").
// Invariante: StartDate <= EndDate (se valida en el service; el motor de
// estados asume que ya se cumplió).
type Session struct {
	ID          string
	PetID       string
	OwnerUserID string

	// Fechas de calendario (día local, medianoche). La hora se ignora.
	StartDate time.Time
	EndDate   time.Time

	Status Status
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
