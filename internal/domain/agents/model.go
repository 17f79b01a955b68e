package agents

import "time"

// Status del assignment de un Fur Agent a una sesión.
// @Enum invited, active, revoked
type Status string

const (
	StatusInvited Status = "invited"
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// Assignment es la relación muchos-a-muchos entre una sesión y un
// Fur Agent. No hay orden ni prioridad entre múltiples agentes de la
// misma sesión.
type Assignment struct {
	ID string

	SessionID string
	// PetID se denormaliza al invitar para poder responder
	// "¿este agente tiene acceso a esta mascota?" sin otro lookup.
	PetID string

	OwnerUserID string // quien invita (Fur Boss)
	AgentUserID string // el cuidador (Fur Agent)

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}
