package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Pet representa el perfil básico de una mascota registrada en el sistema.
// La identidad es inmutable; los campos descriptivos se editan vía PATCH.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string // dog, cat, other
	Breed   string

	// URL de la foto de perfil. El almacenamiento del archivo es de otro
	// servicio; acá es solo una referencia opaca.
	PhotoURL string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
