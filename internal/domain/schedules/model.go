package schedules

import "time"

// MaxSlots: 3 actividades × 3 bloques del día.
const MaxSlots = 9

// Slot es un requerimiento configurado en el horario de la mascota.
// Un slot está "on" o ausente; no hay pesos ni parciales.
type Slot struct {
	Activity     ActivityType
	Period       TimePeriod
	Instructions string
}

// Schedule es el horario a nivel mascota (no por sesión).
// Una mascota tiene a lo más un Schedule; sus slots son constantes
// durante la vida de cualquier sesión.
type Schedule struct {
	ID    string
	PetID string

	Slots []Slot

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Slot) Key() SlotKey {
	return SlotKey{Activity: s.Activity, Period: s.Period}
}
