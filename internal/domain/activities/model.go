package activities

import (
	"time"

	"pettabl/internal/domain/schedules"
)

// Activity es una ocurrencia registrada de un slot completado en una
// fecha concreta. Es un log crudo: no hay unicidad sobre
// (session, activity, period, date) — dos cuidadores pueden registrar el
// mismo slot el mismo día y quedan dos filas. "Desmarcar" es borrado
// físico, no tombstone.
type Activity struct {
	ID        string
	SessionID string
	PetID     string

	Activity schedules.ActivityType
	Period   schedules.TimePeriod

	// Día calendario al que aplica el registro (medianoche local).
	Date time.Time

	CaretakerID string

	PhotoURL string
	Notes    string

	CreatedAt time.Time
}

func (a Activity) SlotKey() schedules.SlotKey {
	return schedules.SlotKey{Activity: a.Activity, Period: a.Period}
}
