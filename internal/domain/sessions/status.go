package sessions

import (
	"time"

	"pettabl/internal/platform/dateutil"
)

// DeriveStatus es la única fuente de verdad del ciclo de vida:
//   - today < start (por día calendario)  => planned
//   - today > end                         => completed
//   - en otro caso (bordes incluidos)     => active
//
// El Status persistido es un cache de este cálculo al último write y no se
// auto-actualiza a medianoche: recalcular en cada write y de nuevo al leer
// cuando la corrección importa a través del cambio de día.
func DeriveStatus(start, end, today time.Time) Status {
	if dateutil.IsFutureDay(start, today) {
		return StatusPlanned
	}
	if dateutil.IsFutureDay(today, end) {
		return StatusCompleted
	}
	return StatusActive
}
