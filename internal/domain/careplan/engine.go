package careplan

import (
	"math"
	"time"

	"pettabl/internal/domain/activities"
	"pettabl/internal/domain/schedules"
	"pettabl/internal/domain/sessions"
	"pettabl/internal/platform/dateutil"
)

// Este paquete es el motor de estados: funciones puras sobre datos ya
// fetcheados, sin estado propio ni caching. Se recalcula todo en cada
// render; no hay nada que invalidar.
//
// Precondición (no se re-valida acá): session.StartDate <= session.EndDate.
// El service de sessions rechaza rangos inválidos en el borde.

// CompletionsByDay reduce el log de actividades a un conteo por día.
// Cuenta filas crudas, no slots distintos: dos cuidadores registrando el
// mismo slot el mismo día inflan el conteo (comportamiento heredado y
// documentado; ver DESIGN.md). Una sola pasada, no muta la entrada.
func CompletionsByDay(acts []activities.Activity) map[string]int {
	out := make(map[string]int, len(acts))
	for _, a := range acts {
		out[dateutil.DateKey(a.Date)]++
	}
	return out
}

// SlotCompletions produce la vista por día y por slot: "¿este slot quedó
// completado este día?". Alimenta los checkboxes del detalle diario.
func SlotCompletions(acts []activities.Activity) map[string]map[schedules.SlotKey]bool {
	out := make(map[string]map[schedules.SlotKey]bool)
	for _, a := range acts {
		key := dateutil.DateKey(a.Date)
		if out[key] == nil {
			out[key] = make(map[schedules.SlotKey]bool)
		}
		out[key][a.SlotKey()] = true
	}
	return out
}

// TodayCount devuelve el conteo de hoy, 0 si no hay registros.
func TodayCount(byDay map[string]int, today time.Time) int {
	return byDay[dateutil.DateKey(today)]
}

// ComputeDayStatuses calcula el timeline de estados por día para el rango
// completo de la sesión:
//   - día estrictamente futuro            => future
//   - slotCount == 0 y sin registros      => future (regla heredada del
//     sistema original: un día sin horario configurado no se marca "n/a")
//   - slotCount == 0 con registros        => complete
//   - 0 registros                         => none
//   - menos registros que slots           => partial
//   - registros >= slots                  => complete
func ComputeDayStatuses(sess sessions.Session, slotCount int, acts []activities.Activity, today time.Time) []DayStatus {
	byDay := CompletionsByDay(acts)
	days := dateutil.DaysBetweenInclusive(sess.StartDate, sess.EndDate)

	out := make([]DayStatus, 0, len(days))
	for _, d := range days {
		key := dateutil.DateKey(d)
		out = append(out, DayStatus{
			Date:   key,
			Status: dayState(byDay[key], slotCount, dateutil.IsFutureDay(d, today)),
		})
	}
	return out
}

func dayState(completed, required int, future bool) DayState {
	if future {
		return DayFuture
	}

	if required == 0 {
		if completed > 0 {
			return DayComplete
		}
		return DayFuture
	}

	switch {
	case completed == 0:
		return DayNone
	case completed < required:
		return DayPartial
	default:
		return DayComplete
	}
}

// ComputeTodayProgress calcula el avance de hoy. Con slotCount == 0 el
// porcentaje es 100 si hay al menos un registro, 0 si no.
func ComputeTodayProgress(slotCount, todayCount int) Progress {
	p := Progress{
		Count: todayCount,
		Total: slotCount,
	}

	if slotCount <= 0 {
		if todayCount > 0 {
			p.Percent = 100
		}
		return p
	}

	p.Percent = int(math.Round(100 * float64(todayCount) / float64(slotCount)))
	return p
}

// ComputeSessionFlags deriva los flags de sesión para la UI.
func ComputeSessionFlags(sess sessions.Session, today time.Time) Flags {
	return Flags{
		IsUpcoming:     dateutil.IsFutureDay(sess.StartDate, today),
		IsLastDayToday: dateutil.SameDay(sess.EndDate, today),
	}
}
