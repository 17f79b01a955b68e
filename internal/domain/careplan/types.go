package careplan

// DayState es el estado calculado de un día dentro del rango de la sesión.
// @Enum future, none, partial, complete
type DayState string

const (
	DayFuture   DayState = "future"
	DayNone     DayState = "none"
	DayPartial  DayState = "partial"
	DayComplete DayState = "complete"
)

// DayStatus es la entrada del timeline por día que consumen los dashboards
// (los "dots" del calendario).
type DayStatus struct {
	Date   string   `json:"date"` // YYYY-MM-DD
	Status DayState `json:"status"`
}

// Progress es el avance de hoy contra los slots configurados.
// Percent no se capea por encima de 100: sobre-registrar un slot puede
// superar el 100% y eso es comportamiento documentado, no bug.
type Progress struct {
	Count   int `json:"count"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Flags son los derivados a nivel sesión que usa la UI para banners.
type Flags struct {
	// IsUpcoming: la sesión completa aún no comienza (granularidad de
	// fecha de inicio, no por día).
	IsUpcoming bool `json:"is_upcoming"`
	// IsLastDayToday: hoy es el último día de la sesión (recordatorio de
	// "último día").
	IsLastDayToday bool `json:"is_last_day_today"`
}
