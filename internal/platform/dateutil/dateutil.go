package dateutil

import "time"

// Llave canónica de día calendario (yyyy-MM-dd).
const KeyLayout = "2006-01-02"

// AtMidnight normaliza t al inicio de su día calendario (hora local de t).
func AtMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey devuelve la representación yyyy-MM-dd del día calendario de t.
// Dos instantes del mismo día producen la misma llave, sin importar la hora.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parsea una llave yyyy-MM-dd a medianoche local.
func ParseKey(key string) (time.Time, error) {
	return time.ParseInLocation(KeyLayout, key, time.Local)
}

// SameDay indica si a y b caen en el mismo día calendario.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// IsFutureDay indica si el día calendario de d es estrictamente posterior al de today.
// Compara por llave yyyy-MM-dd (ordena lexicográficamente igual que
// cronológicamente), así fechas en distintas zonas no desplazan el día.
func IsFutureDay(d, today time.Time) bool {
	return DateKey(d) > DateKey(today)
}

// DaysBetweenInclusive enumera cada día calendario desde start hasta end,
// ambos incluidos, ascendente y normalizado a medianoche.
// La hora del día se ignora. Si end < start devuelve slice vacío
// (el contrato exige start <= end; el caller valida antes).
func DaysBetweenInclusive(start, end time.Time) []time.Time {
	from := AtMidnight(start)
	to := AtMidnight(end)

	if to.Before(from) {
		return []time.Time{}
	}

	out := make([]time.Time, 0, 8)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
