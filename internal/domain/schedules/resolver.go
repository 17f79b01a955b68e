package schedules

// SlotSet es la vista resuelta del horario: el conjunto fijo de slots
// que se debe completar cualquier día de una sesión. Se lee una vez por
// pasada de render, no por día (el horario es a nivel mascota).
type SlotSet struct {
	keys []SlotKey
	has  map[SlotKey]struct{}
}

// Resolve construye el SlotSet desde un Schedule. Un Schedule nil
// (mascota sin horario) resuelve a un set vacío con Count 0.
func Resolve(sch *Schedule) SlotSet {
	set := SlotSet{
		keys: make([]SlotKey, 0),
		has:  make(map[SlotKey]struct{}),
	}
	if sch == nil {
		return set
	}

	for _, slot := range sch.Slots {
		k := slot.Key()
		if _, ok := set.has[k]; ok {
			continue
		}
		set.has[k] = struct{}{}
		set.keys = append(set.keys, k)
	}
	return set
}

// Count es el número de slots configurados (0..9).
func (s SlotSet) Count() int {
	return len(s.keys)
}

// Has indica si (activity, period) está configurado.
func (s SlotSet) Has(activity ActivityType, period TimePeriod) bool {
	_, ok := s.has[SlotKey{Activity: activity, Period: period}]
	return ok
}

// Keys devuelve los slots configurados en orden de configuración.
func (s SlotSet) Keys() []SlotKey {
	out := make([]SlotKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// Periods devuelve los bloques configurados para una actividad.
func (s SlotSet) Periods(activity ActivityType) []TimePeriod {
	out := make([]TimePeriod, 0, 3)
	for _, k := range s.keys {
		if k.Activity == activity {
			out = append(out, k.Period)
		}
	}
	return out
}
