package schedules

// ActivityType define los tipos de cuidado soportados.
// @Enum feed, walk, letout
type ActivityType string

const (
	ActivityFeed   ActivityType = "feed"
	ActivityWalk   ActivityType = "walk"
	ActivityLetout ActivityType = "letout"
)

// TimePeriod define los bloques del día.
// @Enum morning, afternoon, evening
type TimePeriod string

const (
	PeriodMorning   TimePeriod = "morning"
	PeriodAfternoon TimePeriod = "afternoon"
	PeriodEvening   TimePeriod = "evening"
)

// SlotKey identifica un slot lógico (actividad × bloque del día).
type SlotKey struct {
	Activity ActivityType
	Period   TimePeriod
}

func ValidActivity(a ActivityType) bool {
	switch a {
	case ActivityFeed, ActivityWalk, ActivityLetout:
		return true
	default:
		return false
	}
}

func ValidPeriod(p TimePeriod) bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	default:
		return false
	}
}
