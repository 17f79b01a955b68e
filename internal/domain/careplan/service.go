package careplan

import (
	"context"
	"errors"
	"strings"
	"time"

	"pettabl/internal/domain/activities"
	"pettabl/internal/domain/schedules"
	"pettabl/internal/domain/sessions"
	"pettabl/internal/platform/dateutil"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Providers: colaboradores externos del motor. El motor solo lee; la
// durabilidad y la concurrencia de escritores las resuelve el storage.

type SessionProvider interface {
	GetByID(ctx context.Context, id string) (sessions.Session, error)
}

type ScheduleResolver interface {
	ResolveForPet(ctx context.Context, petID string) (schedules.SlotSet, error)
}

type ActivityProvider interface {
	ListBySession(ctx context.Context, sessionID string, filter activities.ListFilter) ([]activities.Activity, error)
}

type Service struct {
	sessions   SessionProvider
	schedules  ScheduleResolver
	activities ActivityProvider
	now        func() time.Time
}

func NewService(sessionsSvc SessionProvider, schedulesSvc ScheduleResolver, activitiesSvc ActivityProvider) *Service {
	return &Service{
		sessions:   sessionsSvc,
		schedules:  schedulesSvc,
		activities: activitiesSvc,
		now:        time.Now,
	}
}

// SlotToday es el estado de un slot configurado para el día de hoy.
type SlotToday struct {
	Activity  schedules.ActivityType `json:"activity_type"`
	Period    schedules.TimePeriod   `json:"time_period"`
	Completed bool                   `json:"completed"`
}

// Dashboard es la vista agregada que consume la capa de presentación:
// timeline por día, progreso de hoy y flags de sesión. Todo es función
// pura de (session, slotSet, activities, today); seguro de recalcular en
// cada request.
type Dashboard struct {
	Session sessions.Session

	Status sessions.Status
	Flags  Flags

	SlotCount int
	Today     Progress
	TodayDate string

	Days       []DayStatus
	TodaySlots []SlotToday
}

// Dashboard arma la vista completa para una sesión.
func (s *Service) Dashboard(ctx context.Context, sessionID string) (Dashboard, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Dashboard{}, ErrInvalidInput
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return Dashboard{}, ErrNotFound
	}

	slotSet, err := s.schedules.ResolveForPet(ctx, sess.PetID)
	if err != nil {
		return Dashboard{}, err
	}

	// Snapshot del log completo de la sesión; el motor reduce lo que haya.
	acts, err := s.activities.ListBySession(ctx, sessionID, activities.ListFilter{})
	if err != nil {
		return Dashboard{}, err
	}

	today := s.now()
	slotCount := slotSet.Count()

	byDay := CompletionsByDay(acts)
	todayCount := TodayCount(byDay, today)
	todayKey := dateutil.DateKey(today)

	bySlot := SlotCompletions(acts)
	todaySlots := make([]SlotToday, 0, slotCount)
	for _, k := range slotSet.Keys() {
		todaySlots = append(todaySlots, SlotToday{
			Activity:  k.Activity,
			Period:    k.Period,
			Completed: bySlot[todayKey][k],
		})
	}

	return Dashboard{
		Session:    sess,
		Status:     sessions.DeriveStatus(sess.StartDate, sess.EndDate, today),
		Flags:      ComputeSessionFlags(sess, today),
		SlotCount:  slotCount,
		Today:      ComputeTodayProgress(slotCount, todayCount),
		TodayDate:  todayKey,
		Days:       ComputeDayStatuses(sess, slotCount, acts, today),
		TodaySlots: todaySlots,
	}, nil
}

// DayStatuses devuelve solo el timeline por día (para los dots del
// calendario, sin el resto del dashboard).
func (s *Service) DayStatuses(ctx context.Context, sessionID string) ([]DayStatus, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, ErrNotFound
	}

	slotSet, err := s.schedules.ResolveForPet(ctx, sess.PetID)
	if err != nil {
		return nil, err
	}

	acts, err := s.activities.ListBySession(ctx, sessionID, activities.ListFilter{})
	if err != nil {
		return nil, err
	}

	return ComputeDayStatuses(sess, slotSet.Count(), acts, s.now()), nil
}
