package careplan

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pettabl/internal/domain/sessions"
	"pettabl/internal/middleware"
	"pettabl/internal/platform/dateutil"

	"github.com/go-chi/chi/v5"
)

// AgentAccess evita importar el paquete agents.
type AgentAccess interface {
	IsActiveAgent(ctx context.Context, sessionID, agentUserID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, agentAccess AgentAccess) {
	r.Get("/sessions/{sessionID}/dashboard", dashboardHandler(svc, agentAccess))
	r.Get("/sessions/{sessionID}/days", dayStatusesHandler(svc, agentAccess))
}

type dashboardSessionResponse struct {
	ID          string          `json:"id"`
	PetID       string          `json:"pet_id"`
	OwnerUserID string          `json:"owner_user_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Status      sessions.Status `json:"status"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type dashboardResponse struct {
	Session dashboardSessionResponse `json:"session"`

	IsUpcoming     bool `json:"is_upcoming"`
	IsLastDayToday bool `json:"is_last_day_today"`

	SlotCount int      `json:"slot_count"`
	TodayDate string   `json:"today"`
	Today     Progress `json:"today_progress"`

	Days       []DayStatus `json:"days"`
	TodaySlots []SlotToday `json:"today_slots"`
}

// dashboardHandler godoc
// @Summary Dashboard de la sesión
// @Description Vista agregada de la sesión: timeline de estados por día (future/none/partial/complete), progreso de hoy contra los slots configurados y flags de sesión. Se recalcula todo en cada request; el status devuelto es el derivado de fechas, no el cache persistido.
// @Tags careplan
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} dashboardResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "session not found"
// @Router /sessions/{sessionID}/dashboard [get]
func dashboardHandler(svc *Service, agentAccess AgentAccess) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		db, err := svc.Dashboard(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		// Owner bypass, agente requiere asignación activa
		if db.Session.OwnerUserID != claims.UserID {
			ok, err := agentAccess.IsActiveAgent(r.Context(), sessionID, claims.UserID)
			if err != nil || !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		writeJSON(w, http.StatusOK, toDashboardResponse(db))
	}
}

func dayStatusesHandler(svc *Service, agentAccess AgentAccess) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")

		// El dashboard ya trae sesión; acá necesitamos el owner para
		// autorizar, así que reusamos el provider vía el service.
		db, err := svc.Dashboard(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		if db.Session.OwnerUserID != claims.UserID {
			ok, err := agentAccess.IsActiveAgent(r.Context(), sessionID, claims.UserID)
			if err != nil || !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		writeJSON(w, http.StatusOK, db.Days)
	}
}

func toDashboardResponse(db Dashboard) dashboardResponse {
	return dashboardResponse{
		Session: dashboardSessionResponse{
			ID:          db.Session.ID,
			PetID:       db.Session.PetID,
			OwnerUserID: db.Session.OwnerUserID,
			StartDate:   dateutil.DateKey(db.Session.StartDate),
			EndDate:     dateutil.DateKey(db.Session.EndDate),
			Status:      db.Status,
			Notes:       db.Session.Notes,
			CreatedAt:   db.Session.CreatedAt,
			UpdatedAt:   db.Session.UpdatedAt,
		},
		IsUpcoming:     db.Flags.IsUpcoming,
		IsLastDayToday: db.Flags.IsLastDayToday,
		SlotCount:      db.SlotCount,
		TodayDate:      db.TodayDate,
		Today:          db.Today,
		Days:           db.Days,
		TodaySlots:     db.TodaySlots,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
