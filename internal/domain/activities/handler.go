package activities

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pettabl/internal/domain/schedules"
	"pettabl/internal/middleware"
	"pettabl/internal/platform/dateutil"

	"github.com/go-chi/chi/v5"
)

// SessionLookup evita importar el paquete sessions (rompe ciclos).
type SessionLookup interface {
	OwnerAndPetOf(ctx context.Context, sessionID string) (ownerUserID, petID string, err error)
}

// AgentAccess evita importar el paquete agents.
type AgentAccess interface {
	IsActiveAgent(ctx context.Context, sessionID, agentUserID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, sessionLookup SessionLookup, agentAccess AgentAccess) {
	r.Route("/sessions/{sessionID}/activities", func(ar chi.Router) {
		ar.Post("/", logActivityHandler(svc, sessionLookup, agentAccess))
		ar.Get("/", listActivitiesHandler(svc, sessionLookup, agentAccess))

		// Desmarcar (hard delete, deshacer explícito)
		ar.Delete("/{activityID}", unmarkActivityHandler(svc, sessionLookup))
	})
}

// logActivityRequest es el cuerpo para registrar un slot completado.
type logActivityRequest struct {
	Activity schedules.ActivityType `json:"activity_type" enums:"feed,walk,letout"`
	Period   schedules.TimePeriod   `json:"time_period" enums:"morning,afternoon,evening"`
	Date     string                 `json:"date"` // YYYY-MM-DD
	PhotoURL string                 `json:"photo_url"`
	Notes    string                 `json:"notes"`
}

// activityResponse representa un registro de cuidado devuelto por la API.
type activityResponse struct {
	ID          string                 `json:"id"`
	SessionID   string                 `json:"session_id"`
	PetID       string                 `json:"pet_id"`
	Activity    schedules.ActivityType `json:"activity_type"`
	Period      schedules.TimePeriod   `json:"time_period"`
	Date        string                 `json:"date"`
	CaretakerID string                 `json:"caretaker_id"`
	PhotoURL    string                 `json:"photo_url,omitempty"`
	Notes       string                 `json:"notes"`
	CreatedAt   time.Time              `json:"created_at"`
}

// logActivityHandler godoc
// @Summary Registrar cuidado completado
// @Description Registra que un slot (actividad × bloque del día) se completó en una fecha. El dueño siempre puede registrar. Un Fur Agent necesita asignación activa en la sesión. No hay unicidad: registrar dos veces el mismo slot crea dos filas.
// @Tags activities
// @Accept json
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Param payload body logActivityRequest true "Datos del registro; date en formato YYYY-MM-DD"
// @Success 201 {object} activityResponse
// @Failure 400 {string} string "invalid json / date inválida / enums inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "session not found"
// @Router /sessions/{sessionID}/activities [post]
func logActivityHandler(svc *Service, sessionLookup SessionLookup, agentAccess AgentAccess) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		ownerID, petID, err := sessionLookup.OwnerAndPetOf(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		// Permisos:
		// - Owner: siempre permitido
		// - Fur Agent: requiere asignación activa en la sesión
		if ownerID != claims.UserID {
			ok, err := agentAccess.IsActiveAgent(r.Context(), sessionID, claims.UserID)
			if err != nil || !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		var req logActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := dateutil.ParseKey(strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.Log(r.Context(), sessionID, petID, claims.UserID, LogInput{
			Activity: req.Activity,
			Period:   req.Period,
			Date:     date,
			PhotoURL: req.PhotoURL,
			Notes:    req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toActivityResponse(a))
	}
}

func listActivitiesHandler(svc *Service, sessionLookup SessionLookup, agentAccess AgentAccess) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		ownerID, _, err := sessionLookup.OwnerAndPetOf(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		if ownerID != claims.UserID {
			ok, err := agentAccess.IsActiveAgent(r.Context(), sessionID, claims.UserID)
			if err != nil || !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		filter := ListFilter{}
		if q := strings.TrimSpace(r.URL.Query().Get("date")); q != "" {
			d, err := dateutil.ParseKey(q)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.Date = &d
		}

		items, err := svc.ListBySession(r.Context(), sessionID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]activityResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toActivityResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// unmarkActivityHandler borra el registro: owner siempre, o el cuidador
// que lo registró (deshacer su propio registro).
func unmarkActivityHandler(svc *Service, sessionLookup SessionLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		activityID := chi.URLParam(r, "activityID")

		a, err := svc.GetByID(r.Context(), activityID)
		if err != nil || a.SessionID != sessionID {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}

		ownerID, _, err := sessionLookup.OwnerAndPetOf(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		if ownerID != claims.UserID && a.CaretakerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := svc.Unmark(r.Context(), activityID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toActivityResponse(a Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		SessionID:   a.SessionID,
		PetID:       a.PetID,
		Activity:    a.Activity,
		Period:      a.Period,
		Date:        dateutil.DateKey(a.Date),
		CaretakerID: a.CaretakerID,
		PhotoURL:    a.PhotoURL,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
