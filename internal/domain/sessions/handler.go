package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pettabl/internal/middleware"
	"pettabl/internal/platform/dateutil"

	"github.com/go-chi/chi/v5"
)

// PetOwnerLookup evita importar el paquete pets (rompe ciclos).
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

// AgentAccess evita importar el paquete agents.
type AgentAccess interface {
	IsActiveAgent(ctx context.Context, sessionID, agentUserID string) (bool, error)
	HasActiveForPet(ctx context.Context, petID, agentUserID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petOwners PetOwnerLookup, agentAccess AgentAccess) {
	// Sesiones por mascota (Fur Boss crea; agente asignado puede listar)
	r.Route("/pets/{petID}/sessions", func(sr chi.Router) {
		sr.Post("/", createSessionHandler(svc, petOwners))
		sr.Get("/", listSessionsByPetHandler(svc, petOwners, agentAccess))
	})

	// Rutas por método: careplan cuelga /dashboard y /days del mismo
	// prefijo, así que acá no se monta un subrouter en /sessions/{sessionID}.
	r.Get("/sessions/{sessionID}", getSessionHandler(svc, agentAccess))
	r.Patch("/sessions/{sessionID}", updateSessionHandler(svc))
	r.Delete("/sessions/{sessionID}", deleteSessionHandler(svc))

	// Sesiones del Fur Boss autenticado
	r.Get("/me/sessions", listMySessionsHandler(svc))
}

type createSessionRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Notes     string `json:"notes"`
}

type updateSessionRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	StartDate *string `json:"start_date"` // YYYY-MM-DD
	EndDate   *string `json:"end_date"`   // YYYY-MM-DD
	Notes     *string `json:"notes"`
}

type sessionResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	OwnerUserID string    `json:"owner_user_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func createSessionHandler(svc *Service, petOwners PetOwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		ownerID, err := petOwners.OwnerOf(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if ownerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := dateutil.ParseKey(strings.TrimSpace(req.StartDate))
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, err := dateutil.ParseKey(strings.TrimSpace(req.EndDate))
		if err != nil {
			http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		sess, err := svc.Create(r.Context(), petID, claims.UserID, CreateInput{
			StartDate: start,
			EndDate:   end,
			Notes:     req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

func listSessionsByPetHandler(svc *Service, petOwners PetOwnerLookup, agentAccess AgentAccess) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		ownerID, err := petOwners.OwnerOf(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		if ownerID != claims.UserID {
			ok, err := agentAccess.HasActiveForPet(r.Context(), petID, claims.UserID)
			if err != nil || !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]sessionResponse, 0, len(items))
		for _, sess := range items {
			out = append(out, toSessionResponse(sess))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getSessionHandler(svc *Service, agentAccess AgentAccess) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		sess, err := svc.GetByID(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		if sess.OwnerUserID != claims.UserID {
			ok, err := agentAccess.IsActiveAgent(r.Context(), sessionID, claims.UserID)
			if err != nil || !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

func updateSessionHandler(svc *Service) http.HandlerFunc {
	// Solo owner: cambiar fechas reparte responsabilidad, no se delega.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		current, err := svc.GetByID(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		if current.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req updateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{Notes: req.Notes}
		if req.StartDate != nil {
			t, err := dateutil.ParseKey(strings.TrimSpace(*req.StartDate))
			if err != nil {
				http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.StartDate = &t
		}
		if req.EndDate != nil {
			t, err := dateutil.ParseKey(strings.TrimSpace(*req.EndDate))
			if err != nil {
				http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.EndDate = &t
		}

		updated, err := svc.Update(r.Context(), sessionID, in)
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrInvalidRange:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "session not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(updated))
	}
}

func deleteSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := chi.URLParam(r, "sessionID")
		sess, err := svc.GetByID(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		if sess.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := svc.Delete(r.Context(), sessionID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listMySessionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]sessionResponse, 0, len(items))
		for _, sess := range items {
			out = append(out, toSessionResponse(sess))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toSessionResponse(s Session) sessionResponse {
	return sessionResponse{
		ID:          s.ID,
		PetID:       s.PetID,
		OwnerUserID: s.OwnerUserID,
		StartDate:   dateutil.DateKey(s.StartDate),
		EndDate:     dateutil.DateKey(s.EndDate),
		Status:      s.Status,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
