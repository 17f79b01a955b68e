package agents

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pettabl/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// SessionLookup evita importar el paquete sessions (rompe ciclos).
type SessionLookup interface {
	OwnerAndPetOf(ctx context.Context, sessionID string) (ownerUserID, petID string, err error)
}

func RegisterRoutes(r chi.Router, svc *Service, sessionLookup SessionLookup) {
	// Owner actions scoped by session
	r.Route("/sessions/{sessionID}/agents", func(ar chi.Router) {
		ar.Post("/", inviteAgentHandler(svc, sessionLookup))
		ar.Get("/", listAgentsBySessionHandler(svc, sessionLookup))
	})

	// Agent/Owner actions scoped by assignment id
	r.Route("/agents/{assignmentID}", func(ar chi.Router) {
		ar.Post("/accept", acceptAssignmentHandler(svc))
		ar.Post("/revoke", revokeAssignmentHandler(svc))
	})

	// Fur Agent: ver sus invitaciones / asignaciones
	r.Get("/me/assignments", listMyAssignmentsHandler(svc))
}

type inviteAgentRequest struct {
	AgentUserID string `json:"agent_user_id"`
}

type assignmentResponse struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	PetID       string     `json:"pet_id"`
	OwnerUserID string     `json:"owner_user_id"`
	AgentUserID string     `json:"agent_user_id"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

func inviteAgentHandler(svc *Service, sessionLookup SessionLookup) http.HandlerFunc {
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
		if ownerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req inviteAgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Invite(r.Context(), InviteInput{
			SessionID:   sessionID,
			PetID:       petID,
			OwnerUserID: claims.UserID,
			AgentUserID: req.AgentUserID,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAssignmentResponse(a))
	}
}

func listAgentsBySessionHandler(svc *Service, sessionLookup SessionLookup) http.HandlerFunc {
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
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListBySession(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]assignmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAssignmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func acceptAssignmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		assignmentID := chi.URLParam(r, "assignmentID")
		a, err := svc.Accept(r.Context(), assignmentID, claims.UserID)
		if err != nil {
			writeAssignmentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAssignmentResponse(a))
	}
}

func revokeAssignmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		assignmentID := chi.URLParam(r, "assignmentID")
		a, err := svc.Revoke(r.Context(), assignmentID, claims.UserID)
		if err != nil {
			writeAssignmentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAssignmentResponse(a))
	}
}

func listMyAssignmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByAgent(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]assignmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAssignmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeAssignmentError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ErrNotFound:
		http.Error(w, "assignment not found", http.StatusNotFound)
	case ErrForbidden:
		http.Error(w, "forbidden", http.StatusForbidden)
	case ErrBadState:
		http.Error(w, "invalid state", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAssignmentResponse(a Assignment) assignmentResponse {
	return assignmentResponse{
		ID:          a.ID,
		SessionID:   a.SessionID,
		PetID:       a.PetID,
		OwnerUserID: a.OwnerUserID,
		AgentUserID: a.AgentUserID,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		RevokedAt:   a.RevokedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
