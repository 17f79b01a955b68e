package schedules

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pettabl/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// PetOwnerLookup evita importar el paquete pets (rompe ciclos).
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

// AgentAccess evita importar el paquete agents.
type AgentAccess interface {
	HasActiveForPet(ctx context.Context, petID, agentUserID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petOwners PetOwnerLookup, agentAccess AgentAccess) {
	r.Route("/pets/{petID}/schedule", func(sr chi.Router) {
		// Configurar horario: solo owner
		sr.Put("/", putScheduleHandler(svc, petOwners))
		// Leer horario: owner o agente asignado (el agente necesita saber
		// qué slots debe completar)
		sr.Get("/", getScheduleHandler(svc, petOwners, agentAccess))
	})
}

type slotRequest struct {
	Activity     ActivityType `json:"activity_type" enums:"feed,walk,letout"`
	Period       TimePeriod   `json:"time_period" enums:"morning,afternoon,evening"`
	Instructions string       `json:"instructions"`
}

type putScheduleRequest struct {
	Slots []slotRequest `json:"slots"`
}

type slotResponse struct {
	Activity     ActivityType `json:"activity_type"`
	Period       TimePeriod   `json:"time_period"`
	Instructions string       `json:"instructions,omitempty"`
}

type scheduleResponse struct {
	ID        string         `json:"id"`
	PetID     string         `json:"pet_id"`
	Slots     []slotResponse `json:"slots"`
	SlotCount int            `json:"slot_count"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func putScheduleHandler(svc *Service, petOwners PetOwnerLookup) http.HandlerFunc {
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

		var req putScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		slots := make([]SlotInput, 0, len(req.Slots))
		for _, s := range req.Slots {
			slots = append(slots, SlotInput{
				Activity:     s.Activity,
				Period:       s.Period,
				Instructions: s.Instructions,
			})
		}

		sch, err := svc.Put(r.Context(), petID, PutInput{Slots: slots})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sch))
	}
}

func getScheduleHandler(svc *Service, petOwners PetOwnerLookup, agentAccess AgentAccess) http.HandlerFunc {
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

		sch, err := svc.GetByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "schedule not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sch))
	}
}

func toScheduleResponse(sch Schedule) scheduleResponse {
	slots := make([]slotResponse, 0, len(sch.Slots))
	for _, s := range sch.Slots {
		slots = append(slots, slotResponse{
			Activity:     s.Activity,
			Period:       s.Period,
			Instructions: s.Instructions,
		})
	}
	return scheduleResponse{
		ID:        sch.ID,
		PetID:     sch.PetID,
		Slots:     slots,
		SlotCount: Resolve(&sch).Count(),
		CreatedAt: sch.CreatedAt,
		UpdatedAt: sch.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
