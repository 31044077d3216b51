package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone el inventario en modo solo lectura.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

type petResponse struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	Kind         Kind      `json:"kind"`
	Name         string    `json:"name"`
	Gender       Gender    `json:"gender"`
	Owner        string    `json:"owner"`
	Breed        *string   `json:"breed,omitempty"`
	IsLonghaired *bool     `json:"is_longhaired,omitempty"`
	CanFly       *bool     `json:"can_fly,omitempty"`
	Sound        string    `json:"sound"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}

// listPetsHandler godoc
// @Summary      List pets
// @Description  Pets in insertion order. kind uses the console filter rule (Dog, Cat, Lizard, Bird or All, case-insensitive).
// @Tags         pets
// @Produce      json
// @Param        kind        query  string  false  "Kind filter (default All)"
// @Param        session_id  query  string  false  "Only pets entered in this session"
// @Success      200  {array}  petResponse
// @Router       /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, err := svc.List(r.Context(), ListInput{
			SessionID: q.Get("session_id"),
			Filter:    q.Get("kind"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    petID  path  string  true  "Pet ID"
// @Success  200  {object}  petResponse
// @Failure  404  {string}  string
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	attrs := AttributesOf(p.Attr)
	return petResponse{
		ID:           p.ID,
		SessionID:    p.SessionID,
		Kind:         p.Kind(),
		Name:         p.Name,
		Gender:       p.Gender,
		Owner:        p.Owner,
		Breed:        attrs.Breed,
		IsLonghaired: attrs.IsLonghaired,
		CanFly:       attrs.CanFly,
		Sound:        p.Sound(),
		Summary:      p.String(),
		CreatedAt:    p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
