package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type RetoucheHandler struct {
	Retouches *services.RetoucheService
}

func NewRetoucheHandler(retouches *services.RetoucheService) *RetoucheHandler {
	return &RetoucheHandler{Retouches: retouches}
}

// Collection: GET /retouches?commandeId=&statut= et POST /retouches.
func (h *RetoucheHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		retouches, err := h.Retouches.List(q.Get("commandeId"), q.Get("statut"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, retouches)
	case http.MethodPost:
		var input services.NewRetoucheInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		retouche, err := h.Retouches.Create(input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, retouche)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

// Statut: POST /retouches/statut {id, statut}.
func (h *RetoucheHandler) Statut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	var input struct {
		ID     string `json:"id"`
		Statut string `json:"statut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}
	retouche, err := h.Retouches.UpdateStatut(input.ID, input.Statut)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, retouche)
}
