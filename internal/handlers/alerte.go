package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type AlerteHandler struct {
	Alertes *services.AlerteService
}

func NewAlerteHandler(alertes *services.AlerteService) *AlerteHandler {
	return &AlerteHandler{Alertes: alertes}
}

// List: GET /alertes — rebalaye puis renvoie la liste, la plus récente
// d'abord. Le balayage vide et reconstruit la collection: la lecture reste
// donc toujours alignée sur l'état courant des commandes.
func (h *AlerteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	if err := h.Alertes.Generate(time.Now()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	alertes, err := h.Alertes.List()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, alertes)
}

// Generate: POST /alertes/generate — balayage explicite, sans lecture.
func (h *AlerteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := h.Alertes.Generate(time.Now()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"generated": true})
}

// Read: POST /alertes/read {id}.
func (h *AlerteHandler) Read(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}
	if err := h.Alertes.MarkAsRead(input.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"read": true})
}

// ReadAll: POST /alertes/read-all.
func (h *AlerteHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := h.Alertes.MarkAllAsRead(); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"read": true})
}

// UnreadCount: GET /alertes/unread-count — alimente le badge.
func (h *AlerteHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	n, err := h.Alertes.UnreadCount()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{"count": n})
}
