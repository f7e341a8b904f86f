package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type StatsHandler struct {
	Stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

// Dashboard: GET /stats/dashboard.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	stats, err := h.Stats.Dashboard(time.Now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

// Rapport: GET /stats/rapport?annee=2026&mois=8 — par défaut le mois courant.
func (h *StatsHandler) Rapport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	now := time.Now()
	annee := now.Year()
	mois := now.Month()
	if v := r.URL.Query().Get("annee"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2200 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_annee", nil)
			return
		}
		annee = n
	}
	if v := r.URL.Query().Get("mois"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_mois", nil)
			return
		}
		mois = time.Month(n)
	}
	rapport, err := h.Stats.RapportMensuel(annee, mois)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rapport)
}
