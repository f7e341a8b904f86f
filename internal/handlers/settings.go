package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type SettingsHandler struct {
	Settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// Handle: GET /settings (création paresseuse du singleton) et PUT /settings.
func (h *SettingsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		settings, err := h.Settings.Get()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, settings)
	case http.MethodPut:
		var input services.UpdateSettingsInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		settings, err := h.Settings.Update(input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, settings)
	default:
		methodNotAllowed(w, "GET,PUT")
	}
}
