package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/i18n"
	"github.com/diewo77/coutupro/internal/services"
)

// writeServiceError traduit une erreur de la couche service en réponse JSON.
// Le champ error reste un code stable; details porte le message localisé
// (ou les violations champ par champ, localisées).
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		localized := map[string]string{}
		for field, code := range verr.Violations {
			localized[field] = i18n.T(lang, code)
		}
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", localized)
		return
	}

	status := http.StatusInternalServerError
	code := "internal_error"
	switch {
	case errors.Is(err, services.ErrClientIntrouvable),
		errors.Is(err, services.ErrCommandeIntrouvable),
		errors.Is(err, services.ErrRetoucheIntrouvable),
		errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		code = err.Error()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			code = "not_found"
		}
	case errors.Is(err, services.ErrMontantExcessif),
		errors.Is(err, services.ErrCodeExistant):
		status = http.StatusConflict
		code = err.Error()
	case errors.Is(err, services.ErrImportInvalide):
		status = http.StatusBadRequest
		code = err.Error()
	}
	httpx.JSONErrorMessage(w, status, code, i18n.T(lang, code))
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
}

func badJSON(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
}
