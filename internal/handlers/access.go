package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/coutupro/internal/auth"
	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/i18n"
	"github.com/diewo77/coutupro/internal/services"
)

// AccessHandler expose la porte d'entrée: échange d'un code d'accès contre
// une session d'appareil, et l'administration des codes.
type AccessHandler struct {
	Access *services.AccessService
}

func NewAccessHandler(access *services.AccessService) *AccessHandler {
	return &AccessHandler{Access: access}
}

// Login: POST /auth/login {code, fingerprint:{...}}
// Consomme le code (sauf code maître) et pose le cookie de session signé.
func (h *AccessHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Code        string                         `json:"code"`
		Fingerprint services.FingerprintComponents `json:"fingerprint"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}
	fp := services.FingerprintFromComponents(input.Fingerprint)
	if !h.Access.AuthenticateWithCode(input.Code, fp) {
		lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		httpx.JSONErrorMessage(w, http.StatusUnauthorized, "code_invalide", i18n.T(lang, "code_invalide"))
		return
	}
	auth.CreateSession(w, fp)
	httpx.JSON(w, http.StatusOK, map[string]any{"authenticated": true})
}

// Session: GET /auth/session — l'appareil courant est-il autorisé ?
func (h *AccessHandler) Session(w http.ResponseWriter, r *http.Request) {
	fp, ok := auth.FingerprintFromContext(r.Context())
	authenticated := ok && h.Access.IsAuthenticated(fp)
	httpx.JSON(w, http.StatusOK, map[string]any{"authenticated": authenticated})
}

// Logout: POST /auth/logout — supprime la session; le code consommé reste
// inutilisable.
func (h *AccessHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if fp, ok := auth.FingerprintFromContext(r.Context()); ok {
		if err := h.Access.Logout(fp); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

// Codes: GET /admin/codes (liste) et POST /admin/codes (création).
// POST sans code explicite en génère un aléatoire.
func (h *AccessHandler) Codes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		codes, err := h.Access.ListCodes()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, codes)
	case http.MethodPost:
		var input struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		if input.Code == "" {
			input.Code = services.GenerateRandomCode(8)
		}
		created, err := h.Access.CreateCode(input.Code)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}
