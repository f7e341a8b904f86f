package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type ClientHandler struct {
	Clients *services.ClientService
	Mesures *services.MesureService
}

func NewClientHandler(clients *services.ClientService, mesures *services.MesureService) *ClientHandler {
	return &ClientHandler{Clients: clients, Mesures: mesures}
}

// Collection: GET /clients?q=... et POST /clients.
func (h *ClientHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clients, err := h.Clients.List(r.URL.Query().Get("q"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, clients)
	case http.MethodPost:
		var input services.NewClientInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		client, err := h.Clients.Create(input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, client)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

// Item: GET /clients/get?id=... et PUT /clients/get?id=...
func (h *ClientHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	switch r.Method {
	case http.MethodGet:
		client, err := h.Clients.Get(id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, client)
	case http.MethodPut:
		var input services.NewClientInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		client, err := h.Clients.Update(id, input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, client)
	default:
		methodNotAllowed(w, "GET,PUT")
	}
}

// Mesures du client: GET /clients/mesures?clientId=... (historique, relevé
// le plus récent d'abord) et POST (nouveau relevé versionné).
func (h *ClientHandler) MesuresCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clientID := r.URL.Query().Get("clientId")
		if clientID == "" {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
			return
		}
		mesures, err := h.Mesures.ListByClient(clientID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, mesures)
	case http.MethodPost:
		var input struct {
			ClientID string             `json:"clientId"`
			Valeurs  map[string]float64 `json:"valeurs"`
			Notes    string             `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		mesure, err := h.Mesures.Record(input.ClientID, input.Valeurs, input.Notes)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, mesure)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

// MesureTypes: GET /mesure-types — le catalogue ordonné des mesures nommées.
func (h *ClientHandler) MesureTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	types, err := h.Mesures.ListMesureTypes()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, types)
}
