package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type CommandeHandler struct {
	Commandes *services.CommandeService
	Paiements *services.PaiementService
}

func NewCommandeHandler(commandes *services.CommandeService, paiements *services.PaiementService) *CommandeHandler {
	return &CommandeHandler{Commandes: commandes, Paiements: paiements}
}

// Collection: GET /commandes?clientId=&statut= et POST /commandes.
func (h *CommandeHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		commandes, err := h.Commandes.List(q.Get("clientId"), q.Get("statut"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, commandes)
	case http.MethodPost:
		var input services.NewCommandeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		commande, err := h.Commandes.Create(input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, commande)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

// Item: GET /commandes/get?id=...
func (h *CommandeHandler) Item(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	commande, err := h.Commandes.Get(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, commande)
}

// Statut: POST /commandes/statut {id, statut}.
func (h *CommandeHandler) Statut(w http.ResponseWriter, r *http.Request) {
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
	commande, err := h.Commandes.UpdateStatut(input.ID, input.Statut)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, commande)
}

// Delete: POST /commandes/delete {id}. Les paiements et retouches de la
// commande partent avec elle.
func (h *CommandeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Commandes.Delete(input.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Paiements: GET /paiements?commandeId= et POST /paiements.
// L'enregistrement réécrit acompte/reste/statut de la commande dans la
// même transaction.
func (h *CommandeHandler) PaiementsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		commandeID := r.URL.Query().Get("commandeId")
		if commandeID == "" {
			paiements, err := h.Paiements.List()
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			httpx.JSON(w, http.StatusOK, paiements)
			return
		}
		paiements, err := h.Paiements.ListByCommande(commandeID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, paiements)
	case http.MethodPost:
		var input services.RecordPaiementInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badJSON(w)
			return
		}
		paiement, err := h.Paiements.Record(input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, paiement)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}
