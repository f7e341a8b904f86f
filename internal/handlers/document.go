package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/pdf"
	"github.com/diewo77/coutupro/internal/services"
)

// DocumentHandler assemble les données et délègue le rendu au paquet pdf.
type DocumentHandler struct {
	Clients   *services.ClientService
	Mesures   *services.MesureService
	Commandes *services.CommandeService
	Paiements *services.PaiementService
	Settings  *services.SettingsService
}

func NewDocumentHandler(clients *services.ClientService, mesures *services.MesureService, commandes *services.CommandeService, paiements *services.PaiementService, settings *services.SettingsService) *DocumentHandler {
	return &DocumentHandler{Clients: clients, Mesures: mesures, Commandes: commandes, Paiements: paiements, Settings: settings}
}

func (h *DocumentHandler) atelierName() string {
	settings, err := h.Settings.Get()
	if err != nil {
		return "COUTUPRO"
	}
	return settings.AtelierName
}

// FicheClient: GET /pdf/fiche-client?id=... — identité + dernier relevé.
func (h *DocumentHandler) FicheClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	client, err := h.Clients.Get(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data := pdf.FicheClientData{
		Atelier:   h.atelierName(),
		Nom:       client.Nom,
		Prenom:    client.Prenom,
		Telephone: client.Telephone,
		Email:     client.Email,
		Adresse:   client.Adresse,
		Date:      time.Now().Format("02/01/2006"),
		Notes:     client.Notes,
	}
	mesure, err := h.Mesures.Latest(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if mesure != nil {
		data.Version = mesure.Version
		valeurs := services.FilterValeurs(mesure.Valeurs)
		noms := make([]string, 0, len(valeurs))
		for nom := range valeurs {
			noms = append(noms, nom)
		}
		sort.Strings(noms)
		for _, nom := range noms {
			data.Mesures = append(data.Mesures, pdf.MesureLigne{Nom: nom, Valeur: valeurs[nom]})
		}
	}

	raw, err := pdf.FicheClientPDF(data)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"fiche-"+client.ID+".pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// RecuCommande: GET /pdf/recu?id=... — montants, statut et historique des
// paiements d'une commande.
func (h *DocumentHandler) RecuCommande(w http.ResponseWriter, r *http.Request) {
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
	client, err := h.Clients.Get(commande.ClientID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	paiements, err := h.Paiements.ListByCommande(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data := pdf.RecuCommandeData{
		Atelier:        h.atelierName(),
		ClientNom:      client.Prenom + " " + client.Nom,
		ClientTel:      client.Telephone,
		CommandeID:     commande.ID,
		Modele:         commande.Modele,
		DateCommande:   commande.DateCommande.Format("02/01/2006"),
		Statut:         commande.Statut,
		MontantTotal:   commande.MontantTotal,
		Acompte:        commande.Acompte,
		Reste:          commande.Reste,
		StatutPaiement: commande.StatutPaiement,
	}
	if !commande.DateLivraison.IsZero() {
		data.DateLivraison = commande.DateLivraison.Format("02/01/2006")
	}
	for _, p := range paiements {
		data.Paiements = append(data.Paiements, pdf.PaiementLigne{
			Date:    p.DatePaiement.Format("02/01/2006"),
			Montant: p.Montant,
			Methode: p.Methode,
			Type:    p.Type,
		})
	}

	raw, err := pdf.RecuCommandePDF(data)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"recu-"+commande.ID+".pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
