package pdf

import (
	"bytes"
	"testing"
)

func TestFicheClientPDF(t *testing.T) {
	data, err := FicheClientPDF(FicheClientData{
		Atelier:   "COUTUPRO",
		Nom:       "Diallo",
		Prenom:    "Awa",
		Telephone: "770000000",
		Date:      "29/08/2026",
		Version:   2,
		Mesures: []MesureLigne{
			{Nom: "Tour de poitrine", Valeur: 92},
			{Nom: "Tour de taille", Valeur: 74.5},
		},
		Notes: "Préférence manches longues",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF bytes, got %q", data[:min(8, len(data))])
	}
}

func TestRecuCommandePDF(t *testing.T) {
	data, err := RecuCommandePDF(RecuCommandeData{
		Atelier:        "COUTUPRO",
		ClientNom:      "Awa Diallo",
		CommandeID:     "cmd-1",
		Modele:         "Boubou brodé",
		DateCommande:   "20/08/2026",
		DateLivraison:  "05/09/2026",
		Statut:         "En cours",
		MontantTotal:   60000,
		Acompte:        20000,
		Reste:          40000,
		StatutPaiement: "Acompte",
		Paiements: []PaiementLigne{
			{Date: "20/08/2026", Montant: 20000, Methode: "Espèces", Type: "Acompte"},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF bytes")
	}
}
