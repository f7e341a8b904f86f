// Package pdf génère les documents imprimables de l'atelier avec maroto.
// Les fonctions prennent des structures de données déjà calculées et
// rendent des octets PDF: aucun accès base ici.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// MesureLigne est une mesure nommée à imprimer sur la fiche client.
type MesureLigne struct {
	Nom    string
	Valeur float64 // cm
}

// FicheClientData alimente la fiche client (identité + dernier relevé).
type FicheClientData struct {
	Atelier   string
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
	Date      string // déjà formatée
	Version   int
	Mesures   []MesureLigne
	Notes     string
}

// PaiementLigne est une ligne de l'historique des paiements du reçu.
type PaiementLigne struct {
	Date    string
	Montant float64
	Methode string
	Type    string
}

// RecuCommandeData alimente le reçu de commande.
type RecuCommandeData struct {
	Atelier        string
	ClientNom      string
	ClientTel      string
	CommandeID     string
	Modele         string
	DateCommande   string
	DateLivraison  string
	Statut         string
	MontantTotal   float64
	Acompte        float64
	Reste          float64
	StatutPaiement string
	Paiements      []PaiementLigne
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(12).
		WithTopMargin(14).
		WithRightMargin(12).
		Build()
	return maroto.New(cfg)
}

func header(m core.Maroto, atelier, titre string) {
	m.AddRow(10, text.NewCol(12, atelier, props.Text{
		Size: 16, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(8, text.NewCol(12, titre, props.Text{
		Size: 12, Align: align.Center,
	}))
	m.AddRow(4, line.NewCol(12))
}

func labelValue(m core.Maroto, label, value string) {
	m.AddRow(6,
		text.NewCol(4, label, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(8, value, props.Text{Size: 10}),
	)
}

func fcfa(v float64) string { return fmt.Sprintf("%.0f FCFA", v) }

// FicheClientPDF imprime l'identité du client et son dernier relevé de
// mesures (une ligne par mesure, valeurs en cm).
func FicheClientPDF(d FicheClientData) ([]byte, error) {
	m := newDocument()
	header(m, d.Atelier, "Fiche client")

	labelValue(m, "Nom", d.Nom+" "+d.Prenom)
	labelValue(m, "Téléphone", d.Telephone)
	if d.Email != "" {
		labelValue(m, "Email", d.Email)
	}
	if d.Adresse != "" {
		labelValue(m, "Adresse", d.Adresse)
	}
	labelValue(m, "Date", d.Date)

	m.AddRow(4, line.NewCol(12))
	if len(d.Mesures) == 0 {
		m.AddRow(8, text.NewCol(12, "Aucune mesure enregistrée", props.Text{Size: 10, Style: fontstyle.Italic}))
	} else {
		m.AddRow(8, text.NewCol(12, fmt.Sprintf("Mesures (relevé n°%d)", d.Version), props.Text{
			Size: 12, Style: fontstyle.Bold,
		}))
		m.AddRow(6,
			text.NewCol(8, "Mesure", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(4, "Valeur (cm)", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		)
		for _, ligne := range d.Mesures {
			m.AddRow(5,
				text.NewCol(8, ligne.Nom, props.Text{Size: 10}),
				text.NewCol(4, fmt.Sprintf("%.1f", ligne.Valeur), props.Text{Size: 10, Align: align.Right}),
			)
		}
	}
	if d.Notes != "" {
		m.AddRow(4, line.NewCol(12))
		m.AddRow(6, text.NewCol(12, "Notes: "+d.Notes, props.Text{Size: 9, Style: fontstyle.Italic}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// RecuCommandePDF imprime le reçu d'une commande: montants, statut de
// paiement et historique des paiements.
func RecuCommandePDF(d RecuCommandeData) ([]byte, error) {
	m := newDocument()
	header(m, d.Atelier, "Reçu de commande")

	labelValue(m, "Commande", d.CommandeID)
	labelValue(m, "Client", d.ClientNom)
	if d.ClientTel != "" {
		labelValue(m, "Téléphone", d.ClientTel)
	}
	labelValue(m, "Modèle", d.Modele)
	labelValue(m, "Date de commande", d.DateCommande)
	if d.DateLivraison != "" {
		labelValue(m, "Livraison prévue", d.DateLivraison)
	}
	labelValue(m, "Statut", d.Statut)

	m.AddRow(4, line.NewCol(12))
	labelValue(m, "Montant total", fcfa(d.MontantTotal))
	labelValue(m, "Acompte versé", fcfa(d.Acompte))
	labelValue(m, "Reste à payer", fcfa(d.Reste))
	labelValue(m, "Paiement", d.StatutPaiement)

	if len(d.Paiements) > 0 {
		m.AddRow(4, line.NewCol(12))
		m.AddRow(8, text.NewCol(12, "Historique des paiements", props.Text{Size: 12, Style: fontstyle.Bold}))
		m.AddRow(6,
			text.NewCol(3, "Date", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(3, "Montant", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(3, "Méthode", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(3, "Type", props.Text{Size: 10, Style: fontstyle.Bold}),
		)
		for _, p := range d.Paiements {
			m.AddRow(5,
				text.NewCol(3, p.Date, props.Text{Size: 10}),
				text.NewCol(3, fcfa(p.Montant), props.Text{Size: 10, Align: align.Right}),
				text.NewCol(3, p.Methode, props.Text{Size: 10}),
				text.NewCol(3, p.Type, props.Text{Size: 10}),
			)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
