package models

import "time"

// Types de paiement.
const (
	PaiementTypeAcompte = "Acompte"
	PaiementTypeSolde   = "Solde"
)

// Méthodes de paiement acceptées.
const (
	MethodeEspeces  = "Espèces"
	MethodeCarte    = "Carte"
	MethodeVirement = "Virement"
	MethodeMobile   = "Mobile"
	MethodeCheque   = "Chèque"
)

// Paiement enregistré sur une commande. Append-only: ni mise à jour ni
// suppression dans les flux définis.
type Paiement struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	CommandeID   string    `gorm:"not null;index" json:"commandeId"`
	Montant      float64   `gorm:"not null" json:"montant"`
	Type         string    `gorm:"not null" json:"type"` // Acompte ou Solde
	DatePaiement time.Time `gorm:"index" json:"datePaiement"`
	Methode      string    `gorm:"not null" json:"methode"`
	Reference    string    `json:"reference"`
	Notes        string    `json:"notes"`
}
