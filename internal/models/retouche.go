package models

import "time"

// Statuts de retouche.
const (
	RetoucheEnAttente = "En attente"
	RetoucheEnCours   = "En cours"
	RetoucheTerminee  = "Terminée"
)

// Retouche (ajustement) rattachée à une commande.
type Retouche struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	CommandeID   string    `gorm:"not null;index" json:"commandeId"`
	Description  string    `gorm:"not null" json:"description"`
	DatePrevue   time.Time `gorm:"index" json:"datePrevue"`
	Statut       string    `gorm:"not null;index" json:"statut"`
	DateCreation time.Time `json:"dateCreation"`
	Notes        string    `json:"notes"`
	Cout         float64   `json:"cout"`
}
