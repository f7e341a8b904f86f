package models

import "time"

// Types d'alerte.
const (
	AlerteLivraison = "livraison"
	AlertePaiement  = "paiement"
	AlerteRetouche  = "retouche"
	AlerteRappel    = "rappel"
)

// Priorités d'alerte.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Alerte dérivée des commandes/retouches courantes. L'ID est déterministe
// par fait source ("livraison-<commandeID>", ...) pour éviter les doublons
// au sein d'un même balayage. La collection est vidée puis reconstruite à
// chaque balayage.
type Alerte struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Type         string    `gorm:"not null;index" json:"type"`
	Titre        string    `gorm:"not null" json:"titre"`
	Message      string    `json:"message"`
	Priority     string    `gorm:"not null;index" json:"priority"`
	IsRead       bool      `gorm:"index" json:"isRead"`
	DateCreation time.Time `gorm:"index" json:"dateCreation"`
	RelatedID    string    `json:"relatedId"`
}
