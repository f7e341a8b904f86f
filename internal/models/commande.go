package models

import "time"

// Statuts de commande.
const (
	StatutEnAttente = "En attente"
	StatutEnCours   = "En cours"
	StatutRetouche  = "Retouche"
	StatutLivree    = "Livrée"
	StatutAnnulee   = "Annulée"
)

// Statuts de paiement dérivés (voir services.ComputePaymentStatus).
const (
	PaiementImpaye  = "Impayé"
	PaiementAcompte = "Acompte"
	PaiementPaye    = "Payé"
)

// Priorités de commande.
const (
	PrioriteBasse   = "Basse"
	PrioriteNormale = "Normale"
	PrioriteHaute   = "Haute"
	PrioriteUrgente = "Urgente"
)

// Commande d'un vêtement pour un client. Reste et StatutPaiement sont
// dérivés de MontantTotal/Acompte et réécrits à chaque paiement.
type Commande struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	ClientID       string    `gorm:"not null;index" json:"clientId"`
	Modele         string    `gorm:"not null" json:"modele"`
	Photo          string    `json:"photo"`
	Reference      string    `json:"reference"`
	DateCommande   time.Time `gorm:"index" json:"dateCommande"`
	DateLivraison  time.Time `gorm:"index" json:"dateLivraison"`
	Statut         string    `gorm:"not null;index" json:"statut"`
	MontantTotal   float64   `gorm:"not null" json:"montantTotal"`
	Acompte        float64   `json:"acompte"` // cumul des paiements, ne décroît jamais
	Reste          float64   `json:"reste"`
	StatutPaiement string    `gorm:"not null" json:"statutPaiement"`
	Notes          string    `json:"notes"`
	Priorite       string    `json:"priorite"`
	Couleur        string    `json:"couleur"`
	Tissu          string    `json:"tissu"`
	Doublure       string    `json:"doublure"`
	Accessoires    string    `json:"accessoires"`
	Instructions   string    `json:"instructions"`
}
