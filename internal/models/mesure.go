package models

import "time"

// Mesure regroupe un relevé complet de mesures (en cm) pour un client.
// Les relevés sont ajoutés, jamais écrasés: Version croît par client pour
// conserver l'historique.
type Mesure struct {
	ID           string             `gorm:"primaryKey" json:"id"`
	ClientID     string             `gorm:"not null;index" json:"clientId"`
	Valeurs      map[string]float64 `gorm:"serializer:json" json:"valeurs"` // nom de la mesure -> valeur
	Version      int                `gorm:"not null" json:"version"`
	Notes        string             `json:"notes"`
	DateCreation time.Time          `gorm:"index" json:"dateCreation"`
}

// MesureType décrit une mesure nommée du catalogue (tour de poitrine, ...).
type MesureType struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Nom       string `gorm:"unique;not null" json:"nom"`
	IsDefault bool   `json:"isDefault"`
	Ordre     int    `json:"ordre"`
}
