package models

import "time"

// SettingsID est l'identifiant du singleton de réglages.
const SettingsID = "default"

// Settings regroupe les réglages de l'atelier (enregistrement unique).
type Settings struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	AtelierName    string    `gorm:"not null" json:"atelierName"`
	Logo           string    `json:"logo"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	AccentColor    string    `json:"accentColor"`
	Adresse        string    `json:"adresse"`
	Telephone      string    `json:"telephone"`
	Email          string    `json:"email"`
	SIRET          string    `json:"siret"`
	TVA            string    `json:"tva"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
