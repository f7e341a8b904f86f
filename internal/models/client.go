package models

import "time"

// Client de l'atelier. Le téléphone est obligatoire et sert de clé de
// recherche/déduplication.
type Client struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Nom          string    `gorm:"not null;index" json:"nom"`
	Prenom       string    `gorm:"index" json:"prenom"`
	Telephone    string    `gorm:"not null;index" json:"telephone"`
	Email        string    `json:"email"`
	Adresse      string    `json:"adresse"`
	Photo        string    `json:"photo"` // data URL ou chemin du fichier
	Notes        string    `json:"notes"`
	DateCreation time.Time `gorm:"index" json:"dateCreation"`
}
