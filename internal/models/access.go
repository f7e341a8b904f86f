package models

import "time"

// AccessCode est un code d'accès à usage unique. Une fois IsUsed passé à
// true, le même code ne peut plus authentifier un autre appareil.
type AccessCode struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"unique;not null;index" json:"code"`
	IsUsed    bool       `gorm:"index" json:"isUsed"`
	UsedBy    string     `json:"usedBy"` // empreinte de l'appareil consommateur
	UsedAt    *time.Time `json:"usedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// User représente une session d'appareil: le code consommé lié à
// l'empreinte du navigateur. Pas de vrais comptes utilisateurs.
type User struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Code               string    `gorm:"index" json:"code"`
	UsedAt             time.Time `json:"usedAt"`
	BrowserFingerprint string    `gorm:"index" json:"browserFingerprint"`
}
