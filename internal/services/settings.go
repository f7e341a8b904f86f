package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
)

// UpdateSettingsInput réécrit les réglages de l'atelier.
type UpdateSettingsInput struct {
	AtelierName    string
	Logo           string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	Adresse        string
	Telephone      string
	Email          string
	SIRET          string
	TVA            string
}

type SettingsService struct{ DB *gorm.DB }

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{DB: db} }

// Get renvoie le singleton de réglages, créé avec des valeurs par défaut à
// la première lecture.
func (s *SettingsService) Get() (*models.Settings, error) {
	var st models.Settings
	err := s.DB.First(&st, "id = ?", models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		st = models.Settings{
			ID:             models.SettingsID,
			AtelierName:    "COUTUPRO",
			PrimaryColor:   "#1d4ed8",
			SecondaryColor: "#059669",
			AccentColor:    "#ea580c",
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.DB.Create(&st).Error; err != nil {
			return nil, err
		}
		return &st, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *SettingsService) Update(in UpdateSettingsInput) (*models.Settings, error) {
	st, err := s.Get()
	if err != nil {
		return nil, err
	}
	updates := map[string]any{
		"atelier_name":    in.AtelierName,
		"logo":            in.Logo,
		"primary_color":   in.PrimaryColor,
		"secondary_color": in.SecondaryColor,
		"accent_color":    in.AccentColor,
		"adresse":         in.Adresse,
		"telephone":       in.Telephone,
		"email":           in.Email,
		"siret":           in.SIRET,
		"tva":             in.TVA,
		"updated_at":      time.Now(),
	}
	if err := s.DB.Model(st).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get()
}
