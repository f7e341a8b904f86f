package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/validation"
)

// Catalogue par défaut des mesures nommées, dans l'ordre d'affichage.
var defaultMesureTypes = []string{
	"Tour de cou",
	"Tour de poitrine",
	"Tour de taille",
	"Tour de hanches",
	"Largeur d'épaules",
	"Longueur de bras",
	"Tour de bras",
	"Tour de poignet",
	"Longueur de jambe",
	"Tour de cuisse",
	"Longueur totale",
}

type MesureService struct{ DB *gorm.DB }

func NewMesureService(db *gorm.DB) *MesureService { return &MesureService{DB: db} }

// Record ajoute un nouveau relevé pour le client, avec un numéro de version
// strictement croissant. Les relevés précédents sont conservés tels quels.
func (s *MesureService) Record(clientID string, valeurs map[string]float64, notes string) (*models.Mesure, error) {
	v := validation.Violations{}
	validation.Required("clientId", clientID, v)
	if len(valeurs) == 0 {
		v["valeurs"] = "required"
	}
	if err := validate(v); err != nil {
		return nil, err
	}
	var count int64
	if err := s.DB.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrClientIntrouvable
	}

	var m models.Mesure
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var maxVersion int
		if err := tx.Model(&models.Mesure{}).Where("client_id = ?", clientID).
			Select("COALESCE(MAX(version), 0)").Scan(&maxVersion).Error; err != nil {
			return err
		}
		m = models.Mesure{
			ID:           uuid.NewString(),
			ClientID:     clientID,
			Valeurs:      valeurs,
			Version:      maxVersion + 1,
			Notes:        notes,
			DateCreation: time.Now(),
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByClient renvoie l'historique des relevés, du plus récent au plus
// ancien.
func (s *MesureService) ListByClient(clientID string) ([]models.Mesure, error) {
	var mesures []models.Mesure
	if err := s.DB.Where("client_id = ?", clientID).Order("version desc").Find(&mesures).Error; err != nil {
		return nil, err
	}
	return mesures, nil
}

// Latest renvoie le relevé courant du client, nil s'il n'en a aucun.
func (s *MesureService) Latest(clientID string) (*models.Mesure, error) {
	var m models.Mesure
	err := s.DB.Where("client_id = ?", clientID).Order("version desc").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FilterValeurs écarte les valeurs <= 0, qui valent "non relevée" et ne
// doivent apparaître ni à l'affichage ni sur les PDF.
func FilterValeurs(valeurs map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(valeurs))
	for nom, val := range valeurs {
		if val > 0 {
			out[nom] = val
		}
	}
	return out
}

// SeedMesureTypes insère le catalogue par défaut s'il manque; les entrées
// déjà présentes sont laissées en place.
func (s *MesureService) SeedMesureTypes() error {
	for i, nom := range defaultMesureTypes {
		var count int64
		if err := s.DB.Model(&models.MesureType{}).Where("nom = ?", nom).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		mt := models.MesureType{ID: uuid.NewString(), Nom: nom, IsDefault: true, Ordre: i + 1}
		if err := s.DB.Create(&mt).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListMesureTypes renvoie le catalogue dans l'ordre d'affichage.
func (s *MesureService) ListMesureTypes() ([]models.MesureType, error) {
	var types []models.MesureType
	if err := s.DB.Order("ordre").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
