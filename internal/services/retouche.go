package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/validation"
)

var ErrRetoucheIntrouvable = errors.New("retouche_not_found")

// NewRetoucheInput est la requête typée de création de retouche.
type NewRetoucheInput struct {
	CommandeID  string
	Description string
	DatePrevue  time.Time
	Cout        float64
	Notes       string
}

type RetoucheService struct{ DB *gorm.DB }

func NewRetoucheService(db *gorm.DB) *RetoucheService { return &RetoucheService{DB: db} }

func (s *RetoucheService) Create(in NewRetoucheInput) (*models.Retouche, error) {
	v := validation.Violations{}
	validation.Required("commandeId", in.CommandeID, v)
	validation.Required("description", in.Description, v)
	validation.NonZeroDate("datePrevue", in.DatePrevue, v)
	if in.Cout < 0 {
		v["cout"] = "must_be_positive"
	}
	if err := validate(v); err != nil {
		return nil, err
	}
	var count int64
	if err := s.DB.Model(&models.Commande{}).Where("id = ?", in.CommandeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCommandeIntrouvable
	}
	r := models.Retouche{
		ID:           uuid.NewString(),
		CommandeID:   in.CommandeID,
		Description:  in.Description,
		DatePrevue:   in.DatePrevue,
		Statut:       models.RetoucheEnAttente,
		DateCreation: time.Now(),
		Notes:        in.Notes,
		Cout:         in.Cout,
	}
	if err := s.DB.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// List renvoie les retouches, éventuellement filtrées par statut ou par
// commande, échéance la plus proche d'abord.
func (s *RetoucheService) List(commandeID, statut string) ([]models.Retouche, error) {
	q := s.DB.Order("date_prevue")
	if commandeID != "" {
		q = q.Where("commande_id = ?", commandeID)
	}
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var retouches []models.Retouche
	if err := q.Find(&retouches).Error; err != nil {
		return nil, err
	}
	return retouches, nil
}

func (s *RetoucheService) UpdateStatut(id, statut string) (*models.Retouche, error) {
	v := validation.Violations{}
	validation.OneOf("statut", statut, []string{
		models.RetoucheEnAttente, models.RetoucheEnCours, models.RetoucheTerminee,
	}, v)
	if err := validate(v); err != nil {
		return nil, err
	}
	var r models.Retouche
	if err := s.DB.First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRetoucheIntrouvable
		}
		return nil, err
	}
	if err := s.DB.Model(&r).Update("statut", statut).Error; err != nil {
		return nil, err
	}
	r.Statut = statut
	return &r, nil
}
