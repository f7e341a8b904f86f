package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/validation"
)

// NewClientInput est la requête typée de création de client.
type NewClientInput struct {
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
	Photo     string
	Notes     string
}

type ClientService struct{ DB *gorm.DB }

func NewClientService(db *gorm.DB) *ClientService { return &ClientService{DB: db} }

func (s *ClientService) Create(in NewClientInput) (*models.Client, error) {
	v := validation.Violations{}
	validation.Required("nom", in.Nom, v)
	validation.Required("telephone", in.Telephone, v)
	if err := validate(v); err != nil {
		return nil, err
	}
	c := models.Client{
		ID:           uuid.NewString(),
		Nom:          in.Nom,
		Prenom:       in.Prenom,
		Telephone:    in.Telephone,
		Email:        in.Email,
		Adresse:      in.Adresse,
		Photo:        in.Photo,
		Notes:        in.Notes,
		DateCreation: time.Now(),
	}
	if err := s.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClientService) Get(id string) (*models.Client, error) {
	var c models.Client
	if err := s.DB.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientIntrouvable
		}
		return nil, err
	}
	return &c, nil
}

// List renvoie les clients, filtrés par la recherche libre (nom, prénom ou
// téléphone), les plus récents d'abord.
func (s *ClientService) List(search string) ([]models.Client, error) {
	q := s.DB.Order("date_creation desc")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nom LIKE ? OR prenom LIKE ? OR telephone LIKE ?", like, like, like)
	}
	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Update réécrit les champs modifiables. Le téléphone reste obligatoire.
func (s *ClientService) Update(id string, in NewClientInput) (*models.Client, error) {
	v := validation.Violations{}
	validation.Required("nom", in.Nom, v)
	validation.Required("telephone", in.Telephone, v)
	if err := validate(v); err != nil {
		return nil, err
	}
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{
		"nom": in.Nom, "prenom": in.Prenom, "telephone": in.Telephone,
		"email": in.Email, "adresse": in.Adresse, "photo": in.Photo,
		"notes": in.Notes,
	}
	if err := s.DB.Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}
