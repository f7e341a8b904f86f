package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
)

// ExportPayload est le format d'échange: un objet JSON avec un tableau par
// collection et la date d'export.
type ExportPayload struct {
	Clients    []models.Client   `json:"clients"`
	Mesures    []models.Mesure   `json:"mesures"`
	Commandes  []models.Commande `json:"commandes"`
	Paiements  []models.Paiement `json:"paiements"`
	Retouches  []models.Retouche `json:"retouches"`
	Settings   []models.Settings `json:"settings"`
	ExportDate string            `json:"exportDate"`
}

type ExportService struct{ DB *gorm.DB }

func NewExportService(db *gorm.DB) *ExportService { return &ExportService{DB: db} }

// Export photographie toutes les collections métier. Les alertes sont
// exclues: état dérivé, reconstruit au prochain balayage.
func (s *ExportService) Export() (*ExportPayload, error) {
	p := &ExportPayload{ExportDate: time.Now().Format(time.RFC3339)}
	if err := s.DB.Find(&p.Clients).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Find(&p.Mesures).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Find(&p.Commandes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Find(&p.Paiements).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Find(&p.Retouches).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Find(&p.Settings).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Import remplace les données par le contenu du fichier. La présence des
// tableaux clients et commandes est exigée avant toute écriture; le
// remplacement est transactionnel. Les alertes courantes sont vidées, le
// prochain balayage les re-dérivera de l'état importé.
func (s *ExportService) Import(p *ExportPayload) error {
	if p == nil || p.Clients == nil || p.Commandes == nil {
		return ErrImportInvalide
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.Alerte{}, &models.Retouche{}, &models.Paiement{},
			&models.Commande{}, &models.Mesure{}, &models.Client{},
			&models.Settings{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		if len(p.Clients) > 0 {
			if err := tx.Create(&p.Clients).Error; err != nil {
				return err
			}
		}
		if len(p.Mesures) > 0 {
			if err := tx.Create(&p.Mesures).Error; err != nil {
				return err
			}
		}
		if len(p.Commandes) > 0 {
			if err := tx.Create(&p.Commandes).Error; err != nil {
				return err
			}
		}
		if len(p.Paiements) > 0 {
			if err := tx.Create(&p.Paiements).Error; err != nil {
				return err
			}
		}
		if len(p.Retouches) > 0 {
			if err := tx.Create(&p.Retouches).Error; err != nil {
				return err
			}
		}
		if len(p.Settings) > 0 {
			if err := tx.Create(&p.Settings).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
