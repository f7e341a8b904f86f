package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/validation"
)

// RecordPaiementInput est la requête typée d'encaissement.
type RecordPaiementInput struct {
	CommandeID string
	Montant    float64
	Type       string // Acompte ou Solde; déduit du reste si vide
	Methode    string
	Reference  string
	Notes      string
}

type PaiementService struct{ DB *gorm.DB }

func NewPaiementService(db *gorm.DB) *PaiementService { return &PaiementService{DB: db} }

// Record enregistre un paiement et réécrit acompte/reste/statutPaiement de
// la commande parente. Les deux écritures forment une seule transaction:
// soit les deux s'appliquent, soit aucune.
func (s *PaiementService) Record(in RecordPaiementInput) (*models.Paiement, error) {
	v := validation.Violations{}
	validation.Required("commandeId", in.CommandeID, v)
	validation.PositiveFloat("montant", in.Montant, v)
	validation.OneOf("methode", in.Methode, []string{
		models.MethodeEspeces, models.MethodeCarte, models.MethodeVirement,
		models.MethodeMobile, models.MethodeCheque,
	}, v)
	if err := validate(v); err != nil {
		return nil, err
	}

	var paiement models.Paiement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cmd models.Commande
		if err := tx.First(&cmd, "id = ?", in.CommandeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommandeIntrouvable
			}
			return err
		}
		// Refus avant toute écriture: pas de trop-perçu par ce flux.
		if in.Montant > cmd.Reste {
			return ErrMontantExcessif
		}
		newAcompte := cmd.Acompte + in.Montant
		reste, statutPaiement := ComputePaymentStatus(cmd.MontantTotal, newAcompte)

		typ := in.Type
		if typ == "" {
			typ = models.PaiementTypeAcompte
			if reste <= 0 {
				typ = models.PaiementTypeSolde
			}
		}
		paiement = models.Paiement{
			ID:           uuid.NewString(),
			CommandeID:   cmd.ID,
			Montant:      in.Montant,
			Type:         typ,
			DatePaiement: time.Now(),
			Methode:      in.Methode,
			Reference:    in.Reference,
			Notes:        in.Notes,
		}
		if err := tx.Create(&paiement).Error; err != nil {
			return err
		}
		return tx.Model(&cmd).Updates(map[string]any{
			"acompte":         newAcompte,
			"reste":           reste,
			"statut_paiement": statutPaiement,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &paiement, nil
}

// ListByCommande renvoie les paiements d'une commande, du plus récent au
// plus ancien.
func (s *PaiementService) ListByCommande(commandeID string) ([]models.Paiement, error) {
	var ps []models.Paiement
	if err := s.DB.Where("commande_id = ?", commandeID).Order("date_paiement desc").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PaiementService) List() ([]models.Paiement, error) {
	var ps []models.Paiement
	if err := s.DB.Order("date_paiement desc").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}
