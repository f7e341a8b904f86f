package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/validation"
)

// NewCommandeInput est la requête typée de création de commande.
type NewCommandeInput struct {
	ClientID      string
	Modele        string
	Photo         string
	Reference     string
	DateLivraison time.Time
	MontantTotal  float64
	Acompte       float64 // acompte encaissé à la création, optionnel
	Methode       string  // méthode de l'acompte initial
	Notes         string
	Priorite      string
	Couleur       string
	Tissu         string
	Doublure      string
	Accessoires   string
	Instructions  string
}

type CommandeService struct{ DB *gorm.DB }

func NewCommandeService(db *gorm.DB) *CommandeService { return &CommandeService{DB: db} }

// Create enregistre une commande avec ses champs de grand livre dérivés.
// Un acompte initial non nul crée aussi le Paiement correspondant, dans la
// même transaction, pour que le cumul reste égal à la somme des paiements.
func (s *CommandeService) Create(in NewCommandeInput) (*models.Commande, error) {
	v := validation.Violations{}
	validation.Required("clientId", in.ClientID, v)
	validation.Required("modele", in.Modele, v)
	validation.PositiveFloat("montantTotal", in.MontantTotal, v)
	validation.NonZeroDate("dateLivraison", in.DateLivraison, v)
	if in.Acompte < 0 {
		v["acompte"] = "must_be_positive"
	}
	if in.Acompte > in.MontantTotal {
		v["acompte"] = "montant_exceeds_reste"
	}
	if err := validate(v); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Client{}).Where("id = ?", in.ClientID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrClientIntrouvable
	}

	now := time.Now()
	reste, statutPaiement := ComputePaymentStatus(in.MontantTotal, in.Acompte)
	priorite := in.Priorite
	if priorite == "" {
		priorite = models.PrioriteNormale
	}
	cmd := models.Commande{
		ID:             uuid.NewString(),
		ClientID:       in.ClientID,
		Modele:         in.Modele,
		Photo:          in.Photo,
		Reference:      in.Reference,
		DateCommande:   now,
		DateLivraison:  in.DateLivraison,
		Statut:         models.StatutEnAttente,
		MontantTotal:   in.MontantTotal,
		Acompte:        in.Acompte,
		Reste:          reste,
		StatutPaiement: statutPaiement,
		Notes:          in.Notes,
		Priorite:       priorite,
		Couleur:        in.Couleur,
		Tissu:          in.Tissu,
		Doublure:       in.Doublure,
		Accessoires:    in.Accessoires,
		Instructions:   in.Instructions,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cmd).Error; err != nil {
			return err
		}
		if in.Acompte > 0 {
			methode := in.Methode
			if methode == "" {
				methode = models.MethodeEspeces
			}
			p := models.Paiement{
				ID:           uuid.NewString(),
				CommandeID:   cmd.ID,
				Montant:      in.Acompte,
				Type:         models.PaiementTypeAcompte,
				DatePaiement: now,
				Methode:      methode,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cmd, nil
}

func (s *CommandeService) Get(id string) (*models.Commande, error) {
	var cmd models.Commande
	if err := s.DB.First(&cmd, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommandeIntrouvable
		}
		return nil, err
	}
	return &cmd, nil
}

// List renvoie les commandes, éventuellement filtrées par client et/ou
// statut, les plus récentes d'abord.
func (s *CommandeService) List(clientID, statut string) ([]models.Commande, error) {
	q := s.DB.Order("date_commande desc")
	if clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var cmds []models.Commande
	if err := q.Find(&cmds).Error; err != nil {
		return nil, err
	}
	return cmds, nil
}

// UpdateStatut change le statut d'avancement (état libre, non dérivé).
func (s *CommandeService) UpdateStatut(id, statut string) (*models.Commande, error) {
	v := validation.Violations{}
	validation.OneOf("statut", statut, []string{
		models.StatutEnAttente, models.StatutEnCours, models.StatutRetouche,
		models.StatutLivree, models.StatutAnnulee,
	}, v)
	if err := validate(v); err != nil {
		return nil, err
	}
	cmd, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(cmd).Update("statut", statut).Error; err != nil {
		return nil, err
	}
	cmd.Statut = statut
	return cmd, nil
}

// Delete supprime la commande avec ses paiements et retouches, dans une
// seule transaction: pas d'orphelins dans l'export ni dans le balayage
// d'alertes.
func (s *CommandeService) Delete(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Commande{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCommandeIntrouvable
		}
		if err := tx.Delete(&models.Paiement{}, "commande_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Retouche{}, "commande_id = ?", id).Error
	})
}
