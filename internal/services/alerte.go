package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/i18n"
	"github.com/diewo77/coutupro/internal/models"
)

// Seuil au-delà duquel un reste dû passe l'alerte paiement en priorité haute.
const seuilResteUrgent = 50000 // FCFA

// Horizon des alertes livraison, en jours.
const horizonLivraisonJours = 7

type AlerteService struct{ DB *gorm.DB }

func NewAlerteService(db *gorm.DB) *AlerteService { return &AlerteService{DB: db} }

// Generate reconstruit la collection d'alertes depuis l'état courant des
// commandes et retouches. La collection est d'abord vidée puis re-dérivée:
// l'état lu/non-lu ne survit pas au balayage (comportement historique,
// épinglé par les tests). Les identifiants sont déterministes par fait
// source, la vérification d'existence n'empêche donc que le double insert
// au sein d'un même passage.
func (s *AlerteService) Generate(now time.Time) error {
	tomorrow := now.Add(24 * time.Hour)
	nextWeek := now.Add(horizonLivraisonJours * 24 * time.Hour)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Alerte{}).Error; err != nil {
			return fmt.Errorf("purge alertes: %w", err)
		}

		// 1. Livraisons proches
		var commandes []models.Commande
		if err := tx.Find(&commandes).Error; err != nil {
			return fmt.Errorf("lecture commandes: %w", err)
		}
		for _, cmd := range commandes {
			if cmd.DateLivraison.IsZero() || cmd.Statut == models.StatutLivree {
				continue
			}
			if cmd.DateLivraison.After(nextWeek) {
				continue
			}
			client := s.clientOf(tx, cmd.ClientID)
			urgent := !cmd.DateLivraison.After(tomorrow)
			titre := i18n.T("fr", "livraison_proche")
			priority := models.PriorityMedium
			if urgent {
				titre = i18n.T("fr", "livraison_urgente")
				priority = models.PriorityHigh
			}
			if err := s.insertIfAbsent(tx, models.Alerte{
				ID:           "livraison-" + cmd.ID,
				Type:         models.AlerteLivraison,
				Titre:        titre,
				Message:      fmt.Sprintf("Commande %s pour %s - %s", cmd.Modele, client, cmd.DateLivraison.Format("02/01/2006")),
				Priority:     priority,
				DateCreation: now,
				RelatedID:    cmd.ID,
			}); err != nil {
				return err
			}
		}

		// 2. Paiements incomplets
		for _, cmd := range commandes {
			if cmd.StatutPaiement != models.PaiementImpaye && cmd.StatutPaiement != models.PaiementAcompte {
				continue
			}
			client := s.clientOf(tx, cmd.ClientID)
			priority := models.PriorityMedium
			if cmd.Reste > seuilResteUrgent {
				priority = models.PriorityHigh
			}
			if err := s.insertIfAbsent(tx, models.Alerte{
				ID:           "paiement-" + cmd.ID,
				Type:         models.AlertePaiement,
				Titre:        i18n.T("fr", "paiement_en_attente"),
				Message:      fmt.Sprintf("%.0f FCFA restant pour %s", cmd.Reste, client),
				Priority:     priority,
				DateCreation: now,
				RelatedID:    cmd.ID,
			}); err != nil {
				return err
			}
		}

		// 3. Retouches en attente
		var retouches []models.Retouche
		if err := tx.Where("statut = ?", models.RetoucheEnAttente).Find(&retouches).Error; err != nil {
			return fmt.Errorf("lecture retouches: %w", err)
		}
		for _, r := range retouches {
			// Retouche orpheline (commande importée puis disparue): rien à
			// signaler.
			var cmd models.Commande
			if err := tx.First(&cmd, "id = ?", r.CommandeID).Error; err != nil {
				continue
			}
			client := s.clientOf(tx, cmd.ClientID)
			if err := s.insertIfAbsent(tx, models.Alerte{
				ID:           "retouche-" + r.ID,
				Type:         models.AlerteRetouche,
				Titre:        i18n.T("fr", "retouche_en_attente"),
				Message:      fmt.Sprintf("%s - %s", r.Description, client),
				Priority:     models.PriorityMedium,
				DateCreation: now,
				RelatedID:    r.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// clientOf renvoie "Prénom Nom", vide si le client a disparu.
func (s *AlerteService) clientOf(tx *gorm.DB, clientID string) string {
	var c models.Client
	if err := tx.First(&c, "id = ?", clientID).Error; err != nil {
		return ""
	}
	return c.Prenom + " " + c.Nom
}

func (s *AlerteService) insertIfAbsent(tx *gorm.DB, a models.Alerte) error {
	var count int64
	if err := tx.Model(&models.Alerte{}).Where("id = ?", a.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := tx.Create(&a).Error; err != nil {
		return fmt.Errorf("insertion alerte %s: %w", a.ID, err)
	}
	return nil
}

// List renvoie les alertes, les plus récentes d'abord.
func (s *AlerteService) List() ([]models.Alerte, error) {
	var alertes []models.Alerte
	if err := s.DB.Order("date_creation desc, id").Find(&alertes).Error; err != nil {
		return nil, err
	}
	return alertes, nil
}

// MarkAsRead passe une alerte en lue; action explicite de l'utilisateur,
// indépendante du balayage.
func (s *AlerteService) MarkAsRead(id string) error {
	res := s.DB.Model(&models.Alerte{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *AlerteService) MarkAllAsRead() error {
	return s.DB.Model(&models.Alerte{}).Where("is_read = ?", false).Update("is_read", true).Error
}

func (s *AlerteService) UnreadCount() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Alerte{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
