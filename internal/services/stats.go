package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
)

type StatsService struct{ DB *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{DB: db} }

// Dashboard agrège l'état courant. Parcours O(n) des commandes, assumé à
// l'échelle d'un atelier (quelques centaines d'enregistrements).
func (s *StatsService) Dashboard(now time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := s.DB.Model(&models.Client{}).Count(&stats.TotalClients).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Commande{}).Count(&stats.TotalCommandes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Alerte{}).Where("is_read = ?", false).Count(&stats.AlertesCount).Error; err != nil {
		return nil, err
	}

	var commandes []models.Commande
	if err := s.DB.Find(&commandes).Error; err != nil {
		return nil, err
	}
	moisDebut := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, cmd := range commandes {
		if cmd.Statut == models.StatutLivree {
			stats.TotalRevenus += cmd.MontantTotal
		}
		if cmd.Statut == models.StatutEnCours || cmd.Statut == models.StatutEnAttente {
			stats.CommandesEnCours++
		}
		if IsLate(cmd.DateLivraison, cmd.Statut, now) {
			stats.CommandesEnRetard++
		}
		if cmd.StatutPaiement == models.PaiementImpaye || cmd.StatutPaiement == models.PaiementAcompte {
			stats.PaiementsEnAttente++
		}
		if !cmd.DateCommande.Before(moisDebut) {
			stats.CommandesDuMois++
			if cmd.Statut == models.StatutLivree {
				stats.RevenusDuMois += cmd.MontantTotal
			}
		}
	}
	return stats, nil
}

// RapportMensuel résume un mois donné.
func (s *StatsService) RapportMensuel(annee int, mois time.Month) (*models.RapportMensuel, error) {
	debut := time.Date(annee, mois, 1, 0, 0, 0, 0, time.Local)
	fin := debut.AddDate(0, 1, 0)

	rapport := &models.RapportMensuel{
		Mois:  debut.Format("January"),
		Annee: annee,
	}

	var commandes []models.Commande
	if err := s.DB.Where("date_commande >= ? AND date_commande < ?", debut, fin).Find(&commandes).Error; err != nil {
		return nil, err
	}
	for _, cmd := range commandes {
		rapport.TotalCommandes++
		switch cmd.Statut {
		case models.StatutLivree:
			rapport.CommandesLivrees++
			rapport.TotalRevenus += cmd.MontantTotal
		case models.StatutEnCours, models.StatutEnAttente:
			rapport.CommandesEnCours++
		}
	}
	if err := s.DB.Model(&models.Client{}).
		Where("date_creation >= ? AND date_creation < ?", debut, fin).
		Count(&rapport.NouveauxClients).Error; err != nil {
		return nil, err
	}
	return rapport, nil
}
