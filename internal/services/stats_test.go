package services

import (
	"testing"
	"time"

	"github.com/diewo77/coutupro/internal/models"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	now := time.Now()

	// Livrée ce mois: compte dans revenus totaux et du mois.
	seedCommande(t, db, client.ID, 80000, 80000, now.AddDate(0, 0, -1), models.StatutLivree)
	// En cours, en retard, impayée.
	seedCommande(t, db, client.ID, 120000, 0, now.AddDate(0, 0, -3), models.StatutEnCours)
	// En attente avec acompte, livraison à venir.
	seedCommande(t, db, client.ID, 50000, 20000, now.AddDate(0, 0, 10), models.StatutEnAttente)
	// Annulée: ni en cours ni en retard.
	seedCommande(t, db, client.ID, 30000, 30000, now.AddDate(0, 0, -5), models.StatutAnnulee)

	svc := NewStatsService(db)
	stats, err := svc.Dashboard(now)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TotalClients != 1 || stats.TotalCommandes != 4 {
		t.Fatalf("totaux: %+v", stats)
	}
	if stats.TotalRevenus != 80000 {
		t.Fatalf("expected revenus 80000 got %v", stats.TotalRevenus)
	}
	if stats.CommandesEnCours != 2 {
		t.Fatalf("expected 2 en cours got %d", stats.CommandesEnCours)
	}
	if stats.CommandesEnRetard != 1 {
		t.Fatalf("expected 1 en retard got %d", stats.CommandesEnRetard)
	}
	if stats.PaiementsEnAttente != 2 {
		t.Fatalf("expected 2 paiements en attente got %d", stats.PaiementsEnAttente)
	}
	if stats.CommandesDuMois == 0 || stats.RevenusDuMois != 80000 {
		t.Fatalf("stats du mois: %+v", stats)
	}
}

func TestDashboardCountsUnreadAlertsOnly(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	now := time.Now()
	cmd := seedCommande(t, db, client.ID, 120000, 0, now.AddDate(0, 1, 0), models.StatutEnCours)

	alerteSvc := NewAlerteService(db)
	if err := alerteSvc.Generate(now); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if err := alerteSvc.MarkAsRead("paiement-" + cmd.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	stats, err := NewStatsService(db).Dashboard(now)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.AlertesCount != 0 {
		t.Fatalf("expected 0 unread alerts got %d", stats.AlertesCount)
	}
}

func TestRapportMensuel(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)

	fev := time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local)
	mars := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)

	inMonth := seedCommande(t, db, client.ID, 60000, 60000, fev.AddDate(0, 0, 20), models.StatutLivree)
	db.Model(inMonth).Update("date_commande", fev)
	enCours := seedCommande(t, db, client.ID, 40000, 0, fev.AddDate(0, 1, 0), models.StatutEnCours)
	db.Model(enCours).Update("date_commande", fev.AddDate(0, 0, 3))
	outMonth := seedCommande(t, db, client.ID, 90000, 90000, mars.AddDate(0, 0, 10), models.StatutLivree)
	db.Model(outMonth).Update("date_commande", mars)

	rapport, err := NewStatsService(db).RapportMensuel(2026, time.February)
	if err != nil {
		t.Fatalf("rapport: %v", err)
	}
	if rapport.TotalCommandes != 2 || rapport.CommandesLivrees != 1 || rapport.CommandesEnCours != 1 {
		t.Fatalf("rapport commandes: %+v", rapport)
	}
	if rapport.TotalRevenus != 60000 {
		t.Fatalf("expected 60000 revenus got %v", rapport.TotalRevenus)
	}
	if rapport.Annee != 2026 {
		t.Fatalf("annee: %+v", rapport)
	}
}
