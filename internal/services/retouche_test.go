package services

import (
	"errors"
	"testing"
	"time"

	"github.com/diewo77/coutupro/internal/models"
)

func TestCreateRetouche(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	cmd := seedCommande(t, db, client.ID, 40000, 40000, time.Now().AddDate(0, 0, 5), models.StatutRetouche)
	svc := NewRetoucheService(db)

	r, err := svc.Create(NewRetoucheInput{
		CommandeID:  cmd.ID,
		Description: "Reprendre l'ourlet",
		DatePrevue:  time.Now().AddDate(0, 0, 3),
		Cout:        2000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Statut != models.RetoucheEnAttente {
		t.Fatalf("expected En attente got %s", r.Statut)
	}

	_, err = svc.Create(NewRetoucheInput{CommandeID: "absent", Description: "x", DatePrevue: time.Now()})
	if !errors.Is(err, ErrCommandeIntrouvable) {
		t.Fatalf("expected ErrCommandeIntrouvable got %v", err)
	}

	var verr *ValidationError
	if _, err := svc.Create(NewRetoucheInput{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError got %v", err)
	}
}

func TestRetoucheStatutTransitions(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	cmd := seedCommande(t, db, client.ID, 40000, 40000, time.Now().AddDate(0, 0, 5), models.StatutRetouche)
	svc := NewRetoucheService(db)

	r, err := svc.Create(NewRetoucheInput{
		CommandeID: cmd.ID, Description: "Ajuster les manches", DatePrevue: time.Now().AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStatut(r.ID, models.RetoucheEnCours); err != nil {
		t.Fatalf("en cours: %v", err)
	}
	got, err := svc.UpdateStatut(r.ID, models.RetoucheTerminee)
	if err != nil || got.Statut != models.RetoucheTerminee {
		t.Fatalf("terminée: err=%v %+v", err, got)
	}
	if _, err := svc.UpdateStatut(r.ID, "Abandonnée"); err == nil {
		t.Fatalf("expected validation error for unknown statut")
	}
	if _, err := svc.UpdateStatut("absent", models.RetoucheEnCours); !errors.Is(err, ErrRetoucheIntrouvable) {
		t.Fatalf("expected ErrRetoucheIntrouvable got %v", err)
	}
}

func TestListRetouches(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	cmd := seedCommande(t, db, client.ID, 40000, 40000, time.Now().AddDate(0, 0, 5), models.StatutRetouche)
	svc := NewRetoucheService(db)

	if _, err := svc.Create(NewRetoucheInput{CommandeID: cmd.ID, Description: "A", DatePrevue: time.Now().AddDate(0, 0, 4)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	r2, err := svc.Create(NewRetoucheInput{CommandeID: cmd.ID, Description: "B", DatePrevue: time.Now().AddDate(0, 0, 1)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStatut(r2.ID, models.RetoucheTerminee); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := svc.List(cmd.ID, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 retouches err=%v got %d", err, len(all))
	}
	// Échéance la plus proche d'abord.
	if all[0].Description != "B" {
		t.Fatalf("wrong order: %+v", all)
	}
	attente, err := svc.List("", models.RetoucheEnAttente)
	if err != nil || len(attente) != 1 || attente[0].Description != "A" {
		t.Fatalf("filter statut failed: err=%v %+v", err, attente)
	}
}
