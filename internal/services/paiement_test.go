package services

import (
	"errors"
	"testing"
	"time"

	"github.com/diewo77/coutupro/internal/models"
)

// Scénario complet: Impayé -> Acompte -> Payé, avec reste et cumul tenus
// après chaque encaissement.
func TestRecordPaiementLifecycle(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	cmd := seedCommande(t, db, client.ID, 100000, 0, time.Now().AddDate(0, 0, 14), models.StatutEnAttente)
	if cmd.StatutPaiement != models.PaiementImpaye || cmd.Reste != 100000 {
		t.Fatalf("expected Impayé/100000 got %s/%v", cmd.StatutPaiement, cmd.Reste)
	}
	svc := NewPaiementService(db)

	if _, err := svc.Record(RecordPaiementInput{CommandeID: cmd.ID, Montant: 40000, Methode: models.MethodeEspeces}); err != nil {
		t.Fatalf("record 40000: %v", err)
	}
	var got models.Commande
	if err := db.First(&got, "id = ?", cmd.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Acompte != 40000 || got.Reste != 60000 || got.StatutPaiement != models.PaiementAcompte {
		t.Fatalf("after 40000: acompte=%v reste=%v statut=%s", got.Acompte, got.Reste, got.StatutPaiement)
	}

	if _, err := svc.Record(RecordPaiementInput{CommandeID: cmd.ID, Montant: 60000, Methode: models.MethodeMobile}); err != nil {
		t.Fatalf("record 60000: %v", err)
	}
	if err := db.First(&got, "id = ?", cmd.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Acompte != 100000 || got.Reste != 0 || got.StatutPaiement != models.PaiementPaye {
		t.Fatalf("after solde: acompte=%v reste=%v statut=%s", got.Acompte, got.Reste, got.StatutPaiement)
	}

	// acompte == somme des paiements enregistrés
	var sum float64
	if err := db.Model(&models.Paiement{}).Where("commande_id = ?", cmd.ID).Select("COALESCE(SUM(montant),0)").Scan(&sum).Error; err != nil {
		t.Fatalf("sum: %v", err)
	}
	if sum != got.Acompte {
		t.Fatalf("expected sum %v == acompte %v", sum, got.Acompte)
	}
}

func TestRecordPaiementTypeDerived(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	cmd := seedCommande(t, db, client.ID, 50000, 0, time.Now().AddDate(0, 0, 7), models.StatutEnCours)
	svc := NewPaiementService(db)

	p1, err := svc.Record(RecordPaiementInput{CommandeID: cmd.ID, Montant: 20000, Methode: models.MethodeCarte})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if p1.Type != models.PaiementTypeAcompte {
		t.Fatalf("expected type Acompte got %s", p1.Type)
	}
	p2, err := svc.Record(RecordPaiementInput{CommandeID: cmd.ID, Montant: 30000, Methode: models.MethodeCarte})
	if err != nil {
		t.Fatalf("record solde: %v", err)
	}
	if p2.Type != models.PaiementTypeSolde {
		t.Fatalf("expected type Solde got %s", p2.Type)
	}
}

func TestRecordPaiementRejectsExcess(t *testing.T) {
	db := setupTestDB(t, t.Name())
	client := seedClient(t, db)
	cmd := seedCommande(t, db, client.ID, 30000, 10000, time.Now().AddDate(0, 0, 7), models.StatutEnCours)
	svc := NewPaiementService(db)

	_, err := svc.Record(RecordPaiementInput{CommandeID: cmd.ID, Montant: 25000, Methode: models.MethodeEspeces})
	if !errors.Is(err, ErrMontantExcessif) {
		t.Fatalf("expected ErrMontantExcessif got %v", err)
	}
	// Aucune écriture partielle: ni paiement ni mise à jour du reste.
	var count int64
	if err := db.Model(&models.Paiement{}).Where("commande_id = ?", cmd.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no paiement rows got %d", count)
	}
	var got models.Commande
	if err := db.First(&got, "id = ?", cmd.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Acompte != 10000 || got.Reste != 20000 {
		t.Fatalf("commande mutated: acompte=%v reste=%v", got.Acompte, got.Reste)
	}
}

func TestRecordPaiementValidation(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPaiementService(db)

	_, err := svc.Record(RecordPaiementInput{CommandeID: "", Montant: 0, Methode: "billets de monopoly"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError got %v", err)
	}
	for _, field := range []string{"commandeId", "montant", "methode"} {
		if _, ok := verr.Violations[field]; !ok {
			t.Fatalf("expected violation on %s: %v", field, verr.Violations)
		}
	}

	_, err = svc.Record(RecordPaiementInput{CommandeID: "absent", Montant: 1000, Methode: models.MethodeEspeces})
	if !errors.Is(err, ErrCommandeIntrouvable) {
		t.Fatalf("expected ErrCommandeIntrouvable got %v", err)
	}
}
