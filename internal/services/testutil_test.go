package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Client{}, &models.Mesure{}, &models.MesureType{},
		&models.Commande{}, &models.Paiement{}, &models.Retouche{},
		&models.Alerte{}, &models.AccessCode{}, &models.User{},
		&models.Settings{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedClient(t *testing.T, db *gorm.DB) *models.Client {
	c := models.Client{
		ID:           uuid.NewString(),
		Nom:          "Diallo",
		Prenom:       "Awa",
		Telephone:    "+221770000000",
		DateCreation: time.Now(),
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return &c
}

func seedCommande(t *testing.T, db *gorm.DB, clientID string, total, acompte float64, livraison time.Time, statut string) *models.Commande {
	reste, statutPaiement := ComputePaymentStatus(total, acompte)
	cmd := models.Commande{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		Modele:         "Boubou brodé",
		DateCommande:   time.Now(),
		DateLivraison:  livraison,
		Statut:         statut,
		MontantTotal:   total,
		Acompte:        acompte,
		Reste:          reste,
		StatutPaiement: statutPaiement,
		Priorite:       models.PrioriteNormale,
	}
	if err := db.Create(&cmd).Error; err != nil {
		t.Fatalf("seed commande: %v", err)
	}
	return &cmd
}
