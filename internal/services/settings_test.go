package services

import (
	"testing"

	"github.com/diewo77/coutupro/internal/models"
)

func TestSettingsSingleton(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSettingsService(db)

	st, err := svc.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.ID != models.SettingsID || st.AtelierName == "" {
		t.Fatalf("defaults not applied: %+v", st)
	}

	// Lectures répétées: toujours le même enregistrement.
	if _, err := svc.Get(); err != nil {
		t.Fatalf("second get: %v", err)
	}
	var count int64
	if err := db.Model(&models.Settings{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected singleton, got %d rows", count)
	}
}

func TestSettingsUpdate(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSettingsService(db)

	st, err := svc.Update(UpdateSettingsInput{
		AtelierName:  "Atelier Awa Couture",
		PrimaryColor: "#9333ea",
		Telephone:    "+221770001122",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if st.AtelierName != "Atelier Awa Couture" || st.PrimaryColor != "#9333ea" {
		t.Fatalf("update not applied: %+v", st)
	}
	if st.ID != models.SettingsID {
		t.Fatalf("singleton id changed: %s", st.ID)
	}
}
