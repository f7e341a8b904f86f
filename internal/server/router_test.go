package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/services"
)

func setupRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Client{}, &models.Mesure{}, &models.MesureType{},
		&models.Commande{}, &models.Paiement{}, &models.Retouche{},
		&models.Alerte{}, &models.AccessCode{}, &models.User{}, &models.Settings{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, ""), db
}

func TestHealth(t *testing.T) {
	h, _ := setupRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	h, _ := setupRouter(t)
	for _, path := range []string{"/clients", "/commandes", "/alertes", "/settings", "/export"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", path, rec.Code)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	h, db := setupRouter(t)
	if _, err := services.NewAccessService(db, "").CreateCode("CLIENT42"); err != nil {
		t.Fatalf("create code: %v", err)
	}

	login := func(code string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]any{
			"code": code,
			"fingerprint": map[string]string{
				"screen": "1920x1080", "timezone": "Africa/Dakar",
				"language": "fr-FR", "platform": "Linux", "canvas": "aabbcc",
			},
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))
		return rec
	}

	if rec := login("INCONNU"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown code: expected 401 got %d", rec.Code)
	}

	rec := login("CLIENT42")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200 got %d (%s)", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie")
	}

	// Avec le cookie, les routes protégées répondent.
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200 with session got %d", rec2.Code)
	}

	// Le même code ne peut pas ouvrir un second appareil.
	body, _ := json.Marshal(map[string]any{
		"code": "CLIENT42",
		"fingerprint": map[string]string{
			"screen": "800x600", "timezone": "Europe/Paris",
			"language": "fr-FR", "platform": "Windows", "canvas": "ddeeff",
		},
	})
	rec3 := httptest.NewRecorder()
	h.ServeHTTP(rec3, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))
	if rec3.Code != http.StatusUnauthorized {
		t.Fatalf("second device: expected 401 got %d", rec3.Code)
	}
}

func TestSessionEndpoint(t *testing.T) {
	h, _ := setupRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var out map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["authenticated"] {
		t.Fatalf("expected unauthenticated without cookie")
	}
}
