package services

import (
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/validation"
)

// DefaultMasterCode est le code administrateur par défaut; surchargé par
// MASTER_CODE dans la configuration.
const DefaultMasterCode = "ADMIN2024"

// demoPrefix et demoBlacklist désignent les codes de démonstration à purger
// définitivement au démarrage; ils ne doivent jamais être validés.
const demoPrefix = "DEMO"

var demoBlacklist = []string{"TEST001"}

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var errCodeDejaUtilise = errors.New("code_deja_utilise")

// AccessService est le portier de l'application: un code secret à usage
// unique lié à une empreinte d'appareil tient lieu d'authentification.
type AccessService struct {
	DB         *gorm.DB
	MasterCode string
}

func NewAccessService(db *gorm.DB, masterCode string) *AccessService {
	if masterCode == "" {
		masterCode = DefaultMasterCode
	}
	return &AccessService{DB: db, MasterCode: masterCode}
}

// IsAuthenticated: une session existe pour cette empreinte. Les erreurs de
// lecture valent "non authentifié".
func (s *AccessService) IsAuthenticated(fingerprint string) bool {
	if fingerprint == "" {
		return false
	}
	var count int64
	if err := s.DB.Model(&models.User{}).Where("browser_fingerprint = ?", fingerprint).Count(&count).Error; err != nil {
		log.Printf("Erreur lecture session: %v", err)
		return false
	}
	return count > 0
}

// AuthenticateWithCode tente l'admission de l'appareil. Résultat booléen
// uniquement: l'appelant ne distingue pas "code inconnu" de "déjà utilisé"
// (pas de fuite de validité des codes).
//
// Un code non-admin est un jeton au porteur à usage unique: la première
// consommation le lie définitivement à une empreinte, toute présentation
// depuis un autre appareil échoue ensuite.
func (s *AccessService) AuthenticateWithCode(code, fingerprint string) bool {
	code = strings.TrimSpace(code)
	if code == "" || fingerprint == "" {
		return false
	}

	// Déjà authentifié: idempotent, le code présenté est ignoré.
	if s.IsAuthenticated(fingerprint) {
		return true
	}

	// Code maître: session créée, la collection AccessCode n'est jamais
	// mutée par ce chemin.
	if code == s.MasterCode {
		if err := s.createSession(s.DB, code, fingerprint); err != nil {
			log.Printf("Erreur création session admin: %v", err)
			return false
		}
		return true
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ac models.AccessCode
		if err := tx.First(&ac, "code = ?", code).Error; err != nil {
			return err
		}
		if ac.IsUsed {
			return errCodeDejaUtilise
		}
		now := time.Now()
		if err := tx.Model(&ac).Updates(map[string]any{
			"is_used": true,
			"used_by": fingerprint,
			"used_at": now,
		}).Error; err != nil {
			return err
		}
		return s.createSession(tx, code, fingerprint)
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, errCodeDejaUtilise) {
			log.Printf("Erreur authentification: %v", err)
		}
		return false
	}
	return true
}

func (s *AccessService) createSession(tx *gorm.DB, code, fingerprint string) error {
	return tx.Create(&models.User{
		ID:                 uuid.NewString(),
		Code:               code,
		UsedAt:             time.Now(),
		BrowserFingerprint: fingerprint,
	}).Error
}

// Logout supprime la session de l'empreinte. Le code consommé reste
// consommé.
func (s *AccessService) Logout(fingerprint string) error {
	return s.DB.Delete(&models.User{}, "browser_fingerprint = ?", fingerprint).Error
}

// CreateCode insère un code inutilisé; échoue si le code existe déjà.
// Opération réservée à l'administrateur.
func (s *AccessService) CreateCode(code string) (*models.AccessCode, error) {
	code = strings.TrimSpace(code)
	v := validation.Violations{}
	validation.Required("code", code, v)
	if err := validate(v); err != nil {
		return nil, err
	}
	var count int64
	if err := s.DB.Model(&models.AccessCode{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeExistant
	}
	ac := models.AccessCode{ID: uuid.NewString(), Code: code, CreatedAt: time.Now()}
	if err := s.DB.Create(&ac).Error; err != nil {
		return nil, err
	}
	return &ac, nil
}

// ListCodes renvoie tous les codes, les plus récents d'abord.
func (s *AccessService) ListCodes() ([]models.AccessCode, error) {
	var codes []models.AccessCode
	if err := s.DB.Order("created_at desc").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// GenerateRandomCode produit un code alphanumérique majuscule.
func GenerateRandomCode(length int) string {
	if length <= 0 {
		length = 8
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// EnsureAdminCode insère le code maître dans la collection s'il en est
// absent, pour qu'il apparaisse dans le listing d'administration.
func (s *AccessService) EnsureAdminCode() error {
	var count int64
	if err := s.DB.Model(&models.AccessCode{}).Where("code = ?", s.MasterCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.DB.Create(&models.AccessCode{ID: uuid.NewString(), Code: s.MasterCode, CreatedAt: time.Now()}).Error
}

// PurgeDemoCodes supprime définitivement les codes de démonstration et les
// sessions qui en sont issues. Sans objet si rien à purger (no-op).
func (s *AccessService) PurgeDemoCodes() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		targets := make([]string, 0, len(demoBlacklist)+4)
		var demoCodes []models.AccessCode
		if err := tx.Where("code LIKE ?", demoPrefix+"%").Find(&demoCodes).Error; err != nil {
			return err
		}
		for _, c := range demoCodes {
			targets = append(targets, c.Code)
		}
		targets = append(targets, demoBlacklist...)

		if err := tx.Delete(&models.AccessCode{}, "code IN ?", targets).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "code IN ?", targets).Error
	})
}
