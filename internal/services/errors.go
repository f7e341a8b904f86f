package services

import (
	"errors"

	"github.com/diewo77/coutupro/internal/validation"
)

var (
	ErrClientIntrouvable   = errors.New("client_not_found")
	ErrCommandeIntrouvable = errors.New("commande_not_found")
	ErrMontantExcessif     = errors.New("montant_exceeds_reste")
	ErrCodeExistant        = errors.New("code_already_exists")
	ErrImportInvalide      = errors.New("import_invalid_payload")
)

// ValidationError carries field-level violations; rejected before any write.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string { return "validation_failed" }

func validate(v validation.Violations) error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}
