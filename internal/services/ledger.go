package services

import (
	"time"

	"github.com/diewo77/coutupro/internal/models"
)

// Règles pures du grand livre: le couple (montant total, cumul versé)
// détermine entièrement reste et statut de paiement. Aucun état caché.

// ComputePaymentStatus calcule le reste dû et le statut de paiement.
// Un cumul supérieur au total n'est pas rejeté ici: le reste devient
// négatif et le statut résout à Payé (écart de saisie assumé, la
// validation amont du service de paiement borne le montant).
func ComputePaymentStatus(total, paidSoFar float64) (reste float64, statut string) {
	reste = total - paidSoFar
	switch {
	case paidSoFar == 0:
		statut = models.PaiementImpaye
	case reste <= 0:
		statut = models.PaiementPaye
	default:
		statut = models.PaiementAcompte
	}
	return reste, statut
}

// closedStatuts: statuts pour lesquels une échéance dépassée n'est plus
// un retard. Couvre les commandes (Livrée/Annulée) et les retouches
// (Terminée), la règle étant la même pour les deux.
var closedStatuts = map[string]bool{
	models.StatutLivree:     true,
	models.StatutAnnulee:    true,
	models.RetoucheTerminee: true,
}

// IsLate indique si l'échéance est dépassée pour un statut encore ouvert.
// Une date zéro vaut "non renseignée" et n'est jamais en retard.
func IsLate(dueDate time.Time, statut string, now time.Time) bool {
	if dueDate.IsZero() || closedStatuts[statut] {
		return false
	}
	return dueDate.Before(now)
}

// IsDueSoon indique si l'échéance tombe dans les horizonDays jours à venir
// (bornes incluses). Le balayage d'alertes livraison ne s'en sert pas: il
// retient tout ce qui est <= horizon, y compris les échéances déjà
// dépassées, qui doivent continuer d'alerter.
func IsDueSoon(dueDate, now time.Time, horizonDays int) bool {
	if dueDate.IsZero() {
		return false
	}
	limit := now.AddDate(0, 0, horizonDays)
	return !dueDate.Before(now) && !dueDate.After(limit)
}
