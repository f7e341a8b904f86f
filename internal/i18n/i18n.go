package i18n

import "strings"

// Default language is French: the atelier UI and all source data are
// French-first, English is best effort.
const defaultLang = "fr"

var translations = map[string]map[string]string{
	"fr": {
		"required":               "Requis",
		"must_be_positive":       "Doit être positif",
		"out_of_range":           "Hors limites",
		"invalid_value":          "Valeur invalide",
		"invalid_date":           "Date invalide",
		"validation_failed":      "Validation échouée",
		"client_not_found":       "Client introuvable",
		"commande_not_found":     "Commande introuvable",
		"retouche_not_found":     "Retouche introuvable",
		"montant_exceeds_reste":  "Le montant dépasse le reste dû",
		"code_invalide":          "Code invalide",
		"code_already_exists":    "Ce code existe déjà",
		"import_invalid_payload": "Fichier d'import invalide",
		"livraison_urgente":      "Livraison urgente",
		"livraison_proche":       "Livraison proche",
		"paiement_en_attente":    "Paiement en attente",
		"retouche_en_attente":    "Retouche en attente",
	},
	"en": {
		"required":               "Required",
		"must_be_positive":       "Must be positive",
		"out_of_range":           "Out of range",
		"invalid_value":          "Invalid value",
		"invalid_date":           "Invalid date",
		"validation_failed":      "Validation failed",
		"client_not_found":       "Client not found",
		"commande_not_found":     "Order not found",
		"retouche_not_found":     "Alteration not found",
		"montant_exceeds_reste":  "Amount exceeds remaining balance",
		"code_invalide":          "Invalid code",
		"code_already_exists":    "This code already exists",
		"import_invalid_payload": "Invalid import file",
		"livraison_urgente":      "Urgent delivery",
		"livraison_proche":       "Upcoming delivery",
		"paiement_en_attente":    "Payment pending",
		"retouche_en_attente":    "Alteration pending",
	},
}

// DetectLanguage picks a supported language from an Accept-Language header,
// falling back to French.
func DetectLanguage(acceptLanguage string) string {
	s := strings.ToLower(strings.TrimSpace(acceptLanguage))
	if strings.HasPrefix(s, "en") {
		return "en"
	}
	return defaultLang
}

// T translates a message code. Unknown languages fall back to French;
// unknown codes fall back to the code itself.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if msg, ok := m[code]; ok {
			return msg
		}
	}
	if msg, ok := translations[defaultLang][code]; ok {
		return msg
	}
	return code
}
