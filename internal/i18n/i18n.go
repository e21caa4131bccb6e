package i18n

import "strings"

// Français par défaut; l'anglais couvre les messages d'API.
var translations = map[string]map[string]string{
	"fr": {
		"required":           "Requis",
		"unauthorized":       "Non autorisé",
		"not_found":          "Introuvable",
		"invalid_json":       "JSON invalide",
		"validation_failed":  "Validation échouée",
		"selection_invalide": "Sélection incomplète: vérifiez l'appartement, le locataire et la répartition de colocation",
		"periode_invalide":   "Période invalide",
		"numero_conflit":     "Conflit de numérotation, veuillez réessayer",
		"dernier_bailleur":   "Impossible de supprimer le dernier bailleur",
		"bailleur_utilise":   "Ce bailleur possède encore des appartements",
		"locataire_utilise":  "Ce locataire est encore rattaché à un appartement",
		"siret_requis":       "Le SIRET est requis pour une société",
		"email_manquant":     "Le destinataire n'a pas d'adresse email",
		"telephone_manquant": "Le locataire n'a pas de numéro de téléphone",
		"quittance_envoyee":  "Quittance envoyée",
		"envoi_simule":       "Envoi simulé (configurez SMTP_HOST pour l'envoi réel)",
	},
	"en": {
		"required":           "Required",
		"unauthorized":       "Unauthorized",
		"not_found":          "Not found",
		"invalid_json":       "Invalid JSON",
		"validation_failed":  "Validation failed",
		"selection_invalide": "Incomplete selection: check unit, tenant and colocation split",
		"periode_invalide":   "Invalid period",
		"numero_conflit":     "Numbering conflict, please retry",
		"dernier_bailleur":   "Cannot delete the last landlord",
		"bailleur_utilise":   "This landlord still owns rental units",
		"locataire_utilise":  "This tenant is still attached to a rental unit",
		"siret_requis":       "SIRET is required for a company",
		"email_manquant":     "Recipient has no email address",
		"telephone_manquant": "Tenant has no phone number",
		"quittance_envoyee":  "Receipt sent",
		"envoi_simule":       "Simulated send (set SMTP_HOST for real delivery)",
	},
}

// T translates a code for the given language; falls back to French, then to
// the code itself so missing entries stay visible instead of blank.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if v, ok := m[code]; ok {
			return v
		}
	}
	if v, ok := translations["fr"][code]; ok {
		return v
	}
	return code
}

// DetectLanguage picks "fr" or "en" from an Accept-Language header.
// Default is French.
func DetectLanguage(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if strings.HasPrefix(h, "en") {
		return "en"
	}
	return "fr"
}
