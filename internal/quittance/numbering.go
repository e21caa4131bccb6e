package quittance

import "github.com/diewo77/quittance-app/internal/models"

// Scope controls how quittance numbers are sequenced.
//
// L'historique numérote par appartement: en colocation, les quittances des
// différents colocataires consomment le même compteur. Certains bailleurs
// préfèrent une séquence par locataire; le scope rend ce choix explicite
// au lieu de le figer.
type Scope string

const (
	ScopeAppartement          Scope = "appartement"
	ScopeAppartementLocataire Scope = "appartement_locataire"
)

func (s Scope) Valid() bool {
	return s == ScopeAppartement || s == ScopeAppartementLocataire
}

// NextNumero returns the next sequential number for the given scope:
// 1 when no quittance matches, max+1 otherwise. Gaps left by deletions are
// never refilled.
func NextNumero(existing []models.Quittance, appartementID, locataireID string, scope Scope) int {
	max := 0
	for _, q := range existing {
		if q.AppartementID != appartementID {
			continue
		}
		if scope == ScopeAppartementLocataire && q.LocataireID != locataireID {
			continue
		}
		if q.Numero > max {
			max = q.Numero
		}
	}
	return max + 1
}

// FindExisting returns the quittance matching all four keys, or nil.
// A match means regeneration: its id and numero are reused so editing a
// quittance never mints a duplicate.
func FindExisting(existing []models.Quittance, appartementID, locataireID string, mois, annee int) *models.Quittance {
	for i := range existing {
		q := &existing[i]
		if q.AppartementID == appartementID && q.LocataireID == locataireID &&
			q.Mois == mois && q.Annee == annee {
			return q
		}
	}
	return nil
}
