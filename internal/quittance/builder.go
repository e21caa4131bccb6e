package quittance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/quittance-app/internal/models"
)

// Policy carries the two numbering/issuance choices left open by the
// historical behavior (see DESIGN.md).
type Policy struct {
	Scope Scope
	// RefreshDateEmission: à la régénération, réémettre à la date du jour
	// au lieu de conserver la date d'émission d'origine.
	RefreshDateEmission bool
}

func DefaultPolicy() Policy {
	return Policy{Scope: ScopeAppartement, RefreshDateEmission: false}
}

// BuildInput is everything Build needs. Existing, when non nil, switches to
// the update path (id and numero reused). Numero is consulted only on the
// create path and is expected to come from NextNumero over fresh state.
type BuildInput struct {
	Appartement  *models.Appartement
	Locataire    *models.Locataire
	Mois         int // 0..11
	Annee        int
	DatePaiement time.Time
	LieuEmission string
	ModePaiement string
	Existing     *models.Quittance
	Numero       int
	Now          time.Time // horloge injectée; zéro => time.Now()
}

// Build assembles a complete Quittance value. Pure: no I/O, no side
// effects; persisting the result is the storage layer's job.
func Build(in BuildInput, p Policy) (models.Quittance, error) {
	if in.Appartement == nil || in.Locataire == nil {
		return models.Quittance{}, ErrSelectionInvalide
	}
	if in.Mois < 0 || in.Mois > 11 || in.Annee <= 0 {
		return models.Quittance{}, fmt.Errorf("%w: mois=%d annee=%d", ErrPeriodeInvalide, in.Mois, in.Annee)
	}
	if !in.Appartement.LocataireIDs.Contains(in.Locataire.ID) {
		return models.Quittance{}, fmt.Errorf("%w: locataire %s hors appartement", ErrSelectionInvalide, in.Locataire.ID)
	}
	if !PartRenseignee(in.Appartement, in.Locataire.ID) {
		return models.Quittance{}, fmt.Errorf("%w: part de colocation non renseignée", ErrSelectionInvalide)
	}
	if !models.ModePaiementValide(in.ModePaiement) {
		return models.Quittance{}, fmt.Errorf("%w: mode de paiement %q", ErrSelectionInvalide, in.ModePaiement)
	}

	montants := ResolveMontants(in.Appartement, in.Locataire.ID)

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	debut := time.Date(in.Annee, time.Month(in.Mois+1), 1, 0, 0, 0, 0, time.UTC)
	// Jour 0 du mois suivant = dernier jour du mois couvert (février
	// bissextile et décembre compris).
	fin := time.Date(in.Annee, time.Month(in.Mois+2), 0, 0, 0, 0, 0, time.UTC)

	q := models.Quittance{
		UserID:        in.Appartement.UserID,
		AppartementID: in.Appartement.ID,
		LocataireID:   in.Locataire.ID,
		Mois:          in.Mois,
		Annee:         in.Annee,
		DateDebut:     debut,
		DateFin:       fin,
		DatePaiement:  in.DatePaiement,
		DateEmission:  now,
		LieuEmission:  in.LieuEmission,
		ModePaiement:  in.ModePaiement,
		Loyer:         montants.Loyer,
		Charges:       montants.Charges,
		Total:         montants.Total(),
	}

	if in.Existing != nil {
		q.ID = in.Existing.ID
		q.Numero = in.Existing.Numero
		q.CreatedAt = in.Existing.CreatedAt
		if !p.RefreshDateEmission {
			q.DateEmission = in.Existing.DateEmission
		}
	} else {
		q.ID = uuid.NewString()
		q.Numero = in.Numero
	}
	return q, nil
}
