package quittance

import (
	"github.com/shopspring/decimal"

	"github.com/diewo77/quittance-app/internal/models"
)

// Montants is the (loyer, charges) pair applicable to one locataire for
// one month. Amounts are exact decimals, two digit scale at boundaries.
type Montants struct {
	Loyer   decimal.Decimal
	Charges decimal.Decimal
}

func (m Montants) Total() decimal.Decimal { return m.Loyer.Add(m.Charges) }

// ResolveMontants computes the amounts owed by locataireID on app.
//
// Hors colocation les montants forfaitaires de l'appartement s'appliquent
// à tout locataire. En colocation la part individuelle est autoritaire;
// un locataire absent de la répartition obtient (0, 0) — cas dégénéré
// "part non renseignée" que l'appelant doit remonter, pas une erreur ici.
func ResolveMontants(app *models.Appartement, locataireID string) Montants {
	if app == nil {
		return Montants{}
	}
	if !app.IsColocation {
		return Montants{Loyer: app.Loyer, Charges: app.Charges}
	}
	if part, ok := app.LoyerParLocataire[locataireID]; ok {
		return Montants{Loyer: part.Loyer, Charges: part.Charges}
	}
	return Montants{}
}

// PartRenseignee reports whether a colocation split exists for the tenant.
// Always true outside colocation.
func PartRenseignee(app *models.Appartement, locataireID string) bool {
	if app == nil {
		return false
	}
	if !app.IsColocation {
		return true
	}
	_, ok := app.LoyerParLocataire[locataireID]
	return ok
}
