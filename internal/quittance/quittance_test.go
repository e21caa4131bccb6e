package quittance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/quittance-app/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func appartementSimple() *models.Appartement {
	return &models.Appartement{
		ID:           "app-1",
		UserID:       "user-1",
		BailleurID:   "bal-1",
		Adresse:      "12 rue de la Paix, 75002 Paris",
		Loyer:        dec("1300"),
		Charges:      dec("150"),
		LocataireIDs: models.IDList{"loc-1"},
	}
}

func appartementColocation() *models.Appartement {
	return &models.Appartement{
		ID:           "app-2",
		UserID:       "user-1",
		BailleurID:   "bal-1",
		Adresse:      "3 avenue des Gobelins, 75005 Paris",
		Loyer:        dec("1205"),
		Charges:      dec("190"),
		LocataireIDs: models.IDList{"loc-a", "loc-b", "loc-c"},
		IsColocation: true,
		LoyerParLocataire: models.LoyerParLocataire{
			"loc-a": {Loyer: dec("600"), Charges: dec("95")},
			"loc-b": {Loyer: dec("510"), Charges: dec("95")},
		},
	}
}

func TestResolveMontantsHorsColocation(t *testing.T) {
	app := appartementSimple()
	// Le montant forfaitaire vaut pour n'importe quel locataire demandé.
	for _, id := range []string{"loc-1", "loc-x"} {
		m := ResolveMontants(app, id)
		assert.True(t, m.Loyer.Equal(dec("1300")), "loyer pour %s", id)
		assert.True(t, m.Charges.Equal(dec("150")), "charges pour %s", id)
	}
}

func TestResolveMontantsColocation(t *testing.T) {
	app := appartementColocation()

	a := ResolveMontants(app, "loc-a")
	assert.True(t, a.Loyer.Equal(dec("600")))
	assert.True(t, a.Charges.Equal(dec("95")))
	assert.True(t, a.Total().Equal(dec("695")))

	b := ResolveMontants(app, "loc-b")
	assert.True(t, b.Total().Equal(dec("605")))

	// Part non renseignée: (0,0), signalé via PartRenseignee, pas une erreur.
	c := ResolveMontants(app, "loc-c")
	assert.True(t, c.Loyer.IsZero())
	assert.True(t, c.Charges.IsZero())
	assert.False(t, PartRenseignee(app, "loc-c"))
	assert.True(t, PartRenseignee(app, "loc-a"))
	assert.True(t, PartRenseignee(appartementSimple(), "loc-x"))
}

func TestNextNumero(t *testing.T) {
	assert.Equal(t, 1, NextNumero(nil, "app-1", "loc-1", ScopeAppartement))

	existing := []models.Quittance{
		{AppartementID: "app-1", LocataireID: "loc-a", Numero: 1},
		{AppartementID: "app-1", LocataireID: "loc-a", Numero: 2},
		{AppartementID: "app-1", LocataireID: "loc-b", Numero: 4},
		{AppartementID: "app-2", LocataireID: "loc-z", Numero: 9},
	}
	// max+1 sur l'appartement, jamais de comblement du trou au numéro 3.
	assert.Equal(t, 5, NextNumero(existing, "app-1", "loc-a", ScopeAppartement))
	// Scope par locataire: chaque colocataire a sa propre séquence.
	assert.Equal(t, 3, NextNumero(existing, "app-1", "loc-a", ScopeAppartementLocataire))
	assert.Equal(t, 5, NextNumero(existing, "app-1", "loc-b", ScopeAppartementLocataire))
	assert.Equal(t, 1, NextNumero(existing, "app-3", "loc-a", ScopeAppartement))
}

func TestFindExisting(t *testing.T) {
	existing := []models.Quittance{
		{ID: "q1", AppartementID: "app-1", LocataireID: "loc-a", Mois: 5, Annee: 2025, Numero: 1},
		{ID: "q2", AppartementID: "app-1", LocataireID: "loc-b", Mois: 5, Annee: 2025, Numero: 2},
	}
	q := FindExisting(existing, "app-1", "loc-b", 5, 2025)
	require.NotNil(t, q)
	assert.Equal(t, "q2", q.ID)

	assert.Nil(t, FindExisting(existing, "app-1", "loc-b", 6, 2025))
	assert.Nil(t, FindExisting(existing, "app-1", "loc-c", 5, 2025))
	assert.Nil(t, FindExisting(existing, "app-2", "loc-a", 5, 2025))
}

func buildInput(app *models.Appartement, loc *models.Locataire) BuildInput {
	return BuildInput{
		Appartement:  app,
		Locataire:    loc,
		Mois:         1, // février
		Annee:        2025,
		DatePaiement: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		LieuEmission: "Paris",
		ModePaiement: models.PaiementVirement,
		Numero:       1,
		Now:          time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildQuittanceSimple(t *testing.T) {
	app := appartementSimple()
	loc := &models.Locataire{ID: "loc-1", Nom: "Jean Martin"}

	q, err := Build(buildInput(app, loc), DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 1, q.Numero)
	assert.NotEmpty(t, q.ID)
	assert.True(t, q.Total.Equal(dec("1450")))
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), q.DateDebut)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), q.DateFin)
	assert.Equal(t, "user-1", q.UserID)
}

func TestBuildBornesDePeriode(t *testing.T) {
	app := appartementSimple()
	loc := &models.Locataire{ID: "loc-1"}
	cases := []struct {
		mois, annee int
		fin         time.Time
	}{
		{1, 2024, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)}, // bissextile
		{1, 2023, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{11, 2025, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}, // pas de bascule d'année
		{0, 2025, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		in := buildInput(app, loc)
		in.Mois = tc.mois
		in.Annee = tc.annee
		q, err := Build(in, DefaultPolicy())
		require.NoError(t, err, "mois=%d annee=%d", tc.mois, tc.annee)
		assert.Equal(t, time.Date(tc.annee, time.Month(tc.mois+1), 1, 0, 0, 0, 0, time.UTC), q.DateDebut)
		assert.Equal(t, tc.fin, q.DateFin, "mois=%d annee=%d", tc.mois, tc.annee)
	}
}

func TestBuildPeriodeInvalide(t *testing.T) {
	app := appartementSimple()
	loc := &models.Locataire{ID: "loc-1"}
	for _, tc := range []struct{ mois, annee int }{{12, 2025}, {-1, 2025}, {3, 0}, {3, -4}} {
		in := buildInput(app, loc)
		in.Mois = tc.mois
		in.Annee = tc.annee
		_, err := Build(in, DefaultPolicy())
		require.ErrorIs(t, err, ErrPeriodeInvalide, "mois=%d annee=%d", tc.mois, tc.annee)
	}
}

func TestBuildSelectionInvalide(t *testing.T) {
	app := appartementColocation()

	_, err := Build(BuildInput{}, DefaultPolicy())
	require.ErrorIs(t, err, ErrSelectionInvalide)

	// Locataire non rattaché à l'appartement.
	in := buildInput(app, &models.Locataire{ID: "loc-z"})
	_, err = Build(in, DefaultPolicy())
	require.ErrorIs(t, err, ErrSelectionInvalide)

	// Part de colocation absente: refus explicite, jamais de quittance à zéro.
	in = buildInput(app, &models.Locataire{ID: "loc-c"})
	_, err = Build(in, DefaultPolicy())
	require.ErrorIs(t, err, ErrSelectionInvalide)

	// Mode de paiement inconnu.
	in = buildInput(appartementSimple(), &models.Locataire{ID: "loc-1"})
	in.ModePaiement = "bitcoin"
	_, err = Build(in, DefaultPolicy())
	require.ErrorIs(t, err, ErrSelectionInvalide)
}

func TestBuildIdempotence(t *testing.T) {
	app := appartementSimple()
	loc := &models.Locataire{ID: "loc-1"}

	first, err := Build(buildInput(app, loc), DefaultPolicy())
	require.NoError(t, err)

	// Régénération: id et numero conservés, total recalculé.
	app.Loyer = dec("1350")
	in := buildInput(app, loc)
	in.Existing = &first
	in.Numero = 99 // ignoré sur le chemin update
	second, err := Build(in, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Numero, second.Numero)
	assert.True(t, second.Total.Equal(dec("1500")))

	third, err := Build(in, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, first.Numero, third.Numero)
}

func TestBuildDateEmissionPolicy(t *testing.T) {
	app := appartementSimple()
	loc := &models.Locataire{ID: "loc-1"}

	in := buildInput(app, loc)
	first, err := Build(in, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, in.Now, first.DateEmission)

	later := in.Now.AddDate(0, 0, 7)

	// Politique par défaut: la date d'émission d'origine est conservée.
	regen := buildInput(app, loc)
	regen.Existing = &first
	regen.Now = later
	stable, err := Build(regen, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, first.DateEmission, stable.DateEmission)

	// Politique refresh: réémission à la date du jour.
	refreshed, err := Build(regen, Policy{Scope: ScopeAppartement, RefreshDateEmission: true})
	require.NoError(t, err)
	assert.Equal(t, later, refreshed.DateEmission)
}

func TestScopeValid(t *testing.T) {
	assert.True(t, ScopeAppartement.Valid())
	assert.True(t, ScopeAppartementLocataire.Valid())
	assert.False(t, Scope("global").Valid())
}
