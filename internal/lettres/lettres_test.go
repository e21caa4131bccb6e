package lettres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnLettres(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{10, "dix"},
		{16, "seize"},
		{17, "dix-sept"},
		{20, "vingt"},
		{21, "vingt-et-un"},
		{31, "trente-et-un"},
		{45, "quarante-cinq"},
		{60, "soixante"},
		{61, "soixante-et-un"},
		{70, "soixante-dix"},
		{71, "soixante-et-onze"},
		{75, "soixante-quinze"},
		{79, "soixante-dix-neuf"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{90, "quatre-vingt-dix"},
		{91, "quatre-vingt-onze"},
		{99, "quatre-vingt-dix-neuf"},
		{100, "cent"},
		{101, "cent un"},
		{180, "cent quatre-vingts"},
		{200, "deux cents"},
		{201, "deux cent un"},
		{999, "neuf cent quatre-vingt-dix-neuf"},
		{1000, "mille"},
		{1001, "mille un"},
		{1300, "mille trois cents"},
		{1450, "mille quatre cent cinquante"},
		{2000, "deux mille"},
		{3000, "trois mille"},
		{80000, "quatre-vingt mille"},
		{200000, "deux cent mille"},
		{200180, "deux cent mille cent quatre-vingts"},
		{999999, "neuf cent quatre-vingt-dix-neuf mille neuf cent quatre-vingt-dix-neuf"},
	}
	for _, tc := range cases {
		got, err := EnLettres(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}
}

func TestEnLettresNegatif(t *testing.T) {
	got, err := EnLettres(-42)
	require.NoError(t, err)
	assert.Equal(t, "moins quarante-deux", got)
}

func TestEnLettresMagnitude(t *testing.T) {
	_, err := EnLettres(1000000)
	require.ErrorIs(t, err, ErrMagnitudeNonSupportee)
	_, err = EnLettres(-1000000)
	require.ErrorIs(t, err, ErrMagnitudeNonSupportee)
}

func TestMontantEnLettres(t *testing.T) {
	cases := []struct {
		montant string
		want    string
	}{
		{"1450.00", "mille quatre cent cinquante euros"},
		{"695.00", "six cent quatre-vingt-quinze euros"},
		{"10.10", "dix euros et dix centimes"},
		{"0.99", "zéro euros et quatre-vingt-dix-neuf centimes"},
		{"1234.56", "mille deux cent trente-quatre euros et cinquante-six centimes"},
	}
	for _, tc := range cases {
		got, err := MontantEnLettres(decimal.RequireFromString(tc.montant))
		require.NoError(t, err, "montant=%s", tc.montant)
		assert.Equal(t, tc.want, got, "montant=%s", tc.montant)
	}
}

func TestFormatMontant(t *testing.T) {
	assert.Equal(t, "1234,50 €", FormatMontant(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0,00 €", FormatMontant(decimal.Zero))
	assert.Equal(t, "695,00 €", FormatMontant(decimal.RequireFromString("695")))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/02/2025", FormatDate(d))
}

func TestNomMois(t *testing.T) {
	assert.Equal(t, "Janvier", NomMois(0))
	assert.Equal(t, "Décembre", NomMois(11))
	assert.Equal(t, "", NomMois(12))
	assert.Equal(t, "", NomMois(-1))
}
