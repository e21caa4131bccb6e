// Package lettres formate les montants et dates selon les conventions
// françaises, dont la somme "en lettres" exigée sur les quittances.
package lettres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Mois names, index 0 = janvier (matches the 0-based Mois field).
var Mois = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// NomMois returns the display name for a 0-based month, or "" out of range.
func NomMois(mois int) string {
	if mois < 0 || mois > 11 {
		return ""
	}
	return Mois[mois]
}

// ErrMagnitudeNonSupportee: EnLettres couvre 0..999999; au-delà on refuse
// plutôt que de tronquer silencieusement.
var ErrMagnitudeNonSupportee = errors.New("magnitude_non_supportee")

var unites = [20]string{
	"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var dizaines = [10]string{
	"", "", "vingt", "trente", "quarante", "cinquante",
	"soixante", "soixante", "quatre-vingt", "quatre-vingt",
}

// EnLettres spells a cardinal number in French: "vingt-et-un",
// "quatre-vingts" (s final seulement en fin de nombre), "deux cents",
// "soixante-et-onze", "mille". Domain: -999999..999999.
func EnLettres(n int64) (string, error) {
	if n < 0 {
		s, err := EnLettres(-n)
		if err != nil {
			return "", err
		}
		return "moins " + s, nil
	}
	if n > 999999 {
		return "", fmt.Errorf("%w: %d", ErrMagnitudeNonSupportee, n)
	}
	if n == 0 {
		return "zéro", nil
	}
	if n < 1000 {
		return centaines(int(n)), nil
	}
	milliers := int(n / 1000)
	reste := int(n % 1000)
	var b strings.Builder
	if milliers == 1 {
		b.WriteString("mille")
	} else {
		m := centaines(milliers)
		// "quatre-vingts" et "deux cents" perdent leur s devant mille.
		if strings.HasSuffix(m, "vingts") || strings.HasSuffix(m, "cents") {
			m = strings.TrimSuffix(m, "s")
		}
		b.WriteString(m)
		b.WriteString(" mille")
	}
	if reste > 0 {
		b.WriteString(" ")
		b.WriteString(centaines(reste))
	}
	return b.String(), nil
}

// centaines spells 1..999.
func centaines(num int) string {
	if num == 0 {
		return ""
	}
	if num < 20 {
		return unites[num]
	}
	if num < 100 {
		diz := num / 10
		unite := num % 10
		// 70..79 et 90..99 se composent sur soixante/quatre-vingt + 10..19.
		if diz == 7 || diz == 9 {
			liaison := "-"
			if unite == 1 && diz != 9 {
				liaison = "-et-" // soixante-et-onze, mais quatre-vingt-onze
			}
			return dizaines[diz] + liaison + unites[10+unite]
		}
		if unite == 0 {
			if diz == 8 {
				return dizaines[diz] + "s" // quatre-vingts
			}
			return dizaines[diz]
		}
		if unite == 1 && diz != 8 {
			return dizaines[diz] + "-et-" + unites[unite]
		}
		return dizaines[diz] + "-" + unites[unite]
	}
	cent := num / 100
	reste := num % 100
	var s string
	if cent == 1 {
		s = "cent"
	} else {
		s = unites[cent] + " cent"
	}
	if reste == 0 && cent > 1 {
		return s + "s" // deux cents
	}
	if reste > 0 {
		s += " " + centaines(reste)
	}
	return s
}

// MontantEnLettres composes the full legal clause for a monetary total:
// "<euros> euros" plus " et <centimes> centimes" when cents are owed.
// Cents come from the exact decimal, so 10.10 yields exactly dix centimes.
func MontantEnLettres(total decimal.Decimal) (string, error) {
	cents := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	euros := cents / 100
	centimes := cents % 100
	s, err := EnLettres(euros)
	if err != nil {
		return "", err
	}
	s += " euros"
	if centimes > 0 {
		c, err := EnLettres(centimes)
		if err != nil {
			return "", err
		}
		s += " et " + c + " centimes"
	}
	return s, nil
}

// FormatMontant renders "1234,50 €": two fixed decimals, comma separator.
func FormatMontant(montant decimal.Decimal) string {
	return strings.Replace(montant.StringFixed(2), ".", ",", 1) + " €"
}

// FormatDate renders DD/MM/YYYY.
func FormatDate(date time.Time) string {
	return date.Format("02/01/2006")
}
