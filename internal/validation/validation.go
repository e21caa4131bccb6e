package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegative(field string, val decimal.Decimal, v Violations) {
	if val.IsNegative() {
		v[field] = "must_not_be_negative"
	}
}

// SIRET: 14 chiffres. On ne vérifie pas la clé de Luhn, seulement la forme.
func SIRET(field, value string, v Violations) {
	s := strings.ReplaceAll(value, " ", "")
	if len(s) != 14 {
		v[field] = "invalid_siret"
		return
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			v[field] = "invalid_siret"
			return
		}
	}
}

func MonthIndex(field string, mois int, v Violations) {
	if mois < 0 || mois > 11 {
		v[field] = "out_of_range"
	}
}
