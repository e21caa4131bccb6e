package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("nom", "  ", v)
	Required("adresse", "Paris", v)
	if v["nom"] != "required" {
		t.Fatalf("expected nom required, got %v", v)
	}
	if _, ok := v["adresse"]; ok {
		t.Fatalf("adresse should pass")
	}
}

func TestNonNegative(t *testing.T) {
	v := Violations{}
	NonNegative("loyer", decimal.RequireFromString("-1"), v)
	NonNegative("charges", decimal.Zero, v)
	if v["loyer"] != "must_not_be_negative" {
		t.Fatalf("expected loyer violation, got %v", v)
	}
	if _, ok := v["charges"]; ok {
		t.Fatalf("zero should pass")
	}
}

func TestSIRET(t *testing.T) {
	cases := map[string]bool{
		"12345678901234":    true,
		"123 456 789 01234": true,
		"1234567890123":     false,
		"1234567890123a":    false,
		"123456789012345":   false,
	}
	for in, ok := range cases {
		v := Violations{}
		SIRET("siret", in, v)
		if ok && !v.Empty() {
			t.Fatalf("%q should pass, got %v", in, v)
		}
		if !ok && v.Empty() {
			t.Fatalf("%q should fail", in)
		}
	}
}

func TestMonthIndex(t *testing.T) {
	for _, m := range []int{0, 11} {
		v := Violations{}
		MonthIndex("mois", m, v)
		if !v.Empty() {
			t.Fatalf("%d should pass", m)
		}
	}
	for _, m := range []int{-1, 12} {
		v := Violations{}
		MonthIndex("mois", m, v)
		if v.Empty() {
			t.Fatalf("%d should fail", m)
		}
	}
}
