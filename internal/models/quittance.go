package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modes de paiement acceptés sur une quittance.
const (
	PaiementVirement    = "virement"
	PaiementCheque      = "cheque"
	PaiementEspeces     = "especes"
	PaiementPrelevement = "prelevement"
	PaiementAutre       = "autre"
)

// ModesPaiement lists the accepted values in display order.
var ModesPaiement = []string{
	PaiementVirement, PaiementCheque, PaiementEspeces, PaiementPrelevement, PaiementAutre,
}

func ModePaiementValide(mode string) bool {
	for _, m := range ModesPaiement {
		if m == mode {
			return true
		}
	}
	return false
}

// Quittance de loyer. Numero est séquentiel par appartement; la paire
// (appartement, locataire, mois, annee) est unique et pilote le
// create-or-update à la régénération.
type Quittance struct {
	ID            string          `gorm:"primaryKey;size:36"`
	UserID        string          `gorm:"size:36;not null;index"`
	Numero        int             `gorm:"not null;index:idx_quittance_numero,unique,priority:3"`
	AppartementID string          `gorm:"size:36;not null;index;index:idx_quittance_numero,priority:1;index:idx_quittance_periode,unique,priority:1"`
	Appartement   Appartement     `gorm:"foreignKey:AppartementID"`
	LocataireID   string          `gorm:"size:36;not null;index:idx_quittance_numero,priority:2;index:idx_quittance_periode,priority:2"`
	Locataire     Locataire       `gorm:"foreignKey:LocataireID"`
	Mois          int             `gorm:"not null;index:idx_quittance_periode,priority:3"` // 0 = janvier .. 11 = décembre
	Annee         int             `gorm:"not null;index:idx_quittance_periode,priority:4"`
	DateDebut     time.Time       `gorm:"not null"` // premier jour du mois couvert
	DateFin       time.Time       `gorm:"not null"` // dernier jour du mois couvert
	DatePaiement  time.Time       `gorm:"not null"`
	DateEmission  time.Time       `gorm:"not null"`
	LieuEmission  string          `gorm:"not null"`
	ModePaiement  string          `gorm:"not null"`
	Loyer         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Charges       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"` // = Loyer + Charges, jamais saisi
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Quittance) GetUserID() string { return q.UserID }
