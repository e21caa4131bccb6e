package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// MontantsLocataire is the individual (loyer, charges) share of one
// co-tenant inside a colocation.
type MontantsLocataire struct {
	Loyer   decimal.Decimal `json:"loyer"`
	Charges decimal.Decimal `json:"charges"`
}

// LoyerParLocataire maps a locataire id to its share. Stored as a JSON
// column because the split is sparse and per-unit (see schema notes).
type LoyerParLocataire map[string]MontantsLocataire

func (m LoyerParLocataire) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *LoyerParLocataire) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("loyer_par_locataire: unsupported scan type")
	}
}

// IDList is a JSON array of entity ids (text column).
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("id_list: unsupported scan type")
	}
}

func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Appartement (rental unit). Loyer/Charges are the flat monthly amounts;
// when IsColocation is set, LoyerParLocataire is authoritative per tenant
// and the flat fields are not used for quittance computation.
type Appartement struct {
	ID                string            `gorm:"primaryKey;size:36"`
	UserID            string            `gorm:"size:36;not null;index"`
	BailleurID        string            `gorm:"size:36;not null;index"`
	Bailleur          Bailleur          `gorm:"foreignKey:BailleurID"`
	Adresse           string            `gorm:"not null"`
	Loyer             decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	Charges           decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	LocataireIDs      IDList            `gorm:"type:text"`
	IsColocation      bool              `gorm:"not null;default:false"`
	LoyerParLocataire LoyerParLocataire `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (a *Appartement) GetUserID() string { return a.UserID }

// AppartementLocataire records one tenant's occupancy window on a unit,
// with an optional rent override independent of the colocation map.
// Optional bookkeeping: a unit works without these rows.
type AppartementLocataire struct {
	ID            string          `gorm:"primaryKey;size:36"`
	AppartementID string          `gorm:"size:36;not null;index"`
	LocataireID   string          `gorm:"size:36;not null;index"`
	DateEntree    time.Time       `gorm:"not null"`
	DateSortie    *time.Time      // null tant que le locataire occupe le logement
	Loyer         decimal.Decimal `gorm:"type:decimal(10,2)"`
	Charges       decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
