package models

import "time"

// Locataire (tenant). Indépendant du bailleur; peut être rattaché à
// plusieurs appartements.
type Locataire struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null;index"`
	Nom       string `gorm:"not null;index"`
	Adresse   string `gorm:"not null"`
	Email     string
	Telephone string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Locataire) GetUserID() string { return l.UserID }
