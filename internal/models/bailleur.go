package models

import "time"

// Types de bailleur
const (
	BailleurPersonnePhysique = "personne_physique"
	BailleurSociete          = "societe"
)

// Bailleur (landlord). Une société doit renseigner son SIRET.
type Bailleur struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null;index"` // propriétaire du compte
	Nom       string `gorm:"not null;index"`         // nom/prénom ou dénomination sociale
	Adresse   string `gorm:"not null"`               // domicile ou siège social
	Type      string `gorm:"not null"`               // personne_physique, societe
	SIRET     string `gorm:"size:14"`                // requis si Type=societe
	Email     string
	Telephone string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Bailleur) GetUserID() string { return b.UserID }

// EstSociete reports whether the bailleur is a company (SIRET mandatory).
func (b *Bailleur) EstSociete() bool { return b.Type == BailleurSociete }
