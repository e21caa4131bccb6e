package models

import "time"

// User & auth related models
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"unique;not null;index"`
	Password  string `gorm:"not null"` // hashé
	Nom       string `gorm:"index"`
	Prenom    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
