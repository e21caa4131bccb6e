package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/models"
)

// Seed installs a demo account with one bailleur, two locataires and one
// colocation, so the app is usable right after a dev start. Idempotent.
func Seed(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("email = ?", "demo@quittances.local").First(&existing).Error; err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{ID: uuid.NewString(), Email: "demo@quittances.local", Password: string(hash), Prenom: "Demo", Nom: "Bailleur"}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	bailleur := models.Bailleur{
		ID: uuid.NewString(), UserID: user.ID,
		Nom: "Marie Dupont", Adresse: "8 rue des Lilas, 75011 Paris",
		Type: models.BailleurPersonnePhysique, Email: "marie@exemple.fr",
	}
	if err := db.Create(&bailleur).Error; err != nil {
		return err
	}
	locA := models.Locataire{ID: uuid.NewString(), UserID: user.ID, Nom: "Jean Martin", Adresse: "3 avenue des Gobelins, 75005 Paris"}
	locB := models.Locataire{ID: uuid.NewString(), UserID: user.ID, Nom: "Sophie Bernard", Adresse: "3 avenue des Gobelins, 75005 Paris"}
	if err := db.Create(&locA).Error; err != nil {
		return err
	}
	if err := db.Create(&locB).Error; err != nil {
		return err
	}
	app := models.Appartement{
		ID: uuid.NewString(), UserID: user.ID, BailleurID: bailleur.ID,
		Adresse:      "3 avenue des Gobelins, 75005 Paris",
		Loyer:        decimal.RequireFromString("1110"),
		Charges:      decimal.RequireFromString("190"),
		LocataireIDs: models.IDList{locA.ID, locB.ID},
		IsColocation: true,
		LoyerParLocataire: models.LoyerParLocataire{
			locA.ID: {Loyer: decimal.RequireFromString("600"), Charges: decimal.RequireFromString("95")},
			locB.ID: {Loyer: decimal.RequireFromString("510"), Charges: decimal.RequireFromString("95")},
		},
	}
	if err := db.Create(&app).Error; err != nil {
		return err
	}
	entree := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	occ := models.AppartementLocataire{
		ID: uuid.NewString(), AppartementID: app.ID, LocataireID: locA.ID, DateEntree: entree,
	}
	return db.Create(&occ).Error
}
