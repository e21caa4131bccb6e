package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/policy"
	"github.com/diewo77/quittance-app/internal/validation"
)

type BailleurService struct {
	DB   *gorm.DB
	Gate *policy.Gate
}

func NewBailleurService(db *gorm.DB, gate *policy.Gate) *BailleurService {
	return &BailleurService{DB: db, Gate: gate}
}

type BailleurInput struct {
	Nom       string `json:"nom"`
	Adresse   string `json:"adresse"`
	Type      string `json:"type"`
	SIRET     string `json:"siret"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

func (in *BailleurInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("nom", in.Nom, v)
	validation.Required("adresse", in.Adresse, v)
	if in.Type == "" {
		in.Type = models.BailleurPersonnePhysique
	}
	if in.Type != models.BailleurPersonnePhysique && in.Type != models.BailleurSociete {
		v["type"] = "invalid"
	}
	// Une société émet des quittances avec son SIRET: exigé dès la saisie.
	if in.Type == models.BailleurSociete {
		validation.Required("siret", in.SIRET, v)
		if strings.TrimSpace(in.SIRET) != "" {
			validation.SIRET("siret", in.SIRET, v)
		}
	}
	return v
}

func (s *BailleurService) Create(ctx context.Context, userID string, in BailleurInput) (models.Bailleur, validation.Violations, error) {
	if v := in.validate(); !v.Empty() {
		return models.Bailleur{}, v, nil
	}
	b := models.Bailleur{
		ID:     uuid.NewString(),
		UserID: userID,
		Nom:    strings.TrimSpace(in.Nom), Adresse: strings.TrimSpace(in.Adresse),
		Type: in.Type, SIRET: strings.ReplaceAll(in.SIRET, " ", ""),
		Email: strings.TrimSpace(in.Email), Telephone: strings.TrimSpace(in.Telephone),
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return models.Bailleur{}, nil, err
	}
	return b, nil, nil
}

func (s *BailleurService) Update(ctx context.Context, userID, id string, in BailleurInput) (models.Bailleur, validation.Violations, error) {
	var b models.Bailleur
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return models.Bailleur{}, nil, err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionUpdate, "bailleur", &b); err != nil {
		return models.Bailleur{}, nil, gorm.ErrRecordNotFound
	}
	if v := in.validate(); !v.Empty() {
		return models.Bailleur{}, v, nil
	}
	b.Nom = strings.TrimSpace(in.Nom)
	b.Adresse = strings.TrimSpace(in.Adresse)
	b.Type = in.Type
	b.SIRET = strings.ReplaceAll(in.SIRET, " ", "")
	b.Email = strings.TrimSpace(in.Email)
	b.Telephone = strings.TrimSpace(in.Telephone)
	if err := s.DB.WithContext(ctx).Save(&b).Error; err != nil {
		return models.Bailleur{}, nil, err
	}
	return b, nil, nil
}

func (s *BailleurService) List(ctx context.Context, userID string) ([]models.Bailleur, error) {
	var out []models.Bailleur
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("nom").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Delete refuses to remove the account's last bailleur, and any bailleur
// still referenced by an appartement.
func (s *BailleurService) Delete(ctx context.Context, userID, id string) error {
	var b models.Bailleur
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionDelete, "bailleur", &b); err != nil {
		return gorm.ErrRecordNotFound
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Bailleur{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count <= 1 {
		return ErrDernierBailleur
	}
	var used int64
	if err := s.DB.WithContext(ctx).Model(&models.Appartement{}).Where("bailleur_id = ?", id).Count(&used).Error; err != nil {
		return err
	}
	if used > 0 {
		return ErrBailleurUtilise
	}
	return s.DB.WithContext(ctx).Delete(&b).Error
}
