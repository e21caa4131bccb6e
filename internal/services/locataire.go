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

type LocataireService struct {
	DB   *gorm.DB
	Gate *policy.Gate
}

func NewLocataireService(db *gorm.DB, gate *policy.Gate) *LocataireService {
	return &LocataireService{DB: db, Gate: gate}
}

type LocataireInput struct {
	Nom       string `json:"nom"`
	Adresse   string `json:"adresse"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

func (in *LocataireInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("nom", in.Nom, v)
	validation.Required("adresse", in.Adresse, v)
	return v
}

func (s *LocataireService) Create(ctx context.Context, userID string, in LocataireInput) (models.Locataire, validation.Violations, error) {
	if v := in.validate(); !v.Empty() {
		return models.Locataire{}, v, nil
	}
	l := models.Locataire{
		ID:     uuid.NewString(),
		UserID: userID,
		Nom:    strings.TrimSpace(in.Nom), Adresse: strings.TrimSpace(in.Adresse),
		Email: strings.TrimSpace(in.Email), Telephone: strings.TrimSpace(in.Telephone),
	}
	if err := s.DB.WithContext(ctx).Create(&l).Error; err != nil {
		return models.Locataire{}, nil, err
	}
	return l, nil, nil
}

func (s *LocataireService) Update(ctx context.Context, userID, id string, in LocataireInput) (models.Locataire, validation.Violations, error) {
	var l models.Locataire
	if err := s.DB.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return models.Locataire{}, nil, err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionUpdate, "locataire", &l); err != nil {
		return models.Locataire{}, nil, gorm.ErrRecordNotFound
	}
	if v := in.validate(); !v.Empty() {
		return models.Locataire{}, v, nil
	}
	l.Nom = strings.TrimSpace(in.Nom)
	l.Adresse = strings.TrimSpace(in.Adresse)
	l.Email = strings.TrimSpace(in.Email)
	l.Telephone = strings.TrimSpace(in.Telephone)
	if err := s.DB.WithContext(ctx).Save(&l).Error; err != nil {
		return models.Locataire{}, nil, err
	}
	return l, nil, nil
}

func (s *LocataireService) List(ctx context.Context, userID string) ([]models.Locataire, error) {
	var out []models.Locataire
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("nom").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Delete refuses while the locataire is still attached to an appartement or
// has quittances; archives stay consultable.
func (s *LocataireService) Delete(ctx context.Context, userID, id string) error {
	var l models.Locataire
	if err := s.DB.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionDelete, "locataire", &l); err != nil {
		return gorm.ErrRecordNotFound
	}
	// locataire_ids is a JSON column: the per-account unit count is small,
	// scanning beats a brittle LIKE.
	var apps []models.Appartement
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		return err
	}
	for _, a := range apps {
		if a.LocataireIDs.Contains(id) {
			return ErrLocataireUtilise
		}
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Quittance{}).Where("locataire_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrLocataireUtilise
	}
	return s.DB.WithContext(ctx).Delete(&l).Error
}
