package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/policy"
	"github.com/diewo77/quittance-app/internal/validation"
)

type AppartementService struct {
	DB   *gorm.DB
	Gate *policy.Gate
}

func NewAppartementService(db *gorm.DB, gate *policy.Gate) *AppartementService {
	return &AppartementService{DB: db, Gate: gate}
}

type AppartementInput struct {
	BailleurID        string                              `json:"bailleur_id"`
	Adresse           string                              `json:"adresse"`
	Loyer             decimal.Decimal                     `json:"loyer"`
	Charges           decimal.Decimal                     `json:"charges"`
	LocataireIDs      []string                            `json:"locataire_ids"`
	IsColocation      bool                                `json:"is_colocation"`
	LoyerParLocataire map[string]models.MontantsLocataire `json:"loyer_par_locataire"`
}

func (s *AppartementService) validate(ctx context.Context, userID string, in *AppartementInput) (validation.Violations, error) {
	v := validation.Violations{}
	validation.Required("adresse", in.Adresse, v)
	validation.Required("bailleur_id", in.BailleurID, v)
	validation.NonNegative("loyer", in.Loyer, v)
	validation.NonNegative("charges", in.Charges, v)

	if in.BailleurID != "" {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Bailleur{}).
			Where("id = ? AND user_id = ?", in.BailleurID, userID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			v["bailleur_id"] = "not_found"
		}
	}
	if len(in.LocataireIDs) > 0 {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Locataire{}).
			Where("id IN ? AND user_id = ?", in.LocataireIDs, userID).Count(&count).Error; err != nil {
			return nil, err
		}
		if int(count) != len(in.LocataireIDs) {
			v["locataire_ids"] = "not_found"
		}
	}
	if in.IsColocation {
		ids := models.IDList(in.LocataireIDs)
		for id, part := range in.LoyerParLocataire {
			if !ids.Contains(id) {
				v["loyer_par_locataire"] = "unknown_locataire"
				break
			}
			if part.Loyer.IsNegative() || part.Charges.IsNegative() {
				v["loyer_par_locataire"] = "must_not_be_negative"
				break
			}
		}
	} else if len(in.LoyerParLocataire) > 0 {
		v["loyer_par_locataire"] = "requires_colocation"
	}
	return v, nil
}

func (s *AppartementService) Create(ctx context.Context, userID string, in AppartementInput) (models.Appartement, validation.Violations, error) {
	v, err := s.validate(ctx, userID, &in)
	if err != nil {
		return models.Appartement{}, nil, err
	}
	if !v.Empty() {
		return models.Appartement{}, v, nil
	}
	a := models.Appartement{
		ID:                uuid.NewString(),
		UserID:            userID,
		BailleurID:        in.BailleurID,
		Adresse:           strings.TrimSpace(in.Adresse),
		Loyer:             in.Loyer,
		Charges:           in.Charges,
		LocataireIDs:      models.IDList(in.LocataireIDs),
		IsColocation:      in.IsColocation,
		LoyerParLocataire: models.LoyerParLocataire(in.LoyerParLocataire),
	}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		return models.Appartement{}, nil, err
	}
	return a, nil, nil
}

func (s *AppartementService) Update(ctx context.Context, userID, id string, in AppartementInput) (models.Appartement, validation.Violations, error) {
	var a models.Appartement
	if err := s.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return models.Appartement{}, nil, err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionUpdate, "appartement", &a); err != nil {
		return models.Appartement{}, nil, gorm.ErrRecordNotFound
	}
	v, err := s.validate(ctx, userID, &in)
	if err != nil {
		return models.Appartement{}, nil, err
	}
	if !v.Empty() {
		return models.Appartement{}, v, nil
	}
	a.BailleurID = in.BailleurID
	a.Adresse = strings.TrimSpace(in.Adresse)
	a.Loyer = in.Loyer
	a.Charges = in.Charges
	a.LocataireIDs = models.IDList(in.LocataireIDs)
	a.IsColocation = in.IsColocation
	a.LoyerParLocataire = models.LoyerParLocataire(in.LoyerParLocataire)
	if err := s.DB.WithContext(ctx).Save(&a).Error; err != nil {
		return models.Appartement{}, nil, err
	}
	return a, nil, nil
}

func (s *AppartementService) List(ctx context.Context, userID string) ([]models.Appartement, error) {
	var out []models.Appartement
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("adresse").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the appartement with its occupancy rows and quittances in
// one transaction. Quittance numbering of other units is unaffected.
func (s *AppartementService) Delete(ctx context.Context, userID, id string) error {
	var a models.Appartement
	if err := s.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionDelete, "appartement", &a); err != nil {
		return gorm.ErrRecordNotFound
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appartement_id = ?", id).Delete(&models.Quittance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("appartement_id = ?", id).Delete(&models.AppartementLocataire{}).Error; err != nil {
			return err
		}
		return tx.Delete(&a).Error
	})
}

// --- occupancy (appartement_locataires) ---

type OccupationInput struct {
	AppartementID string          `json:"appartement_id"`
	LocataireID   string          `json:"locataire_id"`
	DateEntree    time.Time       `json:"date_entree"`
	DateSortie    *time.Time      `json:"date_sortie"`
	Loyer         decimal.Decimal `json:"loyer"`
	Charges       decimal.Decimal `json:"charges"`
}

// Lier records an occupancy window and attaches the locataire to the unit's
// tenant list if not already present.
func (s *AppartementService) Lier(ctx context.Context, userID string, in OccupationInput) (models.AppartementLocataire, error) {
	var a models.Appartement
	if err := s.DB.WithContext(ctx).First(&a, "id = ? AND user_id = ?", in.AppartementID, userID).Error; err != nil {
		return models.AppartementLocataire{}, err
	}
	var l models.Locataire
	if err := s.DB.WithContext(ctx).First(&l, "id = ? AND user_id = ?", in.LocataireID, userID).Error; err != nil {
		return models.AppartementLocataire{}, err
	}
	if in.DateEntree.IsZero() {
		return models.AppartementLocataire{}, errors.New("date_entree required")
	}
	occ := models.AppartementLocataire{
		ID:            uuid.NewString(),
		AppartementID: a.ID,
		LocataireID:   l.ID,
		DateEntree:    in.DateEntree,
		DateSortie:    in.DateSortie,
		Loyer:         in.Loyer,
		Charges:       in.Charges,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&occ).Error; err != nil {
			return err
		}
		if !a.LocataireIDs.Contains(l.ID) {
			a.LocataireIDs = append(a.LocataireIDs, l.ID)
			return tx.Save(&a).Error
		}
		return nil
	})
	if err != nil {
		return models.AppartementLocataire{}, err
	}
	return occ, nil
}

func (s *AppartementService) Occupations(ctx context.Context, userID, appartementID string) ([]models.AppartementLocataire, error) {
	var a models.Appartement
	if err := s.DB.WithContext(ctx).First(&a, "id = ? AND user_id = ?", appartementID, userID).Error; err != nil {
		return nil, err
	}
	var out []models.AppartementLocataire
	if err := s.DB.WithContext(ctx).Where("appartement_id = ?", appartementID).
		Order("date_entree").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
