package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/policy"
	"github.com/diewo77/quittance-app/internal/quittance"
)

// keyLocker hands out one mutex per key. Used to serialize quittance
// generation per appartement inside this process; the unique index on
// (appartement_id, locataire_id, numero) is the cross-process backstop.
type keyLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyLocker) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// QuittanceService owns generation, preview, listing and deletion of
// quittances for one account.
type QuittanceService struct {
	DB     *gorm.DB
	Gate   *policy.Gate
	Policy quittance.Policy

	locks keyLocker
}

func NewQuittanceService(db *gorm.DB, gate *policy.Gate, p quittance.Policy) *QuittanceService {
	return &QuittanceService{DB: db, Gate: gate, Policy: p}
}

// GenererInput is the user-facing request: the period is (Mois 0..11, Annee),
// amounts are always recomputed from the appartement.
type GenererInput struct {
	AppartementID string
	LocataireID   string
	Mois          int
	Annee         int
	DatePaiement  time.Time
	LieuEmission  string
	ModePaiement  string
}

// Generer creates the quittance for the requested period, or regenerates it
// (same id, same numero) when one already exists. Returns the stored
// quittance and whether it was newly created.
func (s *QuittanceService) Generer(ctx context.Context, userID string, in GenererInput) (models.Quittance, bool, error) {
	app, loc, err := s.loadSelection(ctx, userID, in.AppartementID, in.LocataireID)
	if err != nil {
		return models.Quittance{}, false, err
	}

	// Per-appartement serialization: two concurrent generations on the same
	// unit must not both read the same max numero.
	mu := s.locks.get(app.ID)
	mu.Lock()
	defer mu.Unlock()

	var out models.Quittance
	created := false
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Quittance
		if err := tx.Where("appartement_id = ?", app.ID).Find(&existing).Error; err != nil {
			return err
		}
		prev := quittance.FindExisting(existing, app.ID, loc.ID, in.Mois, in.Annee)
		numero := 0
		if prev == nil {
			numero = quittance.NextNumero(existing, app.ID, loc.ID, s.Policy.Scope)
			created = true
		}
		q, err := quittance.Build(quittance.BuildInput{
			Appartement:  app,
			Locataire:    loc,
			Mois:         in.Mois,
			Annee:        in.Annee,
			DatePaiement: in.DatePaiement,
			LieuEmission: in.LieuEmission,
			ModePaiement: in.ModePaiement,
			Existing:     prev,
			Numero:       numero,
		}, s.Policy)
		if err != nil {
			return err
		}
		if err := tx.Save(&q).Error; err != nil {
			return err
		}
		out = q
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Another writer (other process) took the numero first. The
			// caller can simply retry.
			return models.Quittance{}, false, quittance.ErrNumeroConflit
		}
		return models.Quittance{}, false, err
	}
	return out, created, nil
}

// Apercu computes the quittance exactly as Generer would, without writing
// anything. The numero shown is the one a create would mint right now.
func (s *QuittanceService) Apercu(ctx context.Context, userID string, in GenererInput) (models.Quittance, error) {
	app, loc, err := s.loadSelection(ctx, userID, in.AppartementID, in.LocataireID)
	if err != nil {
		return models.Quittance{}, err
	}
	var existing []models.Quittance
	if err := s.DB.WithContext(ctx).Where("appartement_id = ?", app.ID).Find(&existing).Error; err != nil {
		return models.Quittance{}, err
	}
	prev := quittance.FindExisting(existing, app.ID, loc.ID, in.Mois, in.Annee)
	numero := 0
	if prev == nil {
		numero = quittance.NextNumero(existing, app.ID, loc.ID, s.Policy.Scope)
	}
	return quittance.Build(quittance.BuildInput{
		Appartement:  app,
		Locataire:    loc,
		Mois:         in.Mois,
		Annee:        in.Annee,
		DatePaiement: in.DatePaiement,
		LieuEmission: in.LieuEmission,
		ModePaiement: in.ModePaiement,
		Existing:     prev,
		Numero:       numero,
	}, s.Policy)
}

// ListFilter narrows Lister; zero values mean "no filter".
type ListFilter struct {
	AppartementID string
	LocataireID   string
	Annee         int
}

func (s *QuittanceService) Lister(ctx context.Context, userID string, f ListFilter) ([]models.Quittance, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if f.AppartementID != "" {
		q = q.Where("appartement_id = ?", f.AppartementID)
	}
	if f.LocataireID != "" {
		q = q.Where("locataire_id = ?", f.LocataireID)
	}
	if f.Annee != 0 {
		q = q.Where("annee = ?", f.Annee)
	}
	var out []models.Quittance
	if err := q.Order("annee desc, mois desc, numero desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get loads one quittance with ownership enforced. Unauthorized access is
// reported as not-found so ids of other accounts cannot be probed.
func (s *QuittanceService) Get(ctx context.Context, userID, id string) (models.Quittance, error) {
	var q models.Quittance
	if err := s.DB.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return models.Quittance{}, err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionView, "quittance", &q); err != nil {
		return models.Quittance{}, gorm.ErrRecordNotFound
	}
	return q, nil
}

// Supprimer deletes one quittance. The freed numero is never reused.
func (s *QuittanceService) Supprimer(ctx context.Context, userID, id string) error {
	var q models.Quittance
	if err := s.DB.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return err
	}
	if err := s.Gate.Authorize(ctx, userID, policy.ActionDelete, "quittance", &q); err != nil {
		return gorm.ErrRecordNotFound
	}
	return s.DB.WithContext(ctx).Delete(&q).Error
}

func (s *QuittanceService) loadSelection(ctx context.Context, userID, appartementID, locataireID string) (*models.Appartement, *models.Locataire, error) {
	if appartementID == "" || locataireID == "" {
		return nil, nil, quittance.ErrSelectionInvalide
	}
	var app models.Appartement
	if err := s.DB.WithContext(ctx).First(&app, "id = ? AND user_id = ?", appartementID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, quittance.ErrSelectionInvalide
		}
		return nil, nil, err
	}
	var loc models.Locataire
	if err := s.DB.WithContext(ctx).First(&loc, "id = ? AND user_id = ?", locataireID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, quittance.ErrSelectionInvalide
		}
		return nil, nil, err
	}
	return &app, &loc, nil
}

// isUniqueViolation matches sqlite and postgres unique-index errors without
// depending on driver error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "23505")
}
