package service

import (
	"context"
	"errors"

	"github.com/guttosm/auctionpulse/internal/domain/models"
	"github.com/guttosm/auctionpulse/internal/storage"
)

// PreferenceService manages the per-user region/realm preference.
type PreferenceService interface {
	Get(ctx context.Context, userID int64) (*models.Preference, error)
	Create(ctx context.Context, userID int64, region, realm string) (*models.Preference, error)
	Update(ctx context.Context, userID int64, region, realm string) (*models.Preference, error)
}

type preferenceService struct {
	repo storage.PreferencesRepository
}

func NewPreferenceService(repo storage.PreferencesRepository) PreferenceService {
	return &preferenceService{repo: repo}
}

func (s *preferenceService) Get(ctx context.Context, userID int64) (*models.Preference, error) {
	p, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *preferenceService) Create(ctx context.Context, userID int64, region, realm string) (*models.Preference, error) {
	p, err := s.repo.Create(ctx, models.Preference{UserID: userID, CurrentRegion: region, CurrentRealm: realm})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, ErrAlreadyExists
	}
	return p, err
}

func (s *preferenceService) Update(ctx context.Context, userID int64, region, realm string) (*models.Preference, error) {
	p, err := s.repo.Update(ctx, models.Preference{UserID: userID, CurrentRegion: region, CurrentRealm: realm})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}
