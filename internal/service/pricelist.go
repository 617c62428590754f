package service

import (
	"context"

	"github.com/guttosm/auctionpulse/internal/domain/models"
	"github.com/guttosm/auctionpulse/internal/storage"
)

// PricelistService manages user-owned pricelists. Every mutation checks ownership first.
type PricelistService interface {
	List(ctx context.Context, userID int64, region, realm string) ([]models.Pricelist, error)
	Create(ctx context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error)
	Update(ctx context.Context, userID, id int64, name string, entries []models.PricelistEntry) (*models.Pricelist, error)
	Delete(ctx context.Context, userID, id int64) error
}

type pricelistService struct {
	repo storage.PricelistsRepository
}

func NewPricelistService(repo storage.PricelistsRepository) PricelistService {
	return &pricelistService{repo: repo}
}

func (s *pricelistService) List(ctx context.Context, userID int64, region, realm string) ([]models.Pricelist, error) {
	return s.repo.ListByUser(ctx, userID, region, realm)
}

func (s *pricelistService) Create(ctx context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error) {
	return s.repo.Create(ctx, p, entries)
}

func (s *pricelistService) Update(ctx context.Context, userID, id int64, name string, entries []models.PricelistEntry) (*models.Pricelist, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, models.Pricelist{ID: id, Name: name}, entries)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *pricelistService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// owned returns ErrNotFound for a missing pricelist and ErrForbidden for someone else's.
func (s *pricelistService) owned(ctx context.Context, userID, id int64) (*models.Pricelist, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	return p, nil
}
