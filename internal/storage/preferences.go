package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guttosm/auctionpulse/internal/domain/models"
)

// PreferencesRepository persists the single preference row each user may own.
type PreferencesRepository interface {
	FindByUser(ctx context.Context, userID int64) (*models.Preference, error)
	Create(ctx context.Context, p models.Preference) (*models.Preference, error)
	Update(ctx context.Context, p models.Preference) (*models.Preference, error)
}

type preferencesRepository struct {
	db *sql.DB
}

func NewPreferencesRepository(db *sql.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// FindByUser returns (nil, nil) when the user has no preference yet.
func (r *preferencesRepository) FindByUser(ctx context.Context, userID int64) (*models.Preference, error) {
	var p models.Preference
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, current_region, current_realm
		FROM preferences
		WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.CurrentRegion, &p.CurrentRealm)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select preference: %w", err)
	}
	return &p, nil
}

// Create yields ErrDuplicate when the user already has a preference.
func (r *preferencesRepository) Create(ctx context.Context, p models.Preference) (*models.Preference, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO preferences (user_id, current_region, current_realm)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.UserID, p.CurrentRegion, p.CurrentRealm).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert preference: %w", err)
	}
	return &p, nil
}

// Update returns (nil, nil) when there is no preference to update.
func (r *preferencesRepository) Update(ctx context.Context, p models.Preference) (*models.Preference, error) {
	err := r.db.QueryRowContext(ctx, `
		UPDATE preferences
		SET current_region = $1, current_realm = $2
		WHERE user_id = $3
		RETURNING id
	`, p.CurrentRegion, p.CurrentRealm, p.UserID).Scan(&p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update preference: %w", err)
	}
	return &p, nil
}
