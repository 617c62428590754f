package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guttosm/auctionpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// PricelistsRepository persists pricelists together with their entries.
type PricelistsRepository interface {
	ListByUser(ctx context.Context, userID int64, region, realm string) ([]models.Pricelist, error)
	FindByID(ctx context.Context, id int64) (*models.Pricelist, error)
	Create(ctx context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error)
	Update(ctx context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error)
	Delete(ctx context.Context, id int64) error
}

type pricelistsRepository struct {
	db *sql.DB
}

func NewPricelistsRepository(db *sql.DB) PricelistsRepository {
	return &pricelistsRepository{db: db}
}

const pricelistColumns = `id, user_id, name, region, realm, created_at, updated_at`

// ListByUser returns the user's pricelists for one realm ordered by name, entries ordered by id.
func (r *pricelistsRepository) ListByUser(ctx context.Context, userID int64, region, realm string) ([]models.Pricelist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+pricelistColumns+`
		FROM pricelists
		WHERE user_id = $1 AND region = $2 AND realm = $3
		ORDER BY name
	`, userID, region, realm)
	if err != nil {
		return nil, fmt.Errorf("select pricelists: %w", err)
	}
	defer rows.Close()

	lists := []models.Pricelist{}
	index := map[int64]int{}
	var ids []int64
	for rows.Next() {
		var p models.Pricelist
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Region, &p.Realm, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pricelist: %w", err)
		}
		p.Entries = []models.PricelistEntry{}
		index[p.ID] = len(lists)
		ids = append(ids, p.ID)
		lists = append(lists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricelists: %w", err)
	}
	if len(ids) == 0 {
		return lists, nil
	}

	entries, err := r.entries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		i := index[e.PricelistID]
		lists[i].Entries = append(lists[i].Entries, e)
	}
	return lists, nil
}

// FindByID returns (nil, nil) when the pricelist does not exist.
func (r *pricelistsRepository) FindByID(ctx context.Context, id int64) (*models.Pricelist, error) {
	var p models.Pricelist
	err := r.db.QueryRowContext(ctx, `SELECT `+pricelistColumns+` FROM pricelists WHERE id = $1`, id).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Region, &p.Realm, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select pricelist: %w", err)
	}

	entries, err := r.entries(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	p.Entries = entries
	return &p, nil
}

// Create inserts the pricelist and its entries in one transaction.
func (r *pricelistsRepository) Create(ctx context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	err = tx.QueryRowContext(ctx, `
		INSERT INTO pricelists (user_id, name, region, realm)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Name, p.Region, p.Realm).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert pricelist: %w", err)
	}

	p.Entries, err = insertEntries(ctx, tx, p.ID, entries)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pricelist: %w", err)
	}
	return &p, nil
}

// Update renames the pricelist and replaces its entry set in one transaction.
//
// Entries carrying the id of an entry already in the pricelist are updated in place; all other
// entries are inserted. Existing entries absent from the new set are deleted.
// Returns (nil, nil) when the pricelist does not exist.
func (r *pricelistsRepository) Update(ctx context.Context, p models.Pricelist, entries []models.PricelistEntry) (*models.Pricelist, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	err = tx.QueryRowContext(ctx, `
		UPDATE pricelists
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+pricelistColumns,
		p.Name, p.ID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Region, &p.Realm, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update pricelist: %w", err)
	}

	existing, err := entryIDs(ctx, tx, p.ID)
	if err != nil {
		return nil, err
	}

	var fresh []models.PricelistEntry
	kept := []int64{}
	p.Entries = []models.PricelistEntry{}
	for _, e := range entries {
		if e.ID == 0 || !existing[e.ID] {
			fresh = append(fresh, e)
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE pricelist_entries
			SET item_id = $1, quantity_modifier = $2
			WHERE id = $3
		`, e.ItemID, e.QuantityModifier, e.ID); err != nil {
			return nil, fmt.Errorf("update pricelist entry: %w", err)
		}
		e.PricelistID = p.ID
		kept = append(kept, e.ID)
		p.Entries = append(p.Entries, e)
	}

	inserted, err := insertEntries(ctx, tx, p.ID, fresh)
	if err != nil {
		return nil, err
	}
	for _, e := range inserted {
		kept = append(kept, e.ID)
	}
	p.Entries = append(p.Entries, inserted...)

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM pricelist_entries
		WHERE pricelist_id = $1 AND NOT (id = ANY($2))
	`, p.ID, pq.Array(kept)); err != nil {
		return nil, fmt.Errorf("delete stale pricelist entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pricelist: %w", err)
	}
	return &p, nil
}

// Delete removes the pricelist; entries go with it through the foreign key cascade.
func (r *pricelistsRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pricelists WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pricelist: %w", err)
	}
	return nil
}

func (r *pricelistsRepository) entries(ctx context.Context, pricelistIDs []int64) ([]models.PricelistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pricelist_id, item_id, quantity_modifier
		FROM pricelist_entries
		WHERE pricelist_id = ANY($1)
		ORDER BY id
	`, pq.Array(pricelistIDs))
	if err != nil {
		return nil, fmt.Errorf("select pricelist entries: %w", err)
	}
	defer rows.Close()

	out := []models.PricelistEntry{}
	for rows.Next() {
		var e models.PricelistEntry
		if err := rows.Scan(&e.ID, &e.PricelistID, &e.ItemID, &e.QuantityModifier); err != nil {
			return nil, fmt.Errorf("scan pricelist entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricelist entries: %w", err)
	}
	return out, nil
}

func entryIDs(ctx context.Context, tx *sql.Tx, pricelistID int64) (map[int64]bool, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM pricelist_entries WHERE pricelist_id = $1`, pricelistID)
	if err != nil {
		return nil, fmt.Errorf("select pricelist entry ids: %w", err)
	}
	defer rows.Close()

	ids := map[int64]bool{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pricelist entry id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func insertEntries(ctx context.Context, tx *sql.Tx, pricelistID int64, entries []models.PricelistEntry) ([]models.PricelistEntry, error) {
	out := make([]models.PricelistEntry, 0, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pricelist_entries (pricelist_id, item_id, quantity_modifier)
		VALUES ($1, $2, $3)
		RETURNING id
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare pricelist entry insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		e.PricelistID = pricelistID
		if err := stmt.QueryRowContext(ctx, pricelistID, e.ItemID, e.QuantityModifier).Scan(&e.ID); err != nil {
			return nil, fmt.Errorf("insert pricelist entry: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
