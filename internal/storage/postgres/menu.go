package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
)

type menuRepository struct {
	storage *Storage
}

const menuColumns = `id, name, category, description, base_price::text, image_url, customizations, active, created_at, updated_at`

func scanMenuItem(row rowScanner) (model.MenuItem, error) {
	var (
		item           model.MenuItem
		price          string
		customizations []byte
	)
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Description, &price, &item.ImageURL,
		&customizations, &item.Active, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return model.MenuItem{}, err
	}

	if item.BasePrice, err = decimal.NewFromString(price); err != nil {
		return model.MenuItem{}, fmt.Errorf("menu item %d price: %w", item.ID, err)
	}
	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
			return model.MenuItem{}, fmt.Errorf("menu item %d customizations: %w", item.ID, err)
		}
	}
	return item, nil
}

func encodeCustomizations(c []model.Customization) ([]byte, error) {
	if c == nil {
		c = []model.Customization{}
	}
	encoded, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode customizations: %w", err)
	}
	return encoded, nil
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	const query = `INSERT INTO menu_items (name, category, description, base_price, image_url, customizations, active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`

	customizations, err := encodeCustomizations(item.Customizations)
	if err != nil {
		return err
	}

	return r.storage.pool.QueryRow(ctx, query,
		item.Name,
		item.Category,
		item.Description,
		item.BasePrice.StringFixed(2),
		item.ImageURL,
		customizations,
		item.Active,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	const query = `UPDATE menu_items
                   SET name=$1, category=$2, description=$3, base_price=$4, image_url=$5, customizations=$6, updated_at=NOW()
                   WHERE id=$7
                   RETURNING active, created_at, updated_at`

	customizations, err := encodeCustomizations(item.Customizations)
	if err != nil {
		return err
	}

	err = r.storage.pool.QueryRow(ctx, query,
		item.Name,
		item.Category,
		item.Description,
		item.BasePrice.StringFixed(2),
		item.ImageURL,
		customizations,
		item.ID,
	).Scan(&item.Active, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := scanMenuItem(r.storage.pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context, onlyActive bool) ([]model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY category, name`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) SetActive(ctx context.Context, id int64, active bool) error {
	const query = `UPDATE menu_items SET active=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM menu_items WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
