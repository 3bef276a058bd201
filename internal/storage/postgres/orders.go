package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, order_number, customer_name, customer_phone, items, items_detailed,
                      total_price::text, status, order_time, completed_time`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var (
		o        model.Order
		detailed []byte
		total    string
	)
	err := row.Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerPhone, &o.Items, &detailed,
		&total, &o.Status, &o.OrderTime, &o.CompletedAt)
	if err != nil {
		return model.Order{}, err
	}

	if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
		return model.Order{}, fmt.Errorf("order %d total: %w", o.ID, err)
	}
	if len(detailed) > 0 {
		if err := json.Unmarshal(detailed, &o.DetailedItems); err != nil {
			return model.Order{}, fmt.Errorf("order %d items: %w", o.ID, err)
		}
	}
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (order_number, customer_name, customer_phone, items, items_detailed, total_price, status, order_time)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id`

	items := order.DetailedItems
	if items == nil {
		items = []model.LineItem{}
	}
	detailed, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	err = r.storage.pool.QueryRow(ctx, query,
		order.Number,
		order.CustomerName,
		order.CustomerPhone,
		order.Items,
		detailed,
		order.TotalPrice.StringFixed(2),
		string(order.Status),
		order.OrderTime,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number=$1`, number)
}

func (r *orderRepository) getOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM orders WHERE order_number=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, number).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *orderRepository) ListByStatus(ctx context.Context, statuses []model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = ANY($1) ORDER BY order_time ASC`

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	rows, err := r.storage.pool.Query(ctx, query, values)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListDisplay(ctx context.Context, completedSince time.Time) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE status IN ('pending', 'in_progress')
                 OR (status = 'completed' AND completed_time >= $1)
              ORDER BY order_time ASC`

	rows, err := r.storage.pool.Query(ctx, query, completedSince)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListCompleted(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE status = 'completed'
              ORDER BY completed_time DESC
              LIMIT $1`

	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus, completedAt *time.Time) error {
	const updateQuery = `UPDATE orders SET status=$1, completed_time=$2 WHERE id=$3 AND status=$4`
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateQuery, string(to), completedAt, id, string(from))
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			return nil
		}

		var exists bool
		if err := tx.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domainErrors.ErrNotFound
		}
		return domainErrors.ErrStatusConflict
	})
}

func (r *orderRepository) CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM orders GROUP BY status`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.OrderStatus]int)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[model.OrderStatus(status)] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *orderRepository) OldestPendingTime(ctx context.Context) (*time.Time, error) {
	const query = `SELECT MIN(order_time) FROM orders WHERE status = 'pending'`
	var oldest *time.Time
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&oldest); err != nil {
		return nil, err
	}
	return oldest, nil
}
