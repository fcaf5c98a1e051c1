// Package archive persists confirmed orders for later review. Live
// conversations never touch the database; only the final snapshot of a
// confirmed order is written here.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bruske/smashbot/internal/order"
)

// Record is a stored confirmed order.
type Record struct {
	ID         uuid.UUID `db:"id"`
	CustomerID int64     `db:"customer_id"`
	Items      []byte    `db:"items"`
	GrossCents int64     `db:"gross_cents"`
	FeeCents   int64     `db:"fee_cents"`
	Address    string    `db:"address"`
	Payment    string    `db:"payment"`
	ChangeFor  string    `db:"change_for"`
	PlacedAt   time.Time `db:"placed_at"`
}

type itemRow struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Repository stores and lists confirmed orders.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Save writes a confirmed order snapshot. The generated id is returned so
// callers can log it.
func (r *Repository) Save(ctx context.Context, o order.CompletedOrder) (uuid.UUID, error) {
	rows := make([]itemRow, 0, len(o.Items))
	for _, it := range o.Items {
		rows = append(rows, itemRow{ID: it.ID, Name: it.Name, PriceCents: it.PriceCents})
	}
	items, err := json.Marshal(rows)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode order items: %w", err)
	}

	id := uuid.New()
	const q = `
		INSERT INTO orders (id, customer_id, items, gross_cents, fee_cents, address, payment, change_for, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, q,
		id, o.CustomerID, items, o.Totals.Gross, o.Totals.Fee,
		o.Address, o.Payment, o.Change, o.PlacedAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// ListRecent returns the newest confirmed orders, most recent first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `
		SELECT id, customer_id, items, gross_cents, fee_cents, address, payment, change_for, placed_at
		FROM orders
		ORDER BY placed_at DESC
		LIMIT $1`
	var out []Record
	if err := r.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// ItemNames decodes the stored item list into display names.
func (rec Record) ItemNames() []string {
	var rows []itemRow
	if err := json.Unmarshal(rec.Items, &rows); err != nil {
		return nil
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names
}
