package cart

import (
	"context"

	"github.com/breightend/mykonos-inventory/model"
	"github.com/jmoiron/sqlx"
)

type CartRepository interface {
	GetCartLines(ctx context.Context, cartID uint64) ([]model.CartLine, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetCartLines(ctx context.Context, cartID uint64) ([]model.CartLine, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, variant_id, quantity FROM web_cart_items WHERE cart_id = ? ORDER BY created_at ASC, id ASC", cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.CartLine, 0)
	for rows.Next() {
		var line model.CartLine
		if err := rows.StructScan(&line); err != nil {
			return nil, err
		}
		res = append(res, line)
	}
	return res, rows.Err()
}
