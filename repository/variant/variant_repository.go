package variant

import (
	"context"
	"database/sql"

	"github.com/breightend/mykonos-inventory/model"
	"github.com/jmoiron/sqlx"
)

// VariantRepository reads the two catalog shapes the platform still
// carries: web_variants (current) and warehouse_stock_variants (legacy).
// A missing row is reported as (nil, nil), not an error, because carts
// may legitimately reference identifiers retired by migration.
type VariantRepository interface {
	GetWebVariant(ctx context.Context, variantID uint64) (*model.WebVariant, error)
	GetWebVariantByKey(ctx context.Context, productID, sizeID, colorID uint64) (*model.WebVariant, error)
	GetWarehouseVariant(ctx context.Context, variantID uint64) (*model.WarehouseVariant, error)
	RefreshDisplayedStockTx(ctx context.Context, tx *sqlx.Tx, variantID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewVariantRepository(conn *sqlx.DB) VariantRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetWebVariant(ctx context.Context, variantID uint64) (*model.WebVariant, error) {
	var v model.WebVariant
	q := "SELECT id, product_id, size_id, color_id, active, displayed_stock FROM web_variants WHERE id = ?"
	if err := r.conn.GetContext(ctx, &v, q, variantID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *SQL) GetWebVariantByKey(ctx context.Context, productID, sizeID, colorID uint64) (*model.WebVariant, error) {
	var v model.WebVariant
	q := "SELECT id, product_id, size_id, color_id, active, displayed_stock FROM web_variants WHERE product_id = ? AND size_id = ? AND color_id = ? AND active = 1"
	if err := r.conn.GetContext(ctx, &v, q, productID, sizeID, colorID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *SQL) GetWarehouseVariant(ctx context.Context, variantID uint64) (*model.WarehouseVariant, error) {
	var v model.WarehouseVariant
	q := "SELECT id, product_id, size_id, color_id, branch_id, quantity FROM warehouse_stock_variants WHERE id = ?"
	if err := r.conn.GetContext(ctx, &v, q, variantID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// RefreshDisplayedStockTx recomputes the storefront stock hint from the
// assignment ledger. Ran inside the same transaction as the ledger
// mutation so the hint never observes a half-applied change.
func (r *SQL) RefreshDisplayedStockTx(ctx context.Context, tx *sqlx.Tx, variantID uint64) error {
	q := `UPDATE web_variants
		SET displayed_stock = (
			SELECT COALESCE(SUM(assigned_quantity), 0)
			FROM web_variant_branch_assignment
			WHERE variant_id = ?
		)
		WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, variantID, variantID)
	return err
}
