package ledger

import (
	"context"
	"database/sql"

	"github.com/breightend/mykonos-inventory/model"
	"github.com/jmoiron/sqlx"
)

// LedgerRepository owns web_variant_branch_assignment. Rows are unique on
// (variant_id, branch_id) and mutated only through these methods.
type LedgerRepository interface {
	UpsertAssignmentTx(ctx context.Context, tx *sqlx.Tx, variantID, branchID uint64, quantity int64) error
	GetAssignmentForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, branchID uint64) (*model.BranchAssignment, error)
	GetAssignmentsForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID uint64) ([]model.BranchAssignment, error)
	AddToAssignmentTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64, delta int64) error
	TotalAssigned(ctx context.Context, variantID uint64) (int64, error)
	PerBranch(ctx context.Context, variantID uint64) ([]model.BranchStock, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLedgerRepository(conn *sqlx.DB) LedgerRepository {
	return &SQL{conn: conn}
}

func (r *SQL) UpsertAssignmentTx(ctx context.Context, tx *sqlx.Tx, variantID, branchID uint64, quantity int64) error {
	q := `INSERT INTO web_variant_branch_assignment (variant_id, branch_id, assigned_quantity, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE assigned_quantity = VALUES(assigned_quantity), updated_at = NOW()`
	_, err := tx.ExecContext(ctx, q, variantID, branchID, quantity)
	return err
}

func (r *SQL) GetAssignmentForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, branchID uint64) (*model.BranchAssignment, error) {
	var a model.BranchAssignment
	q := "SELECT id, variant_id, branch_id, assigned_quantity FROM web_variant_branch_assignment WHERE variant_id = ? AND branch_id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &a, q, variantID, branchID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetAssignmentsForUpdateTx locks every assignment row of a variant,
// largest first. Reserve and commit both go through this lock so their
// availability checks serialize per variant.
func (r *SQL) GetAssignmentsForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID uint64) ([]model.BranchAssignment, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, variant_id, branch_id, assigned_quantity FROM web_variant_branch_assignment WHERE variant_id = ? ORDER BY assigned_quantity DESC, branch_id ASC FOR UPDATE", variantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.BranchAssignment, 0)
	for rows.Next() {
		var a model.BranchAssignment
		if err := rows.StructScan(&a); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *SQL) AddToAssignmentTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64, delta int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE web_variant_branch_assignment SET assigned_quantity = assigned_quantity + ?, updated_at = NOW() WHERE id = ?", delta, assignmentID)
	return err
}

func (r *SQL) TotalAssigned(ctx context.Context, variantID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(assigned_quantity), 0) FROM web_variant_branch_assignment WHERE variant_id = ?"
	if err := r.conn.GetContext(ctx, &total, q, variantID); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) PerBranch(ctx context.Context, variantID uint64) ([]model.BranchStock, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT branch_id, assigned_quantity FROM web_variant_branch_assignment WHERE variant_id = ? ORDER BY branch_id ASC", variantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.BranchStock, 0)
	for rows.Next() {
		var b model.BranchStock
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
