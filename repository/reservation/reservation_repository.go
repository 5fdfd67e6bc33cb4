package reservation

import (
	"context"
	"database/sql"
	"time"

	"github.com/breightend/mykonos-inventory/constant"
	"github.com/breightend/mykonos-inventory/model"
	"github.com/jmoiron/sqlx"
)

// ReservationRepository owns stock_reservations. Status transitions go
// through UpdateStatusTx, which is guarded on the expected current status
// so a concurrent sweep and commit can never both win.
type ReservationRepository interface {
	InsertReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) (uint64, error)
	GetReservationForUpdateTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) (*model.Reservation, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, from, to constant.ReservationStatus) (bool, error)
	ExtendExpiryTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, expiresAt time.Time) (bool, error)
	SumActiveTx(ctx context.Context, tx *sqlx.Tx, variantID uint64) (int64, error)
	SumActive(ctx context.Context, variantID uint64) (int64, error)
	ListExpiredForUpdateTx(ctx context.Context, tx *sqlx.Tx, now time.Time) ([]model.Reservation, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) (uint64, error) {
	q := "INSERT INTO stock_reservations (sale_id, variant_id, quantity, reserved_at, expires_at, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())"
	result, err := tx.ExecContext(ctx, q, res.SaleID, res.VariantID, res.Quantity, res.ReservedAt, res.ExpiresAt, res.Status)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetReservationForUpdateTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) (*model.Reservation, error) {
	var res model.Reservation
	q := "SELECT id, sale_id, variant_id, quantity, reserved_at, expires_at, status FROM stock_reservations WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &res, q, reservationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, from, to constant.ReservationStatus) (bool, error) {
	result, err := tx.ExecContext(ctx, "UPDATE stock_reservations SET status = ? WHERE id = ? AND status = ?", to, reservationID, from)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExtendExpiryTx bumps the deadline of an active reservation. Guarded on
// status so a concurrent sweep cannot be overwritten.
func (r *SQL) ExtendExpiryTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, expiresAt time.Time) (bool, error) {
	result, err := tx.ExecContext(ctx, "UPDATE stock_reservations SET expires_at = ? WHERE id = ? AND status = ?", expiresAt, reservationID, constant.ReservationStatusActive)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) SumActiveTx(ctx context.Context, tx *sqlx.Tx, variantID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity), 0) FROM stock_reservations WHERE variant_id = ? AND status = ?"
	if err := tx.GetContext(ctx, &total, q, variantID, constant.ReservationStatusActive); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) SumActive(ctx context.Context, variantID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity), 0) FROM stock_reservations WHERE variant_id = ? AND status = ?"
	if err := r.conn.GetContext(ctx, &total, q, variantID, constant.ReservationStatusActive); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) ListExpiredForUpdateTx(ctx context.Context, tx *sqlx.Tx, now time.Time) ([]model.Reservation, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, sale_id, variant_id, quantity, reserved_at, expires_at, status FROM stock_reservations WHERE status = ? AND expires_at <= ? FOR UPDATE", constant.ReservationStatusActive, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.Reservation, 0)
	for rows.Next() {
		var rr model.Reservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, rows.Err()
}
