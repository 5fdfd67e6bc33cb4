package model

import (
	"time"

	"github.com/breightend/mykonos-inventory/constant"
)

// Reservation is a time-bounded claim on a variant's available stock,
// tied to a sale attempt.
type Reservation struct {
	ID         uint64                     `db:"id" json:"id"`
	SaleID     uint64                     `db:"sale_id" json:"sale_id"`
	VariantID  uint64                     `db:"variant_id" json:"variant_id"`
	Quantity   int64                      `db:"quantity" json:"quantity"`
	ReservedAt time.Time                  `db:"reserved_at" json:"reserved_at"`
	ExpiresAt  time.Time                  `db:"expires_at" json:"expires_at"`
	Status     constant.ReservationStatus `db:"status" json:"status"`
}

type ReserveRequest struct {
	SaleID         uint64 `json:"sale_id" validate:"required"`
	VariantID      uint64 `json:"variant_id" validate:"required"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	TTLSeconds     int64  `json:"ttl_seconds" validate:"omitempty,gte=0"`
	IdempotencyKey string `json:"idempotency_key"`
}

type ExtendRequest struct {
	TTLSeconds int64 `json:"ttl_seconds" validate:"omitempty,gte=0"`
}

type ReserveResponse struct {
	ReservationID uint64    `json:"reservation_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}
