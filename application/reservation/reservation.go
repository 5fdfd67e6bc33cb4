package reservation

import (
	"context"
	"time"

	"github.com/breightend/mykonos-inventory/cmd/config"
	"github.com/breightend/mykonos-inventory/constant"
	"github.com/breightend/mykonos-inventory/model"
	ledgerrepo "github.com/breightend/mykonos-inventory/repository/ledger"
	redisrepo "github.com/breightend/mykonos-inventory/repository/redis"
	reservationrepo "github.com/breightend/mykonos-inventory/repository/reservation"
	txrepo "github.com/breightend/mykonos-inventory/repository/tx"
	variantrepo "github.com/breightend/mykonos-inventory/repository/variant"
	"github.com/breightend/mykonos-inventory/thirdparty/rabbitmq"
	"github.com/breightend/mykonos-inventory/utils/errors"
	"github.com/breightend/mykonos-inventory/utils/logger"
	"go.uber.org/zap"
)

// ReservationApp drives the reservation state machine:
// active -> committed | released | expired, terminal states closed.
type ReservationApp interface {
	Reserve(ctx context.Context, req *model.ReserveRequest) (*model.ReserveResponse, error)
	Commit(ctx context.Context, reservationID uint64) error
	Release(ctx context.Context, reservationID uint64) error
	Extend(ctx context.Context, reservationID uint64, ttlSeconds int64) (time.Time, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	Available(ctx context.Context, variantID uint64) (int64, error)
}

type reservationAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	ledgerRepo      ledgerrepo.LedgerRepository
	reservationRepo reservationrepo.ReservationRepository
	variantRepo     variantrepo.VariantRepository
	redisRepo       redisrepo.Repository
	publisher       *rabbitmq.Publisher
}

func NewReservationApp(cfg *config.Config, txRepo txrepo.TxRepository, ledgerRepo ledgerrepo.LedgerRepository, reservationRepo reservationrepo.ReservationRepository, variantRepo variantrepo.VariantRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) ReservationApp {
	return &reservationAppImpl{
		config:          cfg,
		txRepo:          txRepo,
		ledgerRepo:      ledgerRepo,
		reservationRepo: reservationRepo,
		variantRepo:     variantRepo,
		redisRepo:       redisRepo,
		publisher:       publisher,
	}
}

// Reserve checks availability and creates the active hold in one
// transaction. The assignment rows are locked FOR UPDATE first, so two
// concurrent reserves on the same variant serialize and cannot jointly
// oversell.
func (s *reservationAppImpl) Reserve(ctx context.Context, req *model.ReserveRequest) (*model.ReserveResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	if req.IdempotencyKey != "" && s.redisRepo != nil {
		ok, err := s.redisRepo.SetIdempotency(ctx, req.IdempotencyKey)
		if err != nil {
			logger.Warn("[Reserve] idempotency check failed", zap.String("error", err.Error()))
		} else if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	ttl := s.config.Reservation.DefaultTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Lock the variant's assignment rows; this is the per-variant
	// serialization point shared with Commit and Adjust.
	assignments, err := s.ledgerRepo.GetAssignmentsForUpdateTx(ctx, tx, req.VariantID)
	if err != nil {
		logger.Error("[Reserve] lock assignments failed", zap.Uint64("variant_id", req.VariantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var totalAssigned int64
	for _, a := range assignments {
		totalAssigned += a.AssignedQuantity
	}

	activeHeld, err := s.reservationRepo.SumActiveTx(ctx, tx, req.VariantID)
	if err != nil {
		logger.Error("[Reserve] sum active reservations failed", zap.Uint64("variant_id", req.VariantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	available := totalAssigned - activeHeld
	if req.Quantity > available {
		logger.Info("[Reserve] insufficient stock",
			zap.Uint64("variant_id", req.VariantID),
			zap.Int64("requested", req.Quantity),
			zap.Int64("available", available))
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	reservationID, err := s.reservationRepo.InsertReservationTx(ctx, tx, &model.Reservation{
		SaleID:     req.SaleID,
		VariantID:  req.VariantID,
		Quantity:   req.Quantity,
		ReservedAt: now,
		ExpiresAt:  expiresAt,
		Status:     constant.ReservationStatusActive,
	})
	if err != nil {
		logger.Error("[Reserve] insert reservation failed", zap.Uint64("variant_id", req.VariantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Schedule the delayed expiration message; the sweeper ticker is the
	// fallback when the broker is down.
	if s.publisher != nil {
		msg := rabbitmq.ReservationExpirationMessage{
			ReservationID: reservationID,
			VariantID:     req.VariantID,
			ExpiresAt:     expiresAt,
		}
		if err := s.publisher.PublishReservationExpiration(msg); err != nil {
			logger.Error("[Reserve] publish expiration failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		}
	}

	return &model.ReserveResponse{
		ReservationID: reservationID,
		ExpiresAt:     expiresAt,
	}, nil
}

// Commit permanently decrements assigned stock and flips the reservation
// to committed inside a single transaction, so a crash can never leave
// stock double-counted.
func (s *reservationAppImpl) Commit(ctx context.Context, reservationID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Commit] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	res, err := s.reservationRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[Commit] lock reservation failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if res == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if res.Status != constant.ReservationStatusActive {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if time.Now().After(res.ExpiresAt) {
		// Leave it active; the sweep owns the expired transition.
		return errors.SetCustomError(constant.ErrExpired)
	}

	// Reservations are variant-scoped, not branch-scoped: drain branches
	// largest-available-first, deterministically.
	assignments, err := s.ledgerRepo.GetAssignmentsForUpdateTx(ctx, tx, res.VariantID)
	if err != nil {
		logger.Error("[Commit] lock assignments failed", zap.Uint64("variant_id", res.VariantID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	remaining := res.Quantity
	for _, a := range assignments {
		if remaining <= 0 {
			break
		}
		if a.AssignedQuantity <= 0 {
			continue
		}
		deduct := a.AssignedQuantity
		if deduct > remaining {
			deduct = remaining
		}
		if err := s.ledgerRepo.AddToAssignmentTx(ctx, tx, a.ID, -deduct); err != nil {
			logger.Error("[Commit] decrement assignment failed", zap.Uint64("assignment_id", a.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		remaining -= deduct
	}
	if remaining > 0 {
		// Active holds should never exceed assigned stock; refuse rather
		// than drive the ledger negative.
		logger.Error("[Commit] assigned stock below reservation",
			zap.Uint64("reservation_id", reservationID),
			zap.Uint64("variant_id", res.VariantID),
			zap.Int64("uncovered", remaining))
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}

	ok, err := s.reservationRepo.UpdateStatusTx(ctx, tx, reservationID, constant.ReservationStatusActive, constant.ReservationStatusCommitted)
	if err != nil {
		logger.Error("[Commit] update status failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.variantRepo.RefreshDisplayedStockTx(ctx, tx, res.VariantID); err != nil {
		logger.Error("[Commit] refresh displayed stock failed", zap.Uint64("variant_id", res.VariantID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Commit] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.refreshStockHint(ctx, res.VariantID)
	return nil
}

// Release frees an active hold. Stock was never decremented, only
// excluded from availability, so no ledger mutation happens here.
func (s *reservationAppImpl) Release(ctx context.Context, reservationID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Release] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	res, err := s.reservationRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[Release] lock reservation failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if res == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if res.Status != constant.ReservationStatusActive {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	ok, err := s.reservationRepo.UpdateStatusTx(ctx, tx, reservationID, constant.ReservationStatusActive, constant.ReservationStatusReleased)
	if err != nil {
		logger.Error("[Release] update status failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Release] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// Extend pushes back the deadline of an active hold, for checkouts that
// legitimately take longer (e.g. a payment retry). A hold that already
// lapsed cannot be revived; the sweep owns it.
func (s *reservationAppImpl) Extend(ctx context.Context, reservationID uint64, ttlSeconds int64) (time.Time, error) {
	ttl := s.config.Reservation.DefaultTTL
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Extend] begin tx failed", zap.String("error", err.Error()))
		return time.Time{}, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	res, err := s.reservationRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[Extend] lock reservation failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		return time.Time{}, errors.SetCustomError(constant.ErrInternal)
	}
	if res == nil {
		return time.Time{}, errors.SetCustomError(constant.ErrNotFound)
	}
	if res.Status != constant.ReservationStatusActive {
		return time.Time{}, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if time.Now().After(res.ExpiresAt) {
		return time.Time{}, errors.SetCustomError(constant.ErrExpired)
	}

	expiresAt := time.Now().Add(ttl)
	ok, err := s.reservationRepo.ExtendExpiryTx(ctx, tx, reservationID, expiresAt)
	if err != nil {
		logger.Error("[Extend] update expiry failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		return time.Time{}, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return time.Time{}, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Extend] commit tx failed", zap.String("error", err.Error()))
		return time.Time{}, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// The earlier delayed message will fire before the new deadline and
	// trigger a harmless sweep; this one covers the extension.
	if s.publisher != nil {
		msg := rabbitmq.ReservationExpirationMessage{
			ReservationID: reservationID,
			VariantID:     res.VariantID,
			ExpiresAt:     expiresAt,
		}
		if err := s.publisher.PublishReservationExpiration(msg); err != nil {
			logger.Error("[Extend] publish expiration failed", zap.Uint64("reservation_id", reservationID), zap.String("error", err.Error()))
		}
	}

	return expiresAt, nil
}

// SweepExpired is the sole mechanism that recovers stock held by
// abandoned checkouts. Idempotent: an already-expired reservation no
// longer matches the active filter.
func (s *reservationAppImpl) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SweepExpired] begin tx failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	expired, err := s.reservationRepo.ListExpiredForUpdateTx(ctx, tx, now)
	if err != nil {
		logger.Error("[SweepExpired] list expired failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	swept := 0
	for _, res := range expired {
		ok, err := s.reservationRepo.UpdateStatusTx(ctx, tx, res.ID, constant.ReservationStatusActive, constant.ReservationStatusExpired)
		if err != nil {
			logger.Error("[SweepExpired] update status failed", zap.Uint64("reservation_id", res.ID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		if ok {
			swept++
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SweepExpired] commit tx failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if swept > 0 {
		logger.Info("[SweepExpired] reservations expired", zap.Int("count", swept))
	}
	return swept, nil
}

// Available is the single authoritative availability computation:
// total assigned across branches minus active holds.
func (s *reservationAppImpl) Available(ctx context.Context, variantID uint64) (int64, error) {
	total, err := s.ledgerRepo.TotalAssigned(ctx, variantID)
	if err != nil {
		logger.Error("[Available] sum assignments failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	held, err := s.reservationRepo.SumActive(ctx, variantID)
	if err != nil {
		logger.Error("[Available] sum active reservations failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return total - held, nil
}

func (s *reservationAppImpl) refreshStockHint(ctx context.Context, variantID uint64) {
	if s.redisRepo == nil {
		return
	}
	total, err := s.ledgerRepo.TotalAssigned(ctx, variantID)
	if err != nil {
		logger.Warn("[refreshStockHint] sum failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return
	}
	if total <= 0 {
		if err := s.redisRepo.DeleteDisplayedStock(ctx, variantID); err != nil {
			logger.Warn("[refreshStockHint] delete redis failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		}
		return
	}
	if err := s.redisRepo.SetDisplayedStock(ctx, variantID, total); err != nil {
		logger.Warn("[refreshStockHint] set redis failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
	}
}
