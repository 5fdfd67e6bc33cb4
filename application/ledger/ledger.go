package ledger

import (
	"context"

	"github.com/breightend/mykonos-inventory/constant"
	"github.com/breightend/mykonos-inventory/model"
	ledgerrepo "github.com/breightend/mykonos-inventory/repository/ledger"
	redisrepo "github.com/breightend/mykonos-inventory/repository/redis"
	txrepo "github.com/breightend/mykonos-inventory/repository/tx"
	variantrepo "github.com/breightend/mykonos-inventory/repository/variant"
	"github.com/breightend/mykonos-inventory/utils/errors"
	"github.com/breightend/mykonos-inventory/utils/logger"
	"go.uber.org/zap"
)

// LedgerApp is the only writer of branch assignments. Assignment is a
// ledger, not free-form updates: underflow is an explicit checked error,
// never a forgotten WHERE clause.
type LedgerApp interface {
	Assign(ctx context.Context, variantID, branchID uint64, quantity int64) error
	Adjust(ctx context.Context, variantID, branchID uint64, delta int64) error
	TotalAssigned(ctx context.Context, variantID uint64) (int64, error)
	PerBranch(ctx context.Context, variantID uint64) ([]model.BranchStock, error)
	DisplayedStock(ctx context.Context, variantID uint64) (int64, error)
}

type ledgerAppImpl struct {
	txRepo      txrepo.TxRepository
	ledgerRepo  ledgerrepo.LedgerRepository
	variantRepo variantrepo.VariantRepository
	redisRepo   redisrepo.Repository
}

func NewLedgerApp(txRepo txrepo.TxRepository, ledgerRepo ledgerrepo.LedgerRepository, variantRepo variantrepo.VariantRepository, redisRepo redisrepo.Repository) LedgerApp {
	return &ledgerAppImpl{
		txRepo:      txRepo,
		ledgerRepo:  ledgerRepo,
		variantRepo: variantRepo,
		redisRepo:   redisRepo,
	}
}

func (s *ledgerAppImpl) Assign(ctx context.Context, variantID, branchID uint64, quantity int64) error {
	if quantity < 0 {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Assign] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.ledgerRepo.UpsertAssignmentTx(ctx, tx, variantID, branchID, quantity); err != nil {
		logger.Error("[Assign] upsert assignment failed", zap.Uint64("variant_id", variantID), zap.Uint64("branch_id", branchID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.variantRepo.RefreshDisplayedStockTx(ctx, tx, variantID); err != nil {
		logger.Error("[Assign] refresh displayed stock failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Assign] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.refreshStockHint(ctx, variantID)
	return nil
}

// Adjust atomically adds delta to the current assignment. A missing row
// counts as zero, so a positive delta creates the row and a negative one
// underflows.
func (s *ledgerAppImpl) Adjust(ctx context.Context, variantID, branchID uint64, delta int64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Adjust] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	assignment, err := s.ledgerRepo.GetAssignmentForUpdateTx(ctx, tx, variantID, branchID)
	if err != nil {
		logger.Error("[Adjust] lock assignment failed", zap.Uint64("variant_id", variantID), zap.Uint64("branch_id", branchID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	current := int64(0)
	if assignment != nil {
		current = assignment.AssignedQuantity
	}
	if current+delta < 0 {
		return errors.SetCustomError(constant.ErrNegativeResult)
	}

	if assignment == nil {
		err = s.ledgerRepo.UpsertAssignmentTx(ctx, tx, variantID, branchID, delta)
	} else {
		err = s.ledgerRepo.AddToAssignmentTx(ctx, tx, assignment.ID, delta)
	}
	if err != nil {
		logger.Error("[Adjust] apply delta failed", zap.Uint64("variant_id", variantID), zap.Uint64("branch_id", branchID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.variantRepo.RefreshDisplayedStockTx(ctx, tx, variantID); err != nil {
		logger.Error("[Adjust] refresh displayed stock failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Adjust] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.refreshStockHint(ctx, variantID)
	return nil
}

func (s *ledgerAppImpl) TotalAssigned(ctx context.Context, variantID uint64) (int64, error) {
	total, err := s.ledgerRepo.TotalAssigned(ctx, variantID)
	if err != nil {
		logger.Error("[TotalAssigned] sum failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return total, nil
}

func (s *ledgerAppImpl) PerBranch(ctx context.Context, variantID uint64) ([]model.BranchStock, error) {
	stocks, err := s.ledgerRepo.PerBranch(ctx, variantID)
	if err != nil {
		logger.Error("[PerBranch] list failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stocks, nil
}

// DisplayedStock serves the storefront hint: the cached total when the
// hint is present, otherwise recomputed from the ledger. It may lag
// behind availability and is never used for reservation decisions.
func (s *ledgerAppImpl) DisplayedStock(ctx context.Context, variantID uint64) (int64, error) {
	if s.redisRepo != nil {
		cached, ok, err := s.redisRepo.GetDisplayedStock(ctx, variantID)
		if err != nil {
			logger.Warn("[DisplayedStock] get redis failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		} else if ok {
			return cached, nil
		}
	}
	return s.TotalAssigned(ctx, variantID)
}

// refreshStockHint mirrors the recomputed total into redis. Best-effort:
// the database hint was already updated in the transaction. A zero total
// drops the key so the storefront falls back to the ledger.
func (s *ledgerAppImpl) refreshStockHint(ctx context.Context, variantID uint64) {
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
