package cart

import (
	"context"

	appcatalog "github.com/breightend/mykonos-inventory/application/catalog"
	appreservation "github.com/breightend/mykonos-inventory/application/reservation"
	"github.com/breightend/mykonos-inventory/constant"
	"github.com/breightend/mykonos-inventory/model"
	cartrepo "github.com/breightend/mykonos-inventory/repository/cart"
	"github.com/breightend/mykonos-inventory/utils/errors"
	"github.com/breightend/mykonos-inventory/utils/logger"
	"go.uber.org/zap"
)

// CartApp validates that every cart line resolves to exactly one
// authoritative stock source and fits inside current availability. It
// replaces the old ad-hoc debug SQL, so the report is complete: every
// line is evaluated even when earlier ones fail.
type CartApp interface {
	ValidateCart(ctx context.Context, cartID uint64) ([]model.CartLineResult, error)
}

type cartAppImpl struct {
	cartRepo       cartrepo.CartRepository
	catalogApp     appcatalog.CatalogApp
	reservationApp appreservation.ReservationApp
}

func NewCartApp(cartRepo cartrepo.CartRepository, catalogApp appcatalog.CatalogApp, reservationApp appreservation.ReservationApp) CartApp {
	return &cartAppImpl{
		cartRepo:       cartRepo,
		catalogApp:     catalogApp,
		reservationApp: reservationApp,
	}
}

func (s *cartAppImpl) ValidateCart(ctx context.Context, cartID uint64) ([]model.CartLineResult, error) {
	lines, err := s.cartRepo.GetCartLines(ctx, cartID)
	if err != nil {
		logger.Error("[ValidateCart] get cart lines failed", zap.Uint64("cart_id", cartID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	results := make([]model.CartLineResult, 0, len(lines))
	for _, line := range lines {
		result := model.CartLineResult{
			CartItemID: line.CartItemID,
			VariantID:  line.VariantID,
			Quantity:   line.Quantity,
		}

		resolved, err := s.catalogApp.Resolve(ctx, line.VariantID)
		if err != nil {
			logger.Error("[ValidateCart] resolve variant failed", zap.Uint64("variant_id", line.VariantID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		result.ResolvedKind = resolved.Kind

		if resolved.Kind == constant.VariantKindNotFound {
			result.Status = constant.CartLineOrphanedVariant
			results = append(results, result)
			continue
		}

		// Legacy variants with no web counterpart own no assignments;
		// availability is simply zero for them.
		var available int64
		if resolved.LedgerVariantID != 0 {
			available, err = s.reservationApp.Available(ctx, resolved.LedgerVariantID)
			if err != nil {
				logger.Error("[ValidateCart] compute availability failed", zap.Uint64("variant_id", line.VariantID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
		result.Available = available

		if line.Quantity > available {
			result.Status = constant.CartLineInsufficient
		} else {
			result.Status = constant.CartLineOk
		}
		results = append(results, result)
	}

	return results, nil
}
