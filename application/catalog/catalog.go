package catalog

import (
	"context"

	"github.com/breightend/mykonos-inventory/constant"
	"github.com/breightend/mykonos-inventory/model"
	variantrepo "github.com/breightend/mykonos-inventory/repository/variant"
	"github.com/breightend/mykonos-inventory/utils/errors"
	"github.com/breightend/mykonos-inventory/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp resolves variant identifiers of ambiguous origin. The same
// numeric id may live in web_variants or in the legacy
// warehouse_stock_variants table; this adapter is the only component
// aware both shapes exist.
type CatalogApp interface {
	Resolve(ctx context.Context, variantID uint64) (*model.ResolvedVariant, error)
}

type catalogAppImpl struct {
	variantRepo variantrepo.VariantRepository
}

func NewCatalogApp(variantRepo variantrepo.VariantRepository) CatalogApp {
	return &catalogAppImpl{variantRepo: variantRepo}
}

// Resolve looks up web_variants first, then the legacy warehouse table.
// A miss in both is the not_found kind, not an error: historical carts
// may reference variants retired by migration.
func (s *catalogAppImpl) Resolve(ctx context.Context, variantID uint64) (*model.ResolvedVariant, error) {
	web, err := s.variantRepo.GetWebVariant(ctx, variantID)
	if err != nil {
		logger.Error("[Resolve] get web variant failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if web != nil {
		return &model.ResolvedVariant{
			Kind:            constant.VariantKindWeb,
			Web:             web,
			LedgerVariantID: web.ID,
		}, nil
	}

	warehouse, err := s.variantRepo.GetWarehouseVariant(ctx, variantID)
	if err != nil {
		logger.Error("[Resolve] get warehouse variant failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return &model.ResolvedVariant{Kind: constant.VariantKindNotFound}, nil
	}

	// Legacy ids carry no assignments of their own; stock lives on the
	// web variant with the same (product, size, color) key, if any.
	resolved := &model.ResolvedVariant{
		Kind:      constant.VariantKindLegacyWarehouse,
		Warehouse: warehouse,
	}
	counterpart, err := s.variantRepo.GetWebVariantByKey(ctx, warehouse.ProductID, warehouse.SizeID, warehouse.ColorID)
	if err != nil {
		logger.Error("[Resolve] map legacy variant failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if counterpart != nil {
		resolved.LedgerVariantID = counterpart.ID
	}
	return resolved, nil
}
