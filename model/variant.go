package model

import "github.com/breightend/mykonos-inventory/constant"

// WebVariant is the current web-channel variant shape, keyed by
// (product_id, size_id, color_id). DisplayedStock is a cached hint for
// the storefront and may lag behind the assignment ledger.
type WebVariant struct {
	ID             uint64 `db:"id" json:"id"`
	ProductID      uint64 `db:"product_id" json:"product_id"`
	SizeID         uint64 `db:"size_id" json:"size_id"`
	ColorID        uint64 `db:"color_id" json:"color_id"`
	Active         bool   `db:"active" json:"active"`
	DisplayedStock int64  `db:"displayed_stock" json:"displayed_stock"`
}

// WarehouseVariant is the legacy warehouse-scoped shape. It predates the
// web_variants table and is keyed independently.
type WarehouseVariant struct {
	ID        uint64 `db:"id" json:"id"`
	ProductID uint64 `db:"product_id" json:"product_id"`
	SizeID    uint64 `db:"size_id" json:"size_id"`
	ColorID   uint64 `db:"color_id" json:"color_id"`
	BranchID  uint64 `db:"branch_id" json:"branch_id"`
	Quantity  int64  `db:"quantity" json:"quantity"`
}

// ResolvedVariant is the tri-state result of catalog resolution.
// LedgerVariantID is the web variant id that owns branch assignments for
// this identifier: the id itself for web variants, the matching web
// variant (same product/size/color) for legacy ones, 0 when no web
// counterpart exists.
type ResolvedVariant struct {
	Kind            constant.VariantKind `json:"kind"`
	Web             *WebVariant          `json:"web,omitempty"`
	Warehouse       *WarehouseVariant    `json:"warehouse,omitempty"`
	LedgerVariantID uint64               `json:"ledger_variant_id"`
}
