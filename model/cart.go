package model

import "github.com/breightend/mykonos-inventory/constant"

// CartLine is a (cart, variant, quantity) tuple awaiting checkout.
type CartLine struct {
	CartItemID uint64 `db:"id"`
	VariantID  uint64 `db:"variant_id"`
	Quantity   int64  `db:"quantity"`
}

// CartLineResult is one entry of a cart validation report. Every line is
// evaluated even when earlier lines fail, so support tooling can show the
// user all problems at once.
type CartLineResult struct {
	CartItemID   uint64                  `json:"cart_item_id"`
	VariantID    uint64                  `json:"variant_id"`
	Quantity     int64                   `json:"quantity"`
	Status       constant.CartLineStatus `json:"status"`
	ResolvedKind constant.VariantKind    `json:"resolved_kind"`
	Available    int64                   `json:"available"`
}
