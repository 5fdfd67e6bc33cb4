package model

// BranchAssignment is one row of the branch stock ledger: the quantity of
// a web variant allocated to a physical branch for web fulfillment.
// Unique on (variant_id, branch_id); mutated only through ledger
// operations.
type BranchAssignment struct {
	ID               uint64 `db:"id"`
	VariantID        uint64 `db:"variant_id"`
	BranchID         uint64 `db:"branch_id"`
	AssignedQuantity int64  `db:"assigned_quantity"`
}

type BranchStock struct {
	BranchID uint64 `db:"branch_id" json:"branch_id"`
	Quantity int64  `db:"assigned_quantity" json:"quantity"`
}

type AssignRequest struct {
	BranchID uint64 `json:"branch_id" validate:"required"`
	Quantity int64  `json:"quantity"`
}

type AdjustRequest struct {
	BranchID uint64 `json:"branch_id" validate:"required"`
	Delta    int64  `json:"delta" validate:"required"`
}
