package constant

// VariantKind tags which catalog table resolved a variant identifier.
// Identifiers minted before the web/warehouse table split are ambiguous,
// so callers must branch on this explicitly.
type VariantKind string

const (
	VariantKindWeb             VariantKind = "web"
	VariantKindLegacyWarehouse VariantKind = "legacy-warehouse"
	VariantKindNotFound        VariantKind = "not_found"
)

// CartLineStatus is the per-line outcome of a cart validation pass.
type CartLineStatus string

const (
	CartLineOk              CartLineStatus = "ok"
	CartLineInsufficient    CartLineStatus = "insufficient"
	CartLineOrphanedVariant CartLineStatus = "orphaned_variant"
)
