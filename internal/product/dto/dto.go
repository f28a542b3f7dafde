package dto

type ProductFilters struct {
	StoreID string
}

// SkippedAssignment records an option-value pair dropped by the lenient update
// policy; surfaced in logs, never persisted.
type SkippedAssignment struct {
	VariantIndex  int
	OptionID      string
	OptionValueID string
}
