package catalog

import (
	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/model"
)

// ValidateOptionKeys checks that every candidate id is an option of the given
// subcategory and returns the matched options. All-or-nothing: a single foreign or
// unknown id fails the whole call with ErrInvalidOptionSet. Pure over the snapshot.
func ValidateOptionKeys(snap *model.CatalogSnapshot, subcategoryID string, candidateIDs []string) ([]model.Option, error) {
	candidates := Dedupe(candidateIDs)

	matched := make([]model.Option, 0, len(candidates))
	for _, id := range candidates {
		opt := snap.OptionByID(id)
		if opt == nil || opt.SubcategoryID != subcategoryID {
			continue
		}
		matched = append(matched, *opt)
	}

	if len(matched) != len(candidates) {
		return nil, apperr.ErrInvalidOptionSet
	}
	return matched, nil
}

// Dedupe keeps first occurrences, preserving order.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
