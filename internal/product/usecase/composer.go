package usecase

import (
	"sort"
	"strings"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/catalog"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
	"github.com/pkg/errors"
)

// composition is the fully validated shape of a product's variant set, ready for
// persistence: the deduplicated product-level option id set plus each variant's
// checked option-value assignments in submission order.
type composition struct {
	OptionIDs []string
	Variants  []dto.VariantInput
	Skipped   []dto.SkippedAssignment
}

// composeVariants validates and assembles a variant submission against one catalog
// snapshot.
//
// The option-key check runs once over the union of all variants' keys, so any
// variant using any illegal key rejects the entire submission. Option-value pairs
// whose value does not belong to its option fail the submission when lenient is
// false (creation) and are skipped with a record when lenient is true (the
// backward-compatible update policy). Two variants resolving to the same assignment
// set fail with ErrDuplicateVariant.
func composeVariants(snap *model.CatalogSnapshot, subcategoryID string, variants []dto.VariantInput, lenient bool) (*composition, error) {
	if len(variants) == 0 {
		return nil, apperr.ErrEmptyVariantSet
	}

	var union []string
	for _, v := range variants {
		for _, a := range v.Options {
			union = append(union, a.OptionID)
		}
	}
	union = catalog.Dedupe(union)

	validOptions, err := catalog.ValidateOptionKeys(snap, subcategoryID, union)
	if err != nil {
		return nil, err
	}
	validSet := make(map[string]struct{}, len(validOptions))
	for _, opt := range validOptions {
		validSet[opt.ID] = struct{}{}
	}

	out := &composition{
		Variants: make([]dto.VariantInput, 0, len(variants)),
	}
	seen := make(map[string]struct{}, len(variants))

	for i, v := range variants {
		if v.Price < 0 {
			return nil, apperr.Validation("variants", "variant price must not be negative")
		}
		if v.Stock < 0 {
			return nil, apperr.Validation("variants", "variant stock must not be negative")
		}

		// Always true after the union check above; a violation means the union
		// derivation itself is broken.
		for _, a := range v.Options {
			if _, ok := validSet[a.OptionID]; !ok {
				return nil, errors.Wrapf(apperr.ErrVariantOptionKeyInvalid,
					"variant %d option %s", i, a.OptionID)
			}
		}

		kept := make([]dto.OptionAssignment, 0, len(v.Options))
		for _, a := range v.Options {
			val := snap.OptionValueByID(a.OptionValueID)
			if val == nil || val.OptionID != a.OptionID {
				if lenient {
					out.Skipped = append(out.Skipped, dto.SkippedAssignment{
						VariantIndex:  i,
						OptionID:      a.OptionID,
						OptionValueID: a.OptionValueID,
					})
					continue
				}
				return nil, errors.Wrapf(apperr.ErrOptionValueMismatch,
					"variant %d: value %s does not belong to option %s", i, a.OptionValueID, a.OptionID)
			}
			kept = append(kept, a)
		}

		key := assignmentKey(kept)
		if _, dup := seen[key]; dup {
			return nil, errors.Wrapf(apperr.ErrDuplicateVariant, "variant %d", i)
		}
		seen[key] = struct{}{}

		composed := v
		composed.Options = kept
		out.Variants = append(out.Variants, composed)
	}

	// The product-level option set is derived from the assignments that survived,
	// so ProductOption rows always match what the variants actually reference.
	var used []string
	for _, v := range out.Variants {
		for _, a := range v.Options {
			used = append(used, a.OptionID)
		}
	}
	out.OptionIDs = catalog.Dedupe(used)

	return out, nil
}

// assignmentKey canonicalizes an assignment set for duplicate detection: order of
// submission must not distinguish two otherwise identical variants.
func assignmentKey(assignments []dto.OptionAssignment) string {
	pairs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		pairs = append(pairs, a.OptionID+"="+a.OptionValueID)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}
