package dto

type ImageInput struct {
	URL string `json:"url"`
}

// OptionAssignment is one optionId -> optionValueId pair of a variant. Assignments
// are an ordered list, never a map: the submission order of a variant's option keys
// is observable through SKU generation.
type OptionAssignment struct {
	OptionID      string `json:"option_id"`
	OptionValueID string `json:"option_value_id"`
}

type VariantInput struct {
	Price   float64
	Stock   int
	SKU     string
	Images  []ImageInput
	Options []OptionAssignment
}

type CreateProductInput struct {
	UserID        string
	StoreID       string
	Name          string
	Description   string
	Price         float64
	CategoryID    string
	SubcategoryID string
	BrandID       string
	IsFeatured    bool
	Status        string
	DiscountType  string
	DiscountValue *float64
	Images        []ImageInput
	Variants      []VariantInput
}

// UpdateProductInput merges over the existing record: nil pointers and nil slices
// leave the corresponding fields and child sets untouched. A non-nil Variants slice
// fully replaces the prior variant set.
type UpdateProductInput struct {
	ProductID     string
	UserID        string
	StoreID       string
	Name          *string
	Description   *string
	Price         *float64
	SubcategoryID *string
	BrandID       *string
	IsFeatured    *bool
	Status        *string
	DiscountType  *string
	DiscountValue *float64
	Images        []ImageInput
	Variants      []VariantInput
}
