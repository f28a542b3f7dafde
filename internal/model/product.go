package model

type ProductStatus string

const (
	StatusDraft     ProductStatus = "DRAFT"
	StatusPublished ProductStatus = "PUBLISHED"
	StatusArchived  ProductStatus = "ARCHIVED"
)

// NormalizeStatus folds unknown values to DRAFT.
func NormalizeStatus(s string) ProductStatus {
	switch ProductStatus(s) {
	case StatusPublished:
		return StatusPublished
	case StatusArchived:
		return StatusArchived
	default:
		return StatusDraft
	}
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

type Product struct {
	BaseModel
	StoreID       string        `db:"store_id" json:"store_id"`
	SubcategoryID string        `db:"subcategory_id" json:"subcategory_id"`
	BrandID       string        `db:"brand_id" json:"brand_id"`
	Name          string        `db:"name" json:"name"`
	Slug          string        `db:"slug" json:"slug"`
	Description   string        `db:"description" json:"description"`
	Price         float64       `db:"price" json:"price"`
	IsFeatured    bool          `db:"is_featured" json:"is_featured"`
	Status        ProductStatus `db:"status" json:"status"`
	DiscountType  *DiscountType `db:"discount_type" json:"discount_type"`
	DiscountValue *float64      `db:"discount_value" json:"discount_value"`

	// Children, hydrated on read and persisted atomically with the product.
	Images    []Image   `db:"-" json:"images"`
	OptionIDs []string  `db:"-" json:"option_ids"` // derived ProductOption rows
	Variants  []Variant `db:"-" json:"variants"`
}

// Variant is one purchasable configuration. Its identity beyond ID is
// (product, option-value assignment set). Variant IDs are NOT stable across product
// updates: the whole variant set is deleted and recreated on every edit, so no
// consumer may persist a foreign key to a variant across an update boundary.
type Variant struct {
	BaseModel
	ProductID string  `db:"product_id" json:"product_id"`
	Price     float64 `db:"price" json:"price"`
	Stock     int     `db:"stock" json:"stock"`
	SKU       *string `db:"sku" json:"sku"`

	Images  []Image         `db:"-" json:"images"`
	Options []VariantOption `db:"-" json:"options"` // order = submission order
}

// VariantOption links a variant to one option value. OptionID is denormalized from
// the option value on read for round-tripping the optionId->optionValueId pairs.
type VariantOption struct {
	ID            string `db:"id" json:"id"`
	VariantID     string `db:"variant_id" json:"variant_id"`
	OptionID      string `db:"option_id" json:"option_id"`
	OptionValueID string `db:"option_value_id" json:"option_value_id"`
}

type Image struct {
	ID        string  `db:"id" json:"id"`
	URL       string  `db:"url" json:"url"`
	ProductID *string `db:"product_id" json:"product_id"`
	VariantID *string `db:"variant_id" json:"variant_id"`
}
