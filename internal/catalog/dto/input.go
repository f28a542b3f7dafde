package dto

type CreateCategoryInput struct {
	Name string
}

type CreateSubcategoryInput struct {
	CategoryID string
	Name       string
}

type CreateOptionInput struct {
	SubcategoryID string
	Name          string
}

type CreateOptionValueInput struct {
	OptionID string
	Value    string
}

type CreateBrandInput struct {
	Name        string
	CategoryIDs []string
}

// SeedCatalogInput loads a whole catalog hierarchy in one call, keyed by display
// names since ids do not exist yet.
type SeedCatalogInput struct {
	Categories    []SeedCategory
	Brands        []SeedBrand
	Subcategories []SeedSubcategory
}

type SeedCategory struct {
	Name string
}

type SeedBrand struct {
	Name       string
	Categories []string // category names the brand is offerable for
}

type SeedSubcategory struct {
	Category string // parent category name
	Name     string
	Options  []SeedOption
}

type SeedOption struct {
	Name   string
	Values []string
}
