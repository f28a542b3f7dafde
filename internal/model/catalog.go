package model

// Catalog reference hierarchy: Category -> Subcategory -> Option -> OptionValue,
// plus Brand with a many-to-many link to Category. Read-mostly; seeded by catalog
// administration and read by product authoring.

type Category struct {
	BaseModel
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

type Subcategory struct {
	BaseModel
	CategoryID string `db:"category_id" json:"category_id"`
	Name       string `db:"name" json:"name"`
}

// Option is an axis of variation (e.g. "Color") scoped to one subcategory. The same
// option name under two subcategories is two distinct Option rows.
type Option struct {
	BaseModel
	SubcategoryID string `db:"subcategory_id" json:"subcategory_id"`
	Name          string `db:"name" json:"name"`
}

type OptionValue struct {
	BaseModel
	OptionID string `db:"option_id" json:"option_id"`
	Value    string `db:"value" json:"value"`
}

type Brand struct {
	BaseModel
	Name        string   `db:"name" json:"name"`
	Slug        string   `db:"slug" json:"slug"`
	CategoryIDs []string `db:"-" json:"category_ids"` // categories the brand is offerable for
}

// CatalogSnapshot is one consistent read of the whole catalog. Validation and
// composition of a product submission run against a single snapshot; concurrent
// catalog edits during a save are not observed.
type CatalogSnapshot struct {
	Categories    []Category    `json:"categories"`
	Brands        []Brand       `json:"brands"`
	Subcategories []Subcategory `json:"subcategories"`
	Options       []Option      `json:"options"`
	OptionValues  []OptionValue `json:"option_values"`
}

func (s *CatalogSnapshot) CategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

func (s *CatalogSnapshot) SubcategoryByID(id string) *Subcategory {
	for i := range s.Subcategories {
		if s.Subcategories[i].ID == id {
			return &s.Subcategories[i]
		}
	}
	return nil
}

func (s *CatalogSnapshot) BrandByID(id string) *Brand {
	for i := range s.Brands {
		if s.Brands[i].ID == id {
			return &s.Brands[i]
		}
	}
	return nil
}

func (s *CatalogSnapshot) OptionByID(id string) *Option {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}

func (s *CatalogSnapshot) OptionValueByID(id string) *OptionValue {
	for i := range s.OptionValues {
		if s.OptionValues[i].ID == id {
			return &s.OptionValues[i]
		}
	}
	return nil
}

// OptionsFor returns the options owned by a subcategory.
func (s *CatalogSnapshot) OptionsFor(subcategoryID string) []Option {
	var out []Option
	for _, o := range s.Options {
		if o.SubcategoryID == subcategoryID {
			out = append(out, o)
		}
	}
	return out
}

// BrandLinkedTo reports whether a brand is offerable for a category.
func (s *CatalogSnapshot) BrandLinkedTo(brandID, categoryID string) bool {
	b := s.BrandByID(brandID)
	if b == nil {
		return false
	}
	for _, id := range b.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
