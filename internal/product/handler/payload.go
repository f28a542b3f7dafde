package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/avelora/storefront-admin-service/internal/product/dto"
)

type imagePayload struct {
	URL string `json:"url"`
}

// variantPayload carries the wire shape of a variant: the fixed fields plus an
// arbitrary set of optionId keys mapping to optionValueId strings. Decoding walks
// the JSON tokens so the option pairs keep their document order; SKU generation is
// order-sensitive.
type variantPayload struct {
	Price   float64
	Stock   int
	SKU     string
	Images  []imagePayload
	Options []dto.OptionAssignment
}

// UnmarshalJSON treats price, stock, sku, images and productId as fixed fields;
// every other key is an option id.
func (v *variantPayload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("variant must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token in variant object")
		}

		switch key {
		case "price":
			if err := dec.Decode(&v.Price); err != nil {
				return fmt.Errorf("variant price: %w", err)
			}
		case "stock":
			if err := dec.Decode(&v.Stock); err != nil {
				return fmt.Errorf("variant stock: %w", err)
			}
		case "sku":
			if err := dec.Decode(&v.SKU); err != nil {
				return fmt.Errorf("variant sku: %w", err)
			}
		case "images":
			if err := dec.Decode(&v.Images); err != nil {
				return fmt.Errorf("variant images: %w", err)
			}
		case "productId":
			// Clients sometimes echo this back; never trusted.
			var ignore json.RawMessage
			if err := dec.Decode(&ignore); err != nil {
				return err
			}
		default:
			var valueID string
			if err := dec.Decode(&valueID); err != nil {
				return fmt.Errorf("variant option %q: value must be a string", key)
			}
			v.Options = append(v.Options, dto.OptionAssignment{
				OptionID:      key,
				OptionValueID: valueID,
			})
		}
	}

	// Consume closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (v *variantPayload) toInput() dto.VariantInput {
	in := dto.VariantInput{
		Price:   v.Price,
		Stock:   v.Stock,
		SKU:     v.SKU,
		Options: v.Options,
	}
	for _, img := range v.Images {
		in.Images = append(in.Images, dto.ImageInput{URL: img.URL})
	}
	return in
}

type createProductPayload struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"`
	CategoryID    string           `json:"categoryId"`
	SubcategoryID string           `json:"subcategoryId"`
	BrandID       string           `json:"brandId"`
	IsFeatured    bool             `json:"isFeatured"`
	Status        string           `json:"status"`
	Options       []string         `json:"options"` // client hint; the server derives its own set
	Variants      []variantPayload `json:"variants"`
	Images        []imagePayload   `json:"images"`
	DiscountType  string           `json:"discountType"`
	DiscountValue *float64         `json:"discountValue"`
}

func (p *createProductPayload) toInput() *dto.CreateProductInput {
	in := &dto.CreateProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		BrandID:       p.BrandID,
		IsFeatured:    p.IsFeatured,
		Status:        p.Status,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
	}
	for _, img := range p.Images {
		in.Images = append(in.Images, dto.ImageInput{URL: img.URL})
	}
	for i := range p.Variants {
		in.Variants = append(in.Variants, p.Variants[i].toInput())
	}
	return in
}

type updateProductPayload struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *float64         `json:"price"`
	SubcategoryID *string          `json:"subcategoryId"`
	BrandID       *string          `json:"brandId"`
	IsFeatured    *bool            `json:"isFeatured"`
	Status        *string          `json:"status"`
	Variants      []variantPayload `json:"variants"`
	Images        []imagePayload   `json:"images"`
	DiscountType  *string          `json:"discountType"`
	DiscountValue *float64         `json:"discountValue"`
}

func (p *updateProductPayload) toInput() *dto.UpdateProductInput {
	in := &dto.UpdateProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		SubcategoryID: p.SubcategoryID,
		BrandID:       p.BrandID,
		IsFeatured:    p.IsFeatured,
		Status:        p.Status,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
	}
	if p.Images != nil {
		in.Images = make([]dto.ImageInput, 0, len(p.Images))
		for _, img := range p.Images {
			in.Images = append(in.Images, dto.ImageInput{URL: img.URL})
		}
	}
	if p.Variants != nil {
		in.Variants = make([]dto.VariantInput, 0, len(p.Variants))
		for i := range p.Variants {
			in.Variants = append(in.Variants, p.Variants[i].toInput())
		}
	}
	return in
}
