package handler

import (
	"net/http"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/catalog"
	"github.com/avelora/storefront-admin-service/internal/catalog/dto"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: log}
}

func (h *CatalogHandler) Register(g *echo.Group) {
	g.GET("/catalog", h.GetCatalog)
	g.POST("/categories", h.CreateCategory)
	g.POST("/subcategories", h.CreateSubcategory)
	g.POST("/options", h.CreateOption)
	g.POST("/option-values", h.CreateOptionValue)
	g.POST("/brands", h.CreateBrand)
	g.POST("/catalog/seed", h.SeedCatalog)
}

// GetCatalog returns the full reference hierarchy in one payload; the authoring UI
// loads it once per form.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to load catalog")
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), &dto.CreateCategoryInput{Name: payload.Name})
	if err != nil {
		return h.fail(c, err, "failed to create category")
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHandler) CreateSubcategory(c echo.Context) error {
	var payload struct {
		CategoryID string `json:"category_id"`
		Name       string `json:"name"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	sub, err := h.uc.CreateSubcategory(c.Request().Context(), &dto.CreateSubcategoryInput{
		CategoryID: payload.CategoryID,
		Name:       payload.Name,
	})
	if err != nil {
		return h.fail(c, err, "failed to create subcategory")
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *CatalogHandler) CreateOption(c echo.Context) error {
	var payload struct {
		SubcategoryID string `json:"subcategory_id"`
		Name          string `json:"name"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	opt, err := h.uc.CreateOption(c.Request().Context(), &dto.CreateOptionInput{
		SubcategoryID: payload.SubcategoryID,
		Name:          payload.Name,
	})
	if err != nil {
		return h.fail(c, err, "failed to create option")
	}
	return c.JSON(http.StatusCreated, opt)
}

func (h *CatalogHandler) CreateOptionValue(c echo.Context) error {
	var payload struct {
		OptionID string `json:"option_id"`
		Value    string `json:"value"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	val, err := h.uc.CreateOptionValue(c.Request().Context(), &dto.CreateOptionValueInput{
		OptionID: payload.OptionID,
		Value:    payload.Value,
	})
	if err != nil {
		return h.fail(c, err, "failed to create option value")
	}
	return c.JSON(http.StatusCreated, val)
}

func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var payload struct {
		Name        string   `json:"name"`
		CategoryIDs []string `json:"category_ids"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	b, err := h.uc.CreateBrand(c.Request().Context(), &dto.CreateBrandInput{
		Name:        payload.Name,
		CategoryIDs: payload.CategoryIDs,
	})
	if err != nil {
		return h.fail(c, err, "failed to create brand")
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *CatalogHandler) SeedCatalog(c echo.Context) error {
	var payload struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Brands []struct {
			Name       string   `json:"name"`
			Categories []string `json:"categories"`
		} `json:"brands"`
		Subcategories []struct {
			Category string `json:"category"`
			Name     string `json:"name"`
			Options  []struct {
				Name   string   `json:"name"`
				Values []string `json:"values"`
			} `json:"options"`
		} `json:"subcategories"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	input := &dto.SeedCatalogInput{}
	for _, cat := range payload.Categories {
		input.Categories = append(input.Categories, dto.SeedCategory{Name: cat.Name})
	}
	for _, b := range payload.Brands {
		input.Brands = append(input.Brands, dto.SeedBrand{Name: b.Name, Categories: b.Categories})
	}
	for _, s := range payload.Subcategories {
		sub := dto.SeedSubcategory{Category: s.Category, Name: s.Name}
		for _, o := range s.Options {
			sub.Options = append(sub.Options, dto.SeedOption{Name: o.Name, Values: o.Values})
		}
		input.Subcategories = append(input.Subcategories, sub)
	}

	if err := h.uc.SeedCatalog(c.Request().Context(), input); err != nil {
		return h.fail(c, err, "failed to seed catalog")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "catalog seeded"})
}

func (h *CatalogHandler) fail(c echo.Context, err error, msg string) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": apperr.Message(err)})
}
