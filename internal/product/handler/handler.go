package handler

import (
	"net/http"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/auth"
	"github.com/avelora/storefront-admin-service/internal/product"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
	"github.com/avelora/storefront-admin-service/internal/sku"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) Register(g *echo.Group) {
	g.GET("/:storeid/products", h.ListProducts)
	g.POST("/:storeid/products", h.CreateProduct)
	g.GET("/:storeid/products/:productid", h.GetProduct)
	g.PATCH("/:storeid/products/:productid", h.UpdateProduct)
	g.DELETE("/:storeid/products/:productid", h.DeleteProduct)
	g.POST("/:storeid/products/:productid/regenerate-skus", h.RegenerateSKUs)
	g.POST("/sku/preview", h.PreviewSKU)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	storeID := c.Param("storeid")
	if storeID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store id is required"})
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &dto.ProductFilters{StoreID: storeID})
	if err != nil {
		return h.fail(c, err, "failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("storeid"), c.Param("productid"))
	if err != nil {
		return h.fail(c, err, "failed to get product")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var payload createProductPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	input := payload.toInput()
	input.UserID = auth.GetUserID(ctx)
	input.StoreID = c.Param("storeid")

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		return h.fail(c, err, "failed to create product")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var payload updateProductPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	input := payload.toInput()
	input.UserID = auth.GetUserID(ctx)
	input.StoreID = c.Param("storeid")
	input.ProductID = c.Param("productid")

	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		return h.fail(c, err, "failed to update product")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.uc.DeleteProduct(ctx, auth.GetUserID(ctx), c.Param("storeid"), c.Param("productid"))
	if err != nil {
		return h.fail(c, err, "failed to delete product")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

func (h *ProductHandler) RegenerateSKUs(c echo.Context) error {
	ctx := c.Request().Context()

	p, err := h.uc.RegenerateSKUs(ctx, auth.GetUserID(ctx), c.Param("storeid"), c.Param("productid"))
	if err != nil {
		return h.fail(c, err, "failed to regenerate skus")
	}
	return c.JSON(http.StatusOK, p)
}

// PreviewSKU is pure: no catalog read, no persistence. The client sends display
// strings, not ids.
func (h *ProductHandler) PreviewSKU(c echo.Context) error {
	var payload struct {
		Name     string   `json:"name"`
		Category string   `json:"category"`
		Brand    string   `json:"brand"`
		Values   []string `json:"values"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"sku": sku.Generate(payload.Name, payload.Category, payload.Brand, payload.Values),
	})
}

func (h *ProductHandler) fail(c echo.Context, err error, msg string) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": apperr.Message(err)})
}
