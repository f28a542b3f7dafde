package handler

import (
	"net/http"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/auth"
	"github.com/avelora/storefront-admin-service/internal/store"
	"github.com/avelora/storefront-admin-service/internal/store/dto"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StoreHandler struct {
	uc     store.UseCase
	logger logger.ZapLogger
}

func NewStoreHandler(uc store.UseCase, log logger.ZapLogger) *StoreHandler {
	return &StoreHandler{uc: uc, logger: log}
}

func (h *StoreHandler) Register(g *echo.Group) {
	g.POST("/stores", h.CreateStore)
	g.PATCH("/stores/:storeid", h.UpdateStore)
	g.DELETE("/stores/:storeid", h.DeleteStore)
}

type storePayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	ctx := c.Request().Context()

	var payload storePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	s, err := h.uc.CreateStore(ctx, &dto.CreateStoreInput{
		UserID:  auth.GetUserID(ctx),
		Name:    payload.Name,
		Address: payload.Address,
	})
	if err != nil {
		return h.fail(c, err, "failed to create store")
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": s.ID})
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	ctx := c.Request().Context()

	var payload storePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	s, err := h.uc.UpdateStore(ctx, &dto.UpdateStoreInput{
		ID:      c.Param("storeid"),
		UserID:  auth.GetUserID(ctx),
		Name:    payload.Name,
		Address: payload.Address,
	})
	if err != nil {
		return h.fail(c, err, "failed to update store")
	}

	return c.JSON(http.StatusOK, echo.Map{"id": s.ID})
}

func (h *StoreHandler) DeleteStore(c echo.Context) error {
	ctx := c.Request().Context()

	storeID := c.Param("storeid")
	if err := h.uc.DeleteStore(ctx, auth.GetUserID(ctx), storeID); err != nil {
		return h.fail(c, err, "failed to delete store")
	}

	return c.JSON(http.StatusOK, echo.Map{"id": storeID})
}

func (h *StoreHandler) fail(c echo.Context, err error, msg string) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": apperr.Message(err)})
}
