package handler

import (
	"net/http"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/sales"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SalesHandler struct {
	uc     sales.UseCase
	logger logger.ZapLogger
}

func NewSalesHandler(uc sales.UseCase, log logger.ZapLogger) *SalesHandler {
	return &SalesHandler{uc: uc, logger: log}
}

func (h *SalesHandler) Register(g *echo.Group) {
	g.GET("/:storeid/dashboard", h.Dashboard)
}

func (h *SalesHandler) Dashboard(c echo.Context) error {
	data, err := h.uc.Dashboard(c.Request().Context(), c.Param("storeid"))
	if err != nil {
		status := apperr.Status(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to build dashboard", zap.Error(err))
		}
		return c.JSON(status, echo.Map{"error": apperr.Message(err)})
	}
	return c.JSON(http.StatusOK, data)
}
