package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
)

// StockHandler maneja las consultas de stock y alertas (protegido).
type StockHandler struct {
	uc               *inventory.StockQueryUseCase
	defaultThreshold decimal.Decimal
	defaultLimit     int
}

// NewStockHandler construye el handler con los valores por defecto de alerta.
func NewStockHandler(uc *inventory.StockQueryUseCase, defaultThreshold decimal.Decimal, defaultLimit int) *StockHandler {
	return &StockHandler{uc: uc, defaultThreshold: defaultThreshold, defaultLimit: defaultLimit}
}

// GetStock godoc
// @Summary      Stock actual por grupo (material, clave secundaria)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        class              query  string  false  "raw | auxiliary | finished"
// @Param        include_exhausted  query  bool    false  "Retener grupos con remaining <= 0 (auditoría)"
// @Success      200  {array}   dto.StockSnapshotDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	class := c.Query("class")
	includeExhausted := c.QueryBool("include_exhausted", false)

	snaps, err := h.uc.GetStockSnapshot(c.Context(), class, includeExhausted)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clase desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total": len(snaps),
		"stock": dto.FromStockSnapshots(snaps),
	})
}

// GetAlerts devuelve los grupos bajo el umbral (remaining < threshold,
// estricto), ascendente por remaining, acotados a limit.
// GET /api/stock/alerts?threshold=&limit=
func (h *StockHandler) GetAlerts(c *fiber.Ctx) error {
	threshold := h.defaultThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
		}
		threshold = parsed
	}
	limit := c.QueryInt("limit", h.defaultLimit)

	snaps, err := h.uc.GetLowStockAlerts(c.Context(), threshold, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"threshold": threshold,
		"total":     len(snaps),
		"alerts":    dto.FromStockSnapshots(snaps),
	})
}
