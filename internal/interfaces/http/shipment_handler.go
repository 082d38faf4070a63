package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ShipmentHandler maneja las peticiones HTTP de despachos (protegido).
type ShipmentHandler struct {
	uc      *inventory.RecordShipmentUseCase
	queryUC *inventory.ShipmentQueryUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *inventory.RecordShipmentUseCase, queryUC *inventory.ShipmentQueryUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, queryUC: queryUC}
}

// RecordShipment godoc
// @Summary      Registrar despacho de producto terminado
// @Description  Registra el despacho y su cascada de consumos (salida del
//               producto más una salida por componente de receta) como una
//               unidad atómica. component_usage opcional sustituye la
//               expansión automática; sus líneas malformadas se omiten y se
//               devuelven en warnings.
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordShipmentRequest  true  "product_code, product_name, batch_number, quantity, ..."
// @Success      201   {object}  dto.RecordShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) RecordShipment(c *fiber.Ctx) error {
	var in dto.RecordShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.ShipmentInput{
		ProductCode: in.ProductCode,
		ProductName: in.ProductName,
		BatchNumber: in.BatchNumber,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Destination: in.Destination,
		Operator:    firstNonEmpty(in.Operator, GetUserID(c)),
		Notes:       in.Notes,
	}
	if in.OutboundDate != nil {
		input.Date = *in.OutboundDate
	}
	if in.ComponentUsage != nil {
		lines := make([]inventory.OverrideLine, 0, len(in.ComponentUsage))
		for _, l := range in.ComponentUsage {
			lines = append(lines, inventory.OverrideLine{
				MaterialCode: l.MaterialCode,
				MaterialName: l.MaterialName,
				Class:        l.Class,
				Unit:         l.Unit,
				Quantity:     l.ConsumedQuantity,
			})
		}
		input.Override = lines
	}

	result, err := h.uc.RecordShipment(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordShipmentResponse{
		ShipmentID:     result.ShipmentID,
		DerivedEntries: result.DerivedEntries,
		Warnings:       result.Warnings,
	})
}

// List lista el historial de despachos, más recientes primero.
// GET /api/shipments?limit=&offset=
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	shipments, err := h.queryUC.ListShipments(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":     len(shipments),
		"shipments": dto.FromShipments(shipments),
	})
}

// Get devuelve un despacho con su rastro material (salida del terminado más
// consumos derivados).
// GET /api/shipments/:id
func (h *ShipmentHandler) Get(c *fiber.Ctx) error {
	shipment, entries, err := h.queryUC.GetShipment(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despacho no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	dtos := dto.FromShipments([]*entity.Shipment{shipment})
	return c.JSON(fiber.Map{
		"shipment": dtos[0],
		"entries":  dto.FromLedgerEntries(entries),
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
