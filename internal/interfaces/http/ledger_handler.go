package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// LedgerHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type LedgerHandler struct {
	movementUC *inventory.RecordMovementUseCase
	adminUC    *inventory.LedgerAdminUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(movementUC *inventory.RecordMovementUseCase, adminUC *inventory.LedgerAdminUseCase) *LedgerHandler {
	return &LedgerHandler{movementUC: movementUC, adminUC: adminUC}
}

// RecordMovement registra un movimiento directo (entrada o salida manual).
// POST /api/ledger
func (h *LedgerHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.MovementInput{
		MaterialCode: in.MaterialCode,
		MaterialName: in.MaterialName,
		Class:        in.Class,
		Unit:         in.Unit,
		Direction:    in.Direction,
		Quantity:     in.Quantity,
		SecondaryKey: in.SecondaryKey,
		Operator:     firstNonEmpty(in.Operator, GetUserID(c)),
	}
	if in.Date != nil {
		input.Date = *in.Date
	}
	entry, err := h.movementUC.RecordMovement(input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry_id": entry.ID})
}

// List lista movimientos del libro con filtros.
// GET /api/ledger?material=&class=&direction=&limit=&offset=
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	filter := repository.LedgerFilter{
		MaterialCode: c.Query("material"),
		Class:        c.Query("class"),
		Direction:    c.Query("direction"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	entries, err := h.adminUC.ListEntries(filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":   len(entries),
		"entries": dto.FromLedgerEntries(entries),
	})
}

// Delete godoc
// @Summary      Eliminar movimiento (corrección administrativa)
// @Description  Borra un movimiento del libro dejando rastro de auditoría.
//               Rompe el invariante append-only; uso excepcional. No revierte
//               movimientos derivados de un despacho.
// @Tags         ledger
// @Security     Bearer
// @Param        id      path   string  true   "ID del movimiento"
// @Param        reason  query  string  false  "Motivo de la corrección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/{id} [delete]
func (h *LedgerHandler) Delete(c *fiber.Ctx) error {
	deletedBy := GetUserID(c)
	if deletedBy == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	err := h.adminUC.DeleteEntry(c.Context(), c.Params("id"), deletedBy, c.Query("reason"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
