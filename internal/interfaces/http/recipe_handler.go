package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	apprecipe "github.com/jhoicas/Planta-api/internal/application/recipe"
	"github.com/jhoicas/Planta-api/internal/domain"
)

// RecipeHandler maneja las peticiones HTTP de recetas (protegido).
type RecipeHandler struct {
	uc *apprecipe.RecipeUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *apprecipe.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Get devuelve la receta de un producto en orden; lista vacía si no tiene
// (las UIs la usan para previsualizar el consumo antes del despacho).
// GET /api/recipes/:productCode
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	components, err := h.uc.GetRecipe(c.Params("productCode"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código de producto requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":      len(components),
		"components": dto.FromRecipeComponents(components),
	})
}

// Register registra una línea de receta (importación de configuración).
// POST /api/recipes
func (h *RecipeHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	component, err := h.uc.RegisterComponent(apprecipe.RegisterComponentInput{
		ProductCode:    in.ProductCode,
		ProductName:    in.ProductName,
		ComponentCode:  in.ComponentCode,
		ComponentName:  in.ComponentName,
		ComponentClass: in.ComponentClass,
		UsagePerUnit:   in.UsagePerUnit,
		Unit:           in.Unit,
		Position:       in.Position,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"component_id": component.ID, "position": component.Position})
}
