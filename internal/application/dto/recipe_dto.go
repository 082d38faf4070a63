package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// RegisterComponentRequest body para POST /api/recipes (línea de receta).
type RegisterComponentRequest struct {
	ProductCode    string          `json:"product_code"`
	ProductName    string          `json:"product_name,omitempty"`
	ComponentCode  string          `json:"component_code"`
	ComponentName  string          `json:"component_name,omitempty"`
	ComponentClass string          `json:"component_class"`
	UsagePerUnit   decimal.Decimal `json:"usage_per_unit"`
	Unit           string          `json:"unit"`
	Position       int             `json:"position,omitempty"`
}

// RecipeComponentDTO línea de receta en respuestas.
type RecipeComponentDTO struct {
	ProductCode    string          `json:"product_code"`
	ProductName    string          `json:"product_name"`
	ComponentCode  string          `json:"component_code"`
	ComponentName  string          `json:"component_name"`
	ComponentClass string          `json:"component_class"`
	UsagePerUnit   decimal.Decimal `json:"usage_per_unit"`
	Unit           string          `json:"unit"`
	Position       int             `json:"position"`
}

// FromRecipeComponents mapea componentes de dominio a DTOs preservando el orden.
func FromRecipeComponents(components []*entity.RecipeComponent) []RecipeComponentDTO {
	out := make([]RecipeComponentDTO, 0, len(components))
	for _, c := range components {
		out = append(out, RecipeComponentDTO{
			ProductCode:    c.ProductCode,
			ProductName:    c.ProductName,
			ComponentCode:  c.ComponentCode,
			ComponentName:  c.ComponentName,
			ComponentClass: c.ComponentClass,
			UsagePerUnit:   c.UsagePerUnit,
			Unit:           c.Unit,
			Position:       c.Position,
		})
	}
	return out
}
