package recipe

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// RecipeUseCase consulta y registro de recetas (BOM). La consulta la usan
// las UIs externas para previsualizar el consumo antes de enviar el despacho.
type RecipeUseCase struct {
	repo repository.RecipeRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo}
}

// GetRecipe devuelve los componentes del producto en orden de receta.
// Lista vacía = el producto no tiene consumo automático (no es error).
func (uc *RecipeUseCase) GetRecipe(productCode string) ([]*entity.RecipeComponent, error) {
	if productCode == "" {
		return nil, domain.ErrInvalidInput
	}
	components, err := uc.repo.ListByProduct(productCode)
	if err != nil {
		return nil, fmt.Errorf("consultar receta: %w", err)
	}
	return components, nil
}

// RegisterComponentInput entrada para registrar una línea de receta
// (importación de configuración).
type RegisterComponentInput struct {
	ProductCode    string
	ProductName    string
	ComponentCode  string
	ComponentName  string
	ComponentClass string
	UsagePerUnit   decimal.Decimal
	Unit           string
	Position       int
}

// RegisterComponent valida y persiste la línea. Rechaza UsagePerUnit < 0 y
// unidad vacía. No deduplica: filas (producto, componente) repetidas se
// preservan tal como llegan de la configuración.
func (uc *RecipeUseCase) RegisterComponent(input RegisterComponentInput) (*entity.RecipeComponent, error) {
	if input.ProductCode == "" || input.ComponentCode == "" || input.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.UsagePerUnit.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.ComponentClass != entity.ClassRaw && input.ComponentClass != entity.ClassAuxiliary {
		return nil, domain.ErrInvalidInput
	}
	component := &entity.RecipeComponent{
		ProductCode:    input.ProductCode,
		ProductName:    input.ProductName,
		ComponentCode:  input.ComponentCode,
		ComponentName:  input.ComponentName,
		ComponentClass: input.ComponentClass,
		UsagePerUnit:   input.UsagePerUnit,
		Unit:           input.Unit,
		Position:       input.Position,
	}
	if err := uc.repo.Create(component); err != nil {
		return nil, fmt.Errorf("registrar componente: %w", err)
	}
	return component, nil
}
