package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ListByProduct devuelve los componentes del producto en orden de receta.
// Sin índice único sobre (product_code, component_code): la configuración
// importada puede traer filas duplicadas y se preservan.
func (r *RecipeRepo) ListByProduct(productCode string) ([]*entity.RecipeComponent, error) {
	query := `
		SELECT id, product_code, product_name, component_code, component_name, component_class, usage_per_unit, unit, position
		FROM recipe_components WHERE product_code = $1
		ORDER BY position, component_code`
	rows, err := r.q.Query(context.Background(), query, productCode)
	if err != nil {
		return nil, fmt.Errorf("list recipe components: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecipeComponent
	for rows.Next() {
		var c entity.RecipeComponent
		if err := rows.Scan(&c.ID, &c.ProductCode, &c.ProductName, &c.ComponentCode,
			&c.ComponentName, &c.ComponentClass, &c.UsagePerUnit, &c.Unit, &c.Position); err != nil {
			return nil, fmt.Errorf("scan recipe component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste una línea de receta. Si Position <= 0 se asigna la
// siguiente posición libre dentro del producto.
func (r *RecipeRepo) Create(component *entity.RecipeComponent) error {
	if component.ID == "" {
		component.ID = uuid.New().String()
	}
	query := `
		INSERT INTO recipe_components (id, product_code, product_name, component_code, component_name, component_class, usage_per_unit, unit, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			CASE WHEN $9 > 0 THEN $9
			     ELSE (SELECT COALESCE(MAX(position), 0) + 1 FROM recipe_components WHERE product_code = $2)
			END)
		RETURNING position`
	err := r.q.QueryRow(context.Background(), query,
		component.ID, component.ProductCode, component.ProductName,
		component.ComponentCode, component.ComponentName, component.ComponentClass,
		component.UsagePerUnit, component.Unit, component.Position,
	).Scan(&component.Position)
	if err != nil {
		return fmt.Errorf("create recipe component: %w", err)
	}
	return nil
}
