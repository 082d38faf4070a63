package repository

import "github.com/jhoicas/Planta-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia de recetas (BOM).
// Las filas se cargan por importación de configuración y rara vez cambian.
type RecipeRepository interface {
	// ListByProduct devuelve los componentes del producto ordenados por
	// Position. Lista vacía si el producto no tiene receta (no es error).
	// Puede contener filas duplicadas (ProductCode, ComponentCode).
	ListByProduct(productCode string) ([]*entity.RecipeComponent, error)
	Create(component *entity.RecipeComponent) error
}
