package entity

import "github.com/shopspring/decimal"

// RecipeComponent es una línea de receta (BOM): cuánto de un componente se
// consume por unidad despachada del producto. Un producto mapea a una
// colección ordenada de componentes (Position).
//
// La configuración importada puede contener filas duplicadas
// (ProductCode, ComponentCode); se preservan y cada fila expande por separado.
type RecipeComponent struct {
	ID             string
	ProductCode    string
	ProductName    string
	ComponentCode  string
	ComponentName  string
	ComponentClass string          // raw | auxiliary
	UsagePerUnit   decimal.Decimal // >= 0, por unidad despachada
	Unit           string
	Position       int // orden dentro de la receta
}
