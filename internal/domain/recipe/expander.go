package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// Expand calcula el consumo de componentes para una línea de despacho
// (servicio de dominio, función pura).
// ConsumoComponente = round(CantidadDespachada * UsagePerUnit, QuantityPrecision)
//
// Se invoca una vez por línea de despacho: cada lote se expande por separado
// para que los movimientos derivados retro-referencien su lote específico.
// Los componentes con consumo calculado exactamente cero se descartan (nunca
// se crean movimientos de cantidad cero). Una receta vacía produce una
// expansión vacía: el producto no tiene consumo automático, no es un error.
// Las filas duplicadas de la receta expanden cada una por separado.
func Expand(components []*entity.RecipeComponent, shippedQty decimal.Decimal) []entity.ComponentUsage {
	usages := make([]entity.ComponentUsage, 0, len(components))
	for _, c := range components {
		consumed := shippedQty.Mul(c.UsagePerUnit).Round(entity.QuantityPrecision)
		if consumed.IsZero() {
			continue
		}
		usages = append(usages, entity.ComponentUsage{
			MaterialCode: c.ComponentCode,
			MaterialName: c.ComponentName,
			Class:        c.ComponentClass,
			Unit:         c.Unit,
			Quantity:     consumed,
		})
	}
	return usages
}
