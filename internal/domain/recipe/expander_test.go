package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/recipe"
)

func component(product, code, class, usage, unit string) *entity.RecipeComponent {
	return &entity.RecipeComponent{
		ProductCode:    product,
		ComponentCode:  code,
		ComponentName:  code,
		ComponentClass: class,
		UsagePerUnit:   decimal.RequireFromString(usage),
		Unit:           unit,
	}
}

// TestExpand_AlmendraTostada valida la expansión de referencia: receta de
// 1.0 kg de almendra cruda + 0.02 kg de sal por kg despachado; un despacho
// de 100 kg consume 100 kg de almendra y 2 kg de sal, y nada más.
func TestExpand_AlmendraTostada(t *testing.T) {
	components := []*entity.RecipeComponent{
		component("ROAST-ALM", "ALM-CRUDA", entity.ClassRaw, "1.0", "kg"),
		component("ROAST-ALM", "SAL-001", entity.ClassAuxiliary, "0.02", "kg"),
	}

	usages := recipe.Expand(components, decimal.RequireFromString("100"))

	require.Len(t, usages, 2)
	assert.Equal(t, "ALM-CRUDA", usages[0].MaterialCode)
	assert.True(t, usages[0].Quantity.Equal(decimal.RequireFromString("100")),
		"almendra: esperado 100, obtenido %s", usages[0].Quantity)
	assert.Equal(t, "SAL-001", usages[1].MaterialCode)
	assert.True(t, usages[1].Quantity.Equal(decimal.RequireFromString("2")),
		"sal: esperado 2, obtenido %s", usages[1].Quantity)
}

// TestExpand_RecetaVacia: producto sin componentes expande a nada; no es error.
func TestExpand_RecetaVacia(t *testing.T) {
	usages := recipe.Expand(nil, decimal.RequireFromString("50"))
	assert.Empty(t, usages)
}

// TestExpand_DescartaConsumoCero: un componente cuyo consumo calculado
// redondea a exactamente cero no genera línea (nunca se crean movimientos
// de cantidad cero).
func TestExpand_DescartaConsumoCero(t *testing.T) {
	components := []*entity.RecipeComponent{
		component("P1", "C-CERO", entity.ClassAuxiliary, "0", "kg"),
		component("P1", "C-MICRO", entity.ClassAuxiliary, "0.0001", "kg"), // 1 * 0.0001 redondea a 0.000
		component("P1", "C-REAL", entity.ClassRaw, "0.5", "kg"),
	}

	usages := recipe.Expand(components, decimal.NewFromInt(1))

	require.Len(t, usages, 1)
	assert.Equal(t, "C-REAL", usages[0].MaterialCode)
}

// TestExpand_Linealidad: para usagePerUnit fijo, consumo(k*q) = k*consumo(q)
// dentro de la tolerancia de redondeo a 3 decimales.
func TestExpand_Linealidad(t *testing.T) {
	components := []*entity.RecipeComponent{
		component("P1", "C1", entity.ClassRaw, "0.123", "kg"),
	}
	q := decimal.RequireFromString("7")
	k := decimal.NewFromInt(3)

	base := recipe.Expand(components, q)
	scaled := recipe.Expand(components, q.Mul(k))

	require.Len(t, base, 1)
	require.Len(t, scaled, 1)

	// Tolerancia: k medio-ulps de la precisión de cantidad más el propio redondeo.
	tolerance := decimal.RequireFromString("0.0005").Mul(k.Add(decimal.NewFromInt(1)))
	diff := scaled[0].Quantity.Sub(base[0].Quantity.Mul(k)).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance),
		"consumo(k*q)=%s vs k*consumo(q)=%s, diff %s", scaled[0].Quantity, base[0].Quantity.Mul(k), diff)
}

// TestExpand_RedondeoAPrecisionFija: el consumo se redondea a 3 decimales.
func TestExpand_RedondeoAPrecisionFija(t *testing.T) {
	components := []*entity.RecipeComponent{
		component("P1", "C1", entity.ClassRaw, "0.3333", "kg"),
	}

	usages := recipe.Expand(components, decimal.NewFromInt(3))

	require.Len(t, usages, 1)
	assert.True(t, usages[0].Quantity.Equal(decimal.RequireFromString("1.000")),
		"esperado 1.000, obtenido %s", usages[0].Quantity)
}

// TestExpand_FilasDuplicadas: filas repetidas (producto, componente) no se
// deduplican; cada una expande por separado, en el orden de la receta.
func TestExpand_FilasDuplicadas(t *testing.T) {
	components := []*entity.RecipeComponent{
		component("P1", "C1", entity.ClassRaw, "1.0", "kg"),
		component("P1", "C1", entity.ClassRaw, "0.5", "kg"),
	}

	usages := recipe.Expand(components, decimal.NewFromInt(10))

	require.Len(t, usages, 2)
	assert.True(t, usages[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, usages[1].Quantity.Equal(decimal.NewFromInt(5)))
}
