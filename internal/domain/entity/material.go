package entity

// Clases de material: gobiernan el particionado del libro de movimientos
// y la agrupación del stock.
const (
	ClassRaw       = "raw"       // materia prima (dimensión secundaria: contenedor)
	ClassAuxiliary = "auxiliary" // material auxiliar (sin dimensión secundaria)
	ClassFinished  = "finished"  // producto terminado (dimensión secundaria: lote)
)

// QuantityPrecision decimales fijos para cantidades en todo el sistema
// (expansión de recetas, libro y agregación). NUMERIC en PostgreSQL.
const QuantityPrecision int32 = 3

// Material identifica un material. La identidad es por Code; Name es descriptivo.
type Material struct {
	Code  string
	Name  string
	Class string // raw, auxiliary, finished
	Unit  string // kg, l, und, ...
}

// ValidClass reporta si la clase es una de las tres conocidas.
func ValidClass(class string) bool {
	switch class {
	case ClassRaw, ClassAuxiliary, ClassFinished:
		return true
	}
	return false
}
