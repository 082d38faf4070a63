package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment es un despacho de producto terminado. Se crea una sola vez y
// dispara la cascada de consumo exactamente en su creación; nunca se
// actualiza. Los movimientos derivados llevan SourceDocumentID = Shipment.ID
// y SecondaryKey = BatchNumber como retro-referencia al lote.
type Shipment struct {
	ID          string
	ProductCode string
	ProductName string
	BatchNumber string
	Quantity    decimal.Decimal // > 0
	Unit        string
	Destination string
	Operator    string
	Notes       string
	Date        time.Time
	CreatedAt   time.Time
}

// ComponentUsage es una línea estructurada de consumo de componente.
// Reemplaza el blob JSON del sistema original: cuando el operador ajusta a
// mano los consumos, el despacho llega con esta lista en lugar de la
// expansión automática de la receta.
type ComponentUsage struct {
	MaterialCode string
	MaterialName string
	Class        string
	Unit         string
	Quantity     decimal.Decimal
}
