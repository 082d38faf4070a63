package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento en el libro.
const (
	DirectionIn  = "in"  // entrada
	DirectionOut = "out" // salida
)

// LedgerEntry es un movimiento del libro (entrada o salida) para un material
// y su clave secundaria (contenedor para materia prima, lote para producto
// terminado, vacía para auxiliares). Inmutable: el libro es append-only y la
// única mutación es la eliminación administrativa auditada (ver LedgerDeletion).
type LedgerEntry struct {
	ID               string
	MaterialCode     string
	MaterialName     string
	Class            string
	Unit             string
	Direction        string          // in, out
	Quantity         decimal.Decimal // siempre > 0; la dirección da el signo conceptual
	SecondaryKey     string          // contenedor | lote | ""
	SourceDocumentID string          // ID del despacho que originó la cascada ("" si registro directo)
	Date             time.Time
	CreatedAt        time.Time
	CreatedBy        string
}

// ValidDirection reporta si la dirección es conocida.
func ValidDirection(direction string) bool {
	return direction == DirectionIn || direction == DirectionOut
}
