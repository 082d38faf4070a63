package entity

import "github.com/shopspring/decimal"

// StockSnapshot es el stock agregado de un grupo (material, clave secundaria).
// Derivado: se recalcula desde el libro en cada lectura y nunca se persiste.
// Remaining = TotalIn - TotalOut.
type StockSnapshot struct {
	MaterialCode string
	MaterialName string
	Class        string
	Unit         string
	SecondaryKey string
	TotalIn      decimal.Decimal
	TotalOut     decimal.Decimal
	Remaining    decimal.Decimal
}
