package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerDeletion es el rastro de auditoría de una eliminación administrativa
// de un movimiento del libro. La eliminación rompe el invariante append-only,
// por eso queda registrada como excepción explícita: quién borró qué y cuándo.
type LedgerDeletion struct {
	ID           string
	EntryID      string
	MaterialCode string
	Direction    string
	Quantity     decimal.Decimal
	SecondaryKey string
	Reason       string
	DeletedBy    string
	DeletedAt    time.Time
}
