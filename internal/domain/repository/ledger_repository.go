package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// LedgerFilter filtros para listar movimientos del libro.
type LedgerFilter struct {
	MaterialCode     string
	Class            string
	Direction        string
	SourceDocumentID string // rastro de un despacho (retro-referencia)
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// LedgerEntryRepository define el puerto de persistencia del libro de
// movimientos (DIP). Append-only: no existe operación de actualización.
// El modelo conceptual es un solo libro por identidad de material y
// dirección; el particionado físico por clase es asunto del adaptador.
type LedgerEntryRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	ListByMaterial(materialCode string, limit, offset int) ([]*entity.LedgerEntry, error)
	List(filter LedgerFilter) ([]*entity.LedgerEntry, error)

	// AggregateStock agrupa el libro por (material, clave secundaria) y suma
	// entradas y salidas en una sola consulta agregada (sin iterar fila a
	// fila en memoria). class vacía = todas las clases. Incluye grupos
	// agotados; el filtrado y orden de presentación es del dominio.
	AggregateStock(ctx context.Context, class string) ([]entity.StockSnapshot, error)

	// Delete es la vía de corrección administrativa, fuera del invariante
	// contable. RecordDeletion deja el rastro de auditoría; ambos deben
	// ejecutarse en la misma transacción (vía TxRunner).
	Delete(id string) error
	RecordDeletion(del *entity.LedgerDeletion) error
}
