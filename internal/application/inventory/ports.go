package inventory

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad de la cascada:
// el despacho y todos sus movimientos derivados se confirman juntos o
// ninguno queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerEntryRepository,
		shipmentRepo repository.ShipmentRepository,
	) error) error
}
