package inventory

import (
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ShipmentQueryUseCase lecturas del historial de despachos. El detalle
// reconstruye el rastro material del despacho a través de la retro-referencia
// SourceDocumentID de los movimientos derivados.
type ShipmentQueryUseCase struct {
	shipmentRepo repository.ShipmentRepository
	ledgerRepo   repository.LedgerEntryRepository
}

// NewShipmentQueryUseCase construye el caso de uso.
func NewShipmentQueryUseCase(shipmentRepo repository.ShipmentRepository, ledgerRepo repository.LedgerEntryRepository) *ShipmentQueryUseCase {
	return &ShipmentQueryUseCase{shipmentRepo: shipmentRepo, ledgerRepo: ledgerRepo}
}

// ListShipments lista despachos, más recientes primero.
func (uc *ShipmentQueryUseCase) ListShipments(limit, offset int) ([]*entity.Shipment, error) {
	if limit <= 0 {
		limit = 50
	}
	shipments, err := uc.shipmentRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar despachos: %w", err)
	}
	return shipments, nil
}

// GetShipment devuelve el despacho y sus movimientos (la salida del producto
// terminado más los consumos derivados).
//
// Un despacho cuyo movimiento derivado fue eliminado administrativamente
// devuelve el rastro restante tal cual: la eliminación no se reconstruye.
func (uc *ShipmentQueryUseCase) GetShipment(id string) (*entity.Shipment, []*entity.LedgerEntry, error) {
	if id == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	shipment, err := uc.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("consultar despacho: %w", err)
	}
	if shipment == nil {
		return nil, nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.List(repository.LedgerFilter{
		SourceDocumentID: shipment.ID,
		Limit:            1000,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("consultar movimientos del despacho: %w", err)
	}
	return shipment, entries, nil
}
