package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// LedgerAdminUseCase consultas del libro y la vía administrativa de
// eliminación. Eliminar un movimiento rompe el invariante append-only del
// libro; por eso la operación es transaccional con su rastro de auditoría y
// queda registrada en el log como excepción, no como evento normal.
//
// Eliminar un despacho no revierte sus movimientos derivados; la corrección
// por asientos de reversa quedó descartada a propósito (ver DESIGN.md).
type LedgerAdminUseCase struct {
	txRunner   TxRunner
	ledgerRepo repository.LedgerEntryRepository
	log        *logger.Logger
}

// NewLedgerAdminUseCase construye el caso de uso.
func NewLedgerAdminUseCase(txRunner TxRunner, ledgerRepo repository.LedgerEntryRepository, log *logger.Logger) *LedgerAdminUseCase {
	return &LedgerAdminUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo, log: log}
}

// ListEntries lista movimientos según filtro (orden: fecha descendente).
func (uc *LedgerAdminUseCase) ListEntries(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	if filter.Class != "" && !entity.ValidClass(filter.Class) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Direction != "" && !entity.ValidDirection(filter.Direction) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	entries, err := uc.ledgerRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	return entries, nil
}

// DeleteEntry elimina un movimiento y escribe el rastro de auditoría en la
// misma transacción: quién borró qué y cuándo.
func (uc *LedgerAdminUseCase) DeleteEntry(ctx context.Context, id, deletedBy, reason string) error {
	if id == "" || deletedBy == "" {
		return domain.ErrInvalidInput
	}

	var deleted *entity.LedgerEntry
	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerEntryRepository,
		_ repository.ShipmentRepository,
	) error {
		entry, err := ledgerRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		audit := &entity.LedgerDeletion{
			ID:           uuid.New().String(),
			EntryID:      entry.ID,
			MaterialCode: entry.MaterialCode,
			Direction:    entry.Direction,
			Quantity:     entry.Quantity,
			SecondaryKey: entry.SecondaryKey,
			Reason:       reason,
			DeletedBy:    deletedBy,
			DeletedAt:    time.Now(),
		}
		if err := ledgerRepo.RecordDeletion(audit); err != nil {
			return err
		}
		if err := ledgerRepo.Delete(entry.ID); err != nil {
			return err
		}
		deleted = entry
		return nil
	})
	if err != nil {
		return err
	}

	uc.log.Warn().
		Str("entry_id", deleted.ID).
		Str("material", deleted.MaterialCode).
		Str("direction", deleted.Direction).
		Str("quantity", deleted.Quantity.String()).
		Str("deleted_by", deletedBy).
		Msg("movimiento del libro eliminado administrativamente")
	return nil
}
