package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// RecordMovementUseCase registra un movimiento directo (entrada o salida
// manual) en el libro: la otra vía de creación de movimientos además de la
// cascada. Es un solo insert, no requiere transacción.
type RecordMovementUseCase struct {
	ledgerRepo repository.LedgerEntryRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(ledgerRepo repository.LedgerEntryRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{ledgerRepo: ledgerRepo}
}

// MovementInput entrada para un movimiento directo.
// SecondaryKey: contenedor para materia prima, lote para producto terminado,
// vacío para auxiliares.
type MovementInput struct {
	MaterialCode string
	MaterialName string
	Class        string
	Unit         string
	Direction    string
	Quantity     decimal.Decimal
	SecondaryKey string
	Operator     string
	Date         time.Time
}

// RecordMovement valida y persiste el movimiento.
func (uc *RecordMovementUseCase) RecordMovement(input MovementInput) (*entity.LedgerEntry, error) {
	if input.MaterialCode == "" || input.MaterialName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidClass(input.Class) || !entity.ValidDirection(input.Direction) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	entry := &entity.LedgerEntry{
		MaterialCode: input.MaterialCode,
		MaterialName: input.MaterialName,
		Class:        input.Class,
		Unit:         input.Unit,
		Direction:    input.Direction,
		Quantity:     input.Quantity.Round(entity.QuantityPrecision),
		SecondaryKey: input.SecondaryKey,
		Date:         date,
		CreatedAt:    now,
		CreatedBy:    input.Operator,
	}
	if err := uc.ledgerRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}
	return entry, nil
}
