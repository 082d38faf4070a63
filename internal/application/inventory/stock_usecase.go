package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/domain/stock"
)

// StockQueryUseCase lecturas de stock derivadas del libro. Las lecturas no
// comparten transacción con los escritores: una lectura que solapa con un
// despacho en vuelo ve el estado previo al commit (consistencia eventual,
// nunca un despacho a medias).
type StockQueryUseCase struct {
	ledgerRepo repository.LedgerEntryRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(ledgerRepo repository.LedgerEntryRepository) *StockQueryUseCase {
	return &StockQueryUseCase{ledgerRepo: ledgerRepo}
}

// GetStockSnapshot agrega el libro por (material, clave secundaria) y devuelve
// los grupos ordenados por Remaining descendente (empates por clave).
// includeExhausted retiene los grupos con Remaining <= 0 para auditoría.
func (uc *StockQueryUseCase) GetStockSnapshot(ctx context.Context, class string, includeExhausted bool) ([]entity.StockSnapshot, error) {
	if class != "" && !entity.ValidClass(class) {
		return nil, domain.ErrInvalidInput
	}
	snaps, err := uc.ledgerRepo.AggregateStock(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("agregar stock: %w", err)
	}
	if !includeExhausted {
		snaps = stock.WithoutExhausted(snaps)
	}
	stock.SortDefault(snaps)
	return snaps, nil
}

// GetLowStockAlerts devuelve los grupos con Remaining < threshold (estricto),
// ascendente por Remaining, acotados a limit.
func (uc *StockQueryUseCase) GetLowStockAlerts(ctx context.Context, threshold decimal.Decimal, limit int) ([]entity.StockSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	snaps, err := uc.ledgerRepo.AggregateStock(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("agregar stock: %w", err)
	}
	return stock.LowStock(snaps, threshold, limit), nil
}
