package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/recipe"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// RecordShipmentUseCase registra un despacho de producto terminado y su
// cascada de consumos como una sola unidad atómica: la salida del producto
// terminado más un movimiento de salida por cada componente de la receta.
// Un despacho nunca existe sin sus consecuencias materiales completas, ni
// las consecuencias sin su despacho.
type RecordShipmentUseCase struct {
	txRunner   TxRunner
	recipeRepo repository.RecipeRepository
}

// NewRecordShipmentUseCase construye el caso de uso.
func NewRecordShipmentUseCase(txRunner TxRunner, recipeRepo repository.RecipeRepository) *RecordShipmentUseCase {
	return &RecordShipmentUseCase{txRunner: txRunner, recipeRepo: recipeRepo}
}

// ShipmentInput entrada para registrar un despacho (una línea de lote).
// Override nil = expansión automática contra la receta. Override no nil =
// lista de consumos ajustada a mano que sustituye la expansión para esta
// llamada; el contrato de atomicidad no cambia.
type ShipmentInput struct {
	ProductCode string
	ProductName string
	BatchNumber string
	Quantity    decimal.Decimal
	Unit        string
	Destination string
	Operator    string
	Notes       string
	Date        time.Time
	Override    []OverrideLine
}

// OverrideLine línea de consumo suministrada por el caller.
type OverrideLine struct {
	MaterialCode string
	MaterialName string
	Class        string
	Unit         string
	Quantity     decimal.Decimal
}

// ShipmentResult resultado del registro.
// Warnings lleva las líneas de override descartadas; el despacho en sí fue
// exitoso (éxito parcial, no fallo).
type ShipmentResult struct {
	ShipmentID     string
	DerivedEntries int
	Warnings       []string
}

// RecordShipment valida, expande la receta (o acepta la lista de override) y
// escribe despacho + movimientos derivados en una transacción. Cualquier
// fallo de inserción revierte todo, incluido el despacho.
//
// Validación y lectura de receta ocurren antes de abrir la transacción:
// una entrada inválida se rechaza sin efectos secundarios.
func (uc *RecordShipmentUseCase) RecordShipment(ctx context.Context, input ShipmentInput) (*ShipmentResult, error) {
	if input.ProductCode == "" || input.ProductName == "" || input.BatchNumber == "" {
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

	var usages []entity.ComponentUsage
	var warnings []string
	if input.Override != nil {
		// Vía explícita de override: cada línea malformada se descarta y se
		// reporta como warning, el resto del despacho continúa. Asimetría
		// deliberada frente al todo-o-nada de la cascada calculada: la lista
		// la armó un operador línea a línea y una línea rota no debe tumbar
		// las demás.
		usages, warnings = buildOverrideUsages(input.Override)
	} else {
		components, err := uc.recipeRepo.ListByProduct(input.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("consultar receta: %w", err)
		}
		// Receta vacía: cero movimientos derivados, el despacho igual procede.
		usages = recipe.Expand(components, input.Quantity)
	}

	shipment := &entity.Shipment{
		ID:          uuid.New().String(),
		ProductCode: input.ProductCode,
		ProductName: input.ProductName,
		BatchNumber: input.BatchNumber,
		Quantity:    input.Quantity.Round(entity.QuantityPrecision),
		Unit:        input.Unit,
		Destination: input.Destination,
		Operator:    input.Operator,
		Notes:       input.Notes,
		Date:        date,
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerEntryRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}
		// Salida del producto terminado, con el lote como clave secundaria.
		finishedOut := &entity.LedgerEntry{
			MaterialCode:     shipment.ProductCode,
			MaterialName:     shipment.ProductName,
			Class:            entity.ClassFinished,
			Unit:             shipment.Unit,
			Direction:        entity.DirectionOut,
			Quantity:         shipment.Quantity,
			SecondaryKey:     shipment.BatchNumber,
			SourceDocumentID: shipment.ID,
			Date:             date,
			CreatedAt:        now,
			CreatedBy:        shipment.Operator,
		}
		if err := ledgerRepo.Create(finishedOut); err != nil {
			return err
		}
		// Cascada: un movimiento de salida por componente consumido, con
		// retro-referencia al despacho y a su lote.
		for i := range usages {
			u := usages[i]
			derived := &entity.LedgerEntry{
				MaterialCode:     u.MaterialCode,
				MaterialName:     u.MaterialName,
				Class:            u.Class,
				Unit:             u.Unit,
				Direction:        entity.DirectionOut,
				Quantity:         u.Quantity,
				SecondaryKey:     shipment.BatchNumber,
				SourceDocumentID: shipment.ID,
				Date:             date,
				CreatedAt:        now,
				CreatedBy:        shipment.Operator,
			}
			if err := ledgerRepo.Create(derived); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ShipmentResult{
		ShipmentID:     shipment.ID,
		DerivedEntries: len(usages),
		Warnings:       warnings,
	}, nil
}

// buildOverrideUsages valida la lista de override línea por línea.
// Las líneas inválidas se omiten y quedan descritas en warnings.
func buildOverrideUsages(lines []OverrideLine) ([]entity.ComponentUsage, []string) {
	usages := make([]entity.ComponentUsage, 0, len(lines))
	var warnings []string
	for i, line := range lines {
		switch {
		case line.MaterialCode == "":
			warnings = append(warnings, fmt.Sprintf("línea %d de consumo omitida: material_code vacío", i+1))
			continue
		case !entity.ValidClass(line.Class):
			warnings = append(warnings, fmt.Sprintf("línea %d de consumo omitida: clase desconocida %q", i+1, line.Class))
			continue
		case !line.Quantity.GreaterThan(decimal.Zero):
			warnings = append(warnings, fmt.Sprintf("línea %d de consumo omitida: cantidad no positiva", i+1))
			continue
		}
		usages = append(usages, entity.ComponentUsage{
			MaterialCode: line.MaterialCode,
			MaterialName: line.MaterialName,
			Class:        line.Class,
			Unit:         line.Unit,
			Quantity:     line.Quantity.Round(entity.QuantityPrecision),
		})
	}
	return usages, warnings
}
