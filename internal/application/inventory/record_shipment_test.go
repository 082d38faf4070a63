package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func almendraTostadaRecipe() *memRecipeRepo {
	return &memRecipeRepo{components: map[string][]*entity.RecipeComponent{
		"ROAST-ALM": {
			{ProductCode: "ROAST-ALM", ComponentCode: "ALM-CRUDA", ComponentName: "Almendra cruda",
				ComponentClass: entity.ClassRaw, UsagePerUnit: dec("1.0"), Unit: "kg", Position: 1},
			{ProductCode: "ROAST-ALM", ComponentCode: "SAL-001", ComponentName: "Sal marina",
				ComponentClass: entity.ClassAuxiliary, UsagePerUnit: dec("0.02"), Unit: "kg", Position: 2},
		},
	}}
}

func shipmentInput(qty string) inventory.ShipmentInput {
	return inventory.ShipmentInput{
		ProductCode: "ROAST-ALM",
		ProductName: "Almendra tostada",
		BatchNumber: "L-2026-001",
		Quantity:    dec(qty),
		Unit:        "kg",
		Destination: "Cliente Norte",
		Operator:    "operario-7",
		Date:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

// TestRecordShipment_CascadaCompleta: despachar 100 kg de almendra tostada
// escribe el despacho, la salida del terminado y una salida por componente
// (100 kg de almendra, 2 kg de sal), todas con retro-referencia al despacho
// y al lote.
func TestRecordShipment_CascadaCompleta(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		almendraTostadaRecipe(),
	)

	result, err := uc.RecordShipment(context.Background(), shipmentInput("100"))

	require.NoError(t, err)
	assert.Equal(t, 2, result.DerivedEntries)
	assert.Empty(t, result.Warnings)

	require.Len(t, shipments.shipments, 1)
	assert.Equal(t, result.ShipmentID, shipments.shipments[0].ID)

	require.Len(t, ledger.entries, 3)
	finished := ledger.entries[0]
	assert.Equal(t, "ROAST-ALM", finished.MaterialCode)
	assert.Equal(t, entity.ClassFinished, finished.Class)
	assert.Equal(t, entity.DirectionOut, finished.Direction)
	assert.True(t, finished.Quantity.Equal(dec("100")))

	almendra := ledger.entries[1]
	assert.Equal(t, "ALM-CRUDA", almendra.MaterialCode)
	assert.True(t, almendra.Quantity.Equal(dec("100")))

	sal := ledger.entries[2]
	assert.Equal(t, "SAL-001", sal.MaterialCode)
	assert.True(t, sal.Quantity.Equal(dec("2")))

	for _, e := range ledger.entries {
		assert.Equal(t, result.ShipmentID, e.SourceDocumentID)
		assert.Equal(t, "L-2026-001", e.SecondaryKey)
		assert.Equal(t, entity.DirectionOut, e.Direction)
	}
}

// TestRecordShipment_CantidadCeroEsValidationError: cantidad cero o negativa
// se rechaza antes de abrir la transacción; no queda ninguna fila.
func TestRecordShipment_CantidadCeroEsValidationError(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		almendraTostadaRecipe(),
	)

	for _, qty := range []string{"0", "-5"} {
		_, err := uc.RecordShipment(context.Background(), shipmentInput(qty))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s", qty)
	}

	assert.Empty(t, shipments.shipments)
	assert.Empty(t, ledger.entries)
}

// TestRecordShipment_RecetaVaciaProcede: producto sin receta despacha igual;
// solo se escribe la salida del terminado, cero movimientos derivados.
func TestRecordShipment_RecetaVaciaProcede(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		&memRecipeRepo{},
	)

	result, err := uc.RecordShipment(context.Background(), shipmentInput("50"))

	require.NoError(t, err)
	assert.Equal(t, 0, result.DerivedEntries)
	require.Len(t, shipments.shipments, 1)
	require.Len(t, ledger.entries, 1)
	assert.Equal(t, entity.ClassFinished, ledger.entries[0].Class)
}

// TestRecordShipment_AtomicidadRollback: si falla una inserción intermedia de
// la cascada, nada persiste: ni el despacho, ni la salida del terminado, ni
// los consumos previos al fallo.
func TestRecordShipment_AtomicidadRollback(t *testing.T) {
	ledger := &memLedgerRepo{failOnCreate: 2} // falla el segundo movimiento
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		almendraTostadaRecipe(),
	)

	_, err := uc.RecordShipment(context.Background(), shipmentInput("100"))

	require.Error(t, err)
	assert.Empty(t, shipments.shipments, "el despacho no debe persistir tras rollback")
	assert.Empty(t, ledger.entries, "ningún movimiento debe persistir tras rollback")
}

// TestRecordShipment_ErrorDeRecetaNoEscribeNada: si la receta no puede
// leerse, el despacho falla sin efectos secundarios.
func TestRecordShipment_ErrorDeRecetaNoEscribeNada(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		&memRecipeRepo{failList: true},
	)

	_, err := uc.RecordShipment(context.Background(), shipmentInput("10"))

	require.Error(t, err)
	assert.Empty(t, shipments.shipments)
	assert.Empty(t, ledger.entries)
}

// TestRecordShipment_OverrideSustituyeExpansion: una lista de override no nil
// sustituye la expansión de la receta, incluso si la receta existe.
func TestRecordShipment_OverrideSustituyeExpansion(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		almendraTostadaRecipe(),
	)

	input := shipmentInput("100")
	input.Override = []inventory.OverrideLine{
		{MaterialCode: "ALM-CRUDA", MaterialName: "Almendra cruda", Class: entity.ClassRaw, Unit: "kg", Quantity: dec("98.5")},
	}

	result, err := uc.RecordShipment(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, result.DerivedEntries)
	require.Len(t, ledger.entries, 2) // terminado + única línea de override
	assert.Equal(t, "ALM-CRUDA", ledger.entries[1].MaterialCode)
	assert.True(t, ledger.entries[1].Quantity.Equal(dec("98.5")))
}

// TestRecordShipment_OverrideLineasMalformadasSeOmiten: las líneas inválidas
// del override se descartan con warning; las válidas sí se escriben.
func TestRecordShipment_OverrideLineasMalformadasSeOmiten(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		&memRecipeRepo{},
	)

	input := shipmentInput("10")
	input.Override = []inventory.OverrideLine{
		{MaterialCode: "", Class: entity.ClassRaw, Quantity: dec("1")},                      // código vacío
		{MaterialCode: "X-1", Class: "mineral", Quantity: dec("1")},                        // clase desconocida
		{MaterialCode: "X-2", Class: entity.ClassAuxiliary, Quantity: dec("0")},            // cantidad no positiva
		{MaterialCode: "SAL-001", Class: entity.ClassAuxiliary, Unit: "kg", Quantity: dec("0.2")},
	}

	result, err := uc.RecordShipment(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, result.DerivedEntries)
	assert.Len(t, result.Warnings, 3)
	require.Len(t, ledger.entries, 2)
	assert.Equal(t, "SAL-001", ledger.entries[1].MaterialCode)
}

// TestRecordShipment_OverrideVacioEsListaVacia: un override de longitud cero
// (pero no nil) significa "sin consumos", no "expande la receta".
func TestRecordShipment_OverrideVacioEsListaVacia(t *testing.T) {
	ledger := &memLedgerRepo{}
	shipments := &memShipmentRepo{}
	uc := inventory.NewRecordShipmentUseCase(
		&memTxRunner{ledger: ledger, shipments: shipments},
		almendraTostadaRecipe(),
	)

	input := shipmentInput("100")
	input.Override = []inventory.OverrideLine{}

	result, err := uc.RecordShipment(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 0, result.DerivedEntries)
	require.Len(t, ledger.entries, 1)
}
