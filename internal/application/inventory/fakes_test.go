package inventory_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/domain/stock"
)

// Dobles en memoria de los puertos de persistencia. El TxRunner falso imita
// la semántica transaccional real: fn trabaja sobre copias y los cambios solo
// se publican en Commit (retorno nil); cualquier error descarta todo.

type memLedgerRepo struct {
	entries   []*entity.LedgerEntry
	deletions []*entity.LedgerDeletion

	failOnCreate int // falla el N-ésimo Create (1-based); 0 = nunca
	creates      int
}

func (r *memLedgerRepo) Create(e *entity.LedgerEntry) error {
	r.creates++
	if r.failOnCreate > 0 && r.creates >= r.failOnCreate {
		return errors.New("insert fallido")
	}
	if e.ID == "" {
		e.ID = fmt.Sprintf("entry-%d", r.creates)
	}
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLedgerRepo) ListByMaterial(materialCode string, limit, offset int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.MaterialCode == materialCode {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) List(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if filter.MaterialCode != "" && e.MaterialCode != filter.MaterialCode {
			continue
		}
		if filter.Class != "" && e.Class != filter.Class {
			continue
		}
		if filter.Direction != "" && e.Direction != filter.Direction {
			continue
		}
		if filter.SourceDocumentID != "" && e.SourceDocumentID != filter.SourceDocumentID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memLedgerRepo) AggregateStock(_ context.Context, class string) ([]entity.StockSnapshot, error) {
	var scoped []*entity.LedgerEntry
	for _, e := range r.entries {
		if class == "" || e.Class == class {
			scoped = append(scoped, e)
		}
	}
	return stock.Aggregate(scoped), nil
}

func (r *memLedgerRepo) Delete(id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("delete ledger entry: no rows")
}

func (r *memLedgerRepo) RecordDeletion(del *entity.LedgerDeletion) error {
	cp := *del
	r.deletions = append(r.deletions, &cp)
	return nil
}

type memShipmentRepo struct {
	shipments []*entity.Shipment
}

func (r *memShipmentRepo) Create(s *entity.Shipment) error {
	cp := *s
	r.shipments = append(r.shipments, &cp)
	return nil
}

func (r *memShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	for _, s := range r.shipments {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	return r.shipments, nil
}

type memTxRunner struct {
	ledger    *memLedgerRepo
	shipments *memShipmentRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	ledgerRepo repository.LedgerEntryRepository,
	shipmentRepo repository.ShipmentRepository,
) error) error {
	ledgerTx := &memLedgerRepo{
		entries:      append([]*entity.LedgerEntry(nil), r.ledger.entries...),
		deletions:    append([]*entity.LedgerDeletion(nil), r.ledger.deletions...),
		failOnCreate: r.ledger.failOnCreate,
		creates:      r.ledger.creates,
	}
	shipTx := &memShipmentRepo{
		shipments: append([]*entity.Shipment(nil), r.shipments.shipments...),
	}
	if err := fn(ledgerTx, shipTx); err != nil {
		return err // rollback: se descartan las copias
	}
	*r.ledger = *ledgerTx
	*r.shipments = *shipTx
	return nil
}

type memRecipeRepo struct {
	components map[string][]*entity.RecipeComponent
	failList   bool
}

func (r *memRecipeRepo) ListByProduct(productCode string) ([]*entity.RecipeComponent, error) {
	if r.failList {
		return nil, errors.New("receta no disponible")
	}
	return r.components[productCode], nil
}

func (r *memRecipeRepo) Create(c *entity.RecipeComponent) error {
	if r.components == nil {
		r.components = make(map[string][]*entity.RecipeComponent)
	}
	if c.Position <= 0 {
		c.Position = len(r.components[c.ProductCode]) + 1
	}
	cp := *c
	r.components[c.ProductCode] = append(r.components[c.ProductCode], &cp)
	return nil
}
